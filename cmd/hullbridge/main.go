package main

import (
	"fmt"
	"io"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/hullbridge"
	"github.com/osuushi/hullbridge/internal/config"
	"github.com/osuushi/hullbridge/internal/input"
)

// Builds the hull of a point file and prints it. Points are read in rbox's
// text format, or from the polygons, polylines and circles of an SVG file.
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "hullbridge: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	points     string
	configPath string
	command    string
	verbose    bool
	png        string
	scale      float64
	imgcat     bool
	all        bool
	neighbors  bool
}

func parseFlags(args []string) (*flags, error) {
	app := kingpin.New("hullbridge", "Convex hulls and Delaunay triangulations of point files.")
	f := &flags{}
	app.Arg("points", "Point file, in rbox text format or SVG.").Required().StringVar(&f.points)
	app.Flag("config", "YAML config file.").Short('f').StringVar(&f.configPath)
	app.Flag("command", "Kernel options, such as \"d Qz\".").Short('c').StringVar(&f.command)
	app.Flag("verbose", "Log debug output.").Short('v').BoolVar(&f.verbose)
	app.Flag("png", "Draw the hull to this PNG file.").StringVar(&f.png)
	app.Flag("scale", "Pixels per unit in the drawing.").Float64Var(&f.scale)
	app.Flag("imgcat", "Show the drawing in the terminal (iTerm only).").BoolVar(&f.imgcat)
	app.Flag("all", "Print every facet, not only good ones.").BoolVar(&f.all)
	app.Flag("neighbors", "Print each vertex's neighboring facets.").BoolVar(&f.neighbors)
	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// Flags win over the config file.
func loadConfig(f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	if f.command != "" {
		cfg.Command = f.command
	}
	cfg.Verbose = cfg.Verbose || f.verbose
	if f.png != "" {
		cfg.PNG.Path = f.png
	}
	if f.scale > 0 {
		cfg.PNG.Scale = f.scale
	}
	if f.imgcat && cfg.PNG.Path == "" {
		cfg.PNG.Path = "/tmp/hullbridge.png"
	}
	return cfg, cfg.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zapConfig.Build()
	return logger, errors.Wrap(err, "failed to initialize logger")
}

func run(args []string, out io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sink, closeSink, err := cfg.OpenDiagnostics()
	if err != nil {
		return err
	}
	defer closeSink()

	points, err := input.ReadFile(f.points)
	if err != nil {
		return err
	}
	logger.Debug("read points", zap.String("file", f.points), zap.Int("dimension", points.Dim), zap.Int("count", points.Count()))

	r, err := hullbridge.Hull(points.Comment, points.Dim, points.Count(), points.Coords, cfg.Command,
		hullbridge.WithLogger(logger),
		hullbridge.WithDiagnosticSink(sink))
	if err != nil {
		return err
	}
	defer r.Close()

	if err := report(r, out, f); err != nil {
		return err
	}

	if cfg.PNG.Path != "" {
		if err := r.DrawPNG(cfg.PNG.Path, cfg.PNG.Scale); err != nil {
			return err
		}
		logger.Debug("drew hull", zap.String("path", cfg.PNG.Path))
		if f.imgcat {
			imgcat.CatFile(cfg.PNG.Path, os.Stdout)
		}
	}
	return r.Close()
}

func report(r *hullbridge.Runner, out io.Writer, f *flags) error {
	area, err := r.Area()
	if err != nil {
		return err
	}
	volume, err := r.Volume()
	if err != nil {
		return err
	}
	if f.neighbors {
		if err := r.DefineVertexNeighborFacets(); err != nil {
			return err
		}
	}

	facets := r.Facets()
	if f.all {
		facets.SelectAll()
	}
	vertices := r.Vertices()
	fmt.Fprintf(out, "dimension %d, %d facets, %d vertices\narea %g\nvolume %g\n",
		r.Dimension(), facets.Count(), vertices.Count(), area, volume)

	n := r.Numbering()
	for _, p := range []io.WriterTo{
		facets.Print("facets:\n", n),
		vertices.Print("vertices:\n", n),
	} {
		if _, err := p.WriteTo(out); err != nil {
			return err
		}
	}
	if others := r.OtherPoints(); !others.IsEmpty() {
		if _, err := others.PrintIdentifiers("other points: ", n).WriteTo(out); err != nil {
			return err
		}
	}
	if r.HasMessage() {
		fmt.Fprintf(out, "kernel messages:\n%s", r.TakeMessage())
	}
	return nil
}
