// Package input reads point sets for the command line tool.
package input

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

type Points struct {
	Comment string
	Dim     int
	Coords  []float64
}

func (p *Points) Count() int {
	if p.Dim == 0 {
		return 0
	}
	return len(p.Coords) / p.Dim
}

// ReadFile reads an SVG file if the name ends in .svg, and text otherwise.
func ReadFile(path string) (*Points, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open points")
	}
	defer f.Close()

	var points *Points
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		points, err = ReadSVG(f)
	} else {
		points, err = ReadText(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	if points.Comment == "" {
		points.Comment = filepath.Base(path)
	}
	return points, nil
}

// ReadText reads points in the format rbox writes. The first line is the
// dimension, optionally followed by a comment. The second is the number of
// points. The coordinates follow, separated by any whitespace.
func ReadText(r io.Reader) (*Points, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	nextLine := func() (string, bool) {
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				return line, true
			}
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		return nil, errors.New("missing dimension")
	}
	fields := strings.Fields(header)
	dim, err := strconv.Atoi(fields[0])
	if err != nil || dim < 1 {
		return nil, errors.Errorf("invalid dimension %q", fields[0])
	}
	points := &Points{
		Comment: strings.Join(fields[1:], " "),
		Dim:     dim,
	}

	countLine, ok := nextLine()
	if !ok {
		return nil, errors.New("missing point count")
	}
	count, err := strconv.Atoi(strings.Fields(countLine)[0])
	if err != nil || count < 0 {
		return nil, errors.Errorf("invalid point count %q", countLine)
	}

	points.Coords = make([]float64, 0, dim*count)
	for len(points.Coords) < dim*count {
		line, ok := nextLine()
		if !ok {
			break
		}
		for _, field := range strings.Fields(line) {
			c, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid coordinate %q", field)
			}
			points.Coords = append(points.Coords, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not scan points")
	}
	if len(points.Coords) != dim*count {
		return nil, errors.Errorf("expected %d coordinates for %d points, found %d", dim*count, count, len(points.Coords))
	}
	return points, nil
}

// ReadSVG collects 2-d points from the vertices of every polygon and polyline,
// and the centers of every circle. This is not a full SVG reader. Transforms,
// paths and units are ignored.
func ReadSVG(r io.Reader) (*Points, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse svg")
	}

	points := &Points{Dim: 2}
	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range root.FindAll(name) {
			coords, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid %s", name)
			}
			points.Coords = append(points.Coords, coords...)
		}
	}
	for _, el := range root.FindAll("circle") {
		x, err := parseAttribute(el, "cx")
		if err != nil {
			return nil, err
		}
		y, err := parseAttribute(el, "cy")
		if err != nil {
			return nil, err
		}
		points.Coords = append(points.Coords, x, y)
	}

	if len(points.Coords) == 0 {
		return nil, errors.New("no polygons, polylines or circles found")
	}
	return points, nil
}

// Parses "x1,y1 x2,y2 ...". Commas and whitespace are interchangeable, as in
// SVG itself.
func parsePointList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	coords := make([]float64, 0, len(fields))
	for _, field := range fields {
		c, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid coordinate %q", field)
		}
		coords = append(coords, c)
	}
	return coords, nil
}

func parseAttribute(el *svgparser.Element, name string) (float64, error) {
	value, ok := el.Attributes[name]
	if !ok {
		// Missing lengths default to zero
		return 0, nil
	}
	c, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s attribute %q on %s", name, value, el.Name)
	}
	return c, nil
}
