// Package config loads the command line tool's settings.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Kernel options, such as "d Qz"
	Command string `yaml:"command"`

	// Where uncollected kernel messages go: stderr, stdout, discard, or a file
	// path.
	Diagnostics string `yaml:"diagnostics"`

	Verbose bool `yaml:"verbose"`

	PNG PNGConfig `yaml:"png"`
}

// PNGConfig controls the debug drawing. No drawing is made without a path.
type PNGConfig struct {
	Path  string  `yaml:"path"`
	Scale float64 `yaml:"scale"`
}

func Default() *Config {
	return &Config{
		Diagnostics: "stderr",
		PNG: PNGConfig{
			Scale: 100,
		},
	}
}

// Load reads a YAML config over the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.PNG.Scale <= 0 {
		return errors.Errorf("png scale must be positive, got %g", c.PNG.Scale)
	}
	if c.Diagnostics == "" {
		return errors.New("diagnostics must name a sink")
	}
	return nil
}

// OpenDiagnostics opens the diagnostics sink. The returned close function
// must be called once the sink is no longer needed.
func (c *Config) OpenDiagnostics() (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch c.Diagnostics {
	case "stderr":
		return os.Stderr, noop, nil
	case "stdout":
		return os.Stdout, noop, nil
	case "discard":
		return io.Discard, noop, nil
	}
	f, err := os.OpenFile(c.Diagnostics, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not open diagnostics file")
	}
	return f, f.Close, nil
}
