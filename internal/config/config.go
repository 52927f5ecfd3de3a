// Package config loads optional run settings from a YAML file.
//
// Every field has a default, so a missing file is not an error. Command
// line flags that the user set explicitly take precedence over the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Mirror modes for the second order of each pair.
const (
	MirrorRecompute = "recompute"
	MirrorTranspose = "transpose"
)

// Defaults.
const (
	DefaultMetricsDir = "metrics"
	DefaultPlotFile   = "runtime_metrics.png"
	DefaultWorkers    = 1
	DefaultLogLevel   = "info"
)

// ErrInvalidConfig indicates a value outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config models the YAML settings file.
type Config struct {
	// MetricsDir holds runtime_metrics.csv and the plot artifacts. Relative
	// paths resolve against the output file's directory.
	MetricsDir string `yaml:"metrics_dir"`
	// PlotFile is the PNG name; relative paths resolve against MetricsDir.
	PlotFile string `yaml:"plot_file"`
	Workers  int    `yaml:"workers"`
	Mirror   string `yaml:"mirror"`
	// MaxCells caps (m+1)*(n+1) per pair; 0 means unlimited.
	MaxCells int    `yaml:"max_cells"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		MetricsDir: DefaultMetricsDir,
		PlotFile:   DefaultPlotFile,
		Workers:    DefaultWorkers,
		Mirror:     MirrorRecompute,
		MaxCells:   0,
		LogLevel:   DefaultLogLevel,
	}
}

// Parse decodes YAML from r over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads path. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s does not exist", path)
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrInvalidConfig, c.Workers)
	case c.MaxCells < 0:
		return fmt.Errorf("%w: max_cells must be ≥ 0, got %d", ErrInvalidConfig, c.MaxCells)
	case c.Mirror != MirrorRecompute && c.Mirror != MirrorTranspose:
		return fmt.Errorf("%w: mirror must be %q or %q, got %q", ErrInvalidConfig, MirrorRecompute, MirrorTranspose, c.Mirror)
	case c.MetricsDir == "":
		return fmt.Errorf("%w: metrics_dir must not be empty", ErrInvalidConfig)
	case c.PlotFile == "":
		return fmt.Errorf("%w: plot_file must not be empty", ErrInvalidConfig)
	}

	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
