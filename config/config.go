// Package config loads the run configuration of the graphimpute CLI from
// YAML and builds its logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete run configuration. CLI flags override it.
type Config struct {
	Strategy string             `yaml:"strategy"`
	Nodes    string             `yaml:"nodes"`
	Edges    string             `yaml:"edges"`
	Output   string             `yaml:"output"`
	Seed     int64              `yaml:"seed"`
	Params   map[string]float64 `yaml:"params"`
	Log      LogConfig          `yaml:"log"`
	Metrics  MetricsConfig      `yaml:"metrics"`
}

// LogConfig selects the log level (debug, info, warn, error) and format
// (text, json).
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig names the file Prometheus metrics are written to after a
// run. Empty disables the dump.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Strategy: "knn",
		Params:   map[string]float64{},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path with strict parsing on top of Default. An empty path
// returns the defaults; unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("YAML syntax error in config %s: %w", path, err)
	}
	if cfg.Params == nil {
		cfg.Params = map[string]float64{}
	}

	return cfg, cfg.Validate()
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if _, ok := levels[c.Log.Level]; !ok {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}
