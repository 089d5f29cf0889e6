// Package config loads the runtime settings of the tripgraph binary from a YAML
// file, with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tripgraph/builder"
	"github.com/katalvlaran/tripgraph/dijkstra"
)

// ErrInvalidConfig indicates a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables that override file values.
const (
	EnvData      = "TRIPGRAPH_DATA"
	EnvLogFormat = "TRIPGRAPH_LOG_FORMAT"
	EnvDebug     = "TRIPGRAPH_DEBUG"
)

// Config holds every setting of a route query run.
type Config struct {
	Data       string    `yaml:"data"`
	From       int       `yaml:"from"`
	To         int       `yaml:"to"`
	Dimensions []string  `yaml:"dimensions"`
	Strategy   string    `yaml:"strategy"`
	Log        LogConfig `yaml:"log"`
}

// LogConfig controls zerolog output.
type LogConfig struct {
	// Format is "console" (default) or "json".
	Format string `yaml:"format"`
	Debug  bool   `yaml:"debug"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Data:       "test_task_data.csv",
		From:       1909,
		To:         1929,
		Dimensions: []string{"cost", "time"},
		Strategy:   "linear",
		Log:        LogConfig{Format: "console"},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// Default(); keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides file values with TRIPGRAPH_* environment variables.
// TRIPGRAPH_DEBUG enables debug logging when set to "YES".
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvData); v != "" {
		c.Data = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if os.Getenv(EnvDebug) == "YES" {
		c.Log.Debug = true
	}
}

// Validate checks that every dimension and the strategy are known.
func (c Config) Validate() error {
	if c.Data == "" {
		return fmt.Errorf("%w: data file is empty", ErrInvalidConfig)
	}
	if _, err := c.DimensionList(); err != nil {
		return err
	}
	if _, err := c.SearchStrategy(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// DimensionList converts Dimensions into builder values, in order.
func (c Config) DimensionList() ([]builder.Dimension, error) {
	if len(c.Dimensions) == 0 {
		return nil, fmt.Errorf("%w: no dimensions", ErrInvalidConfig)
	}
	dims := make([]builder.Dimension, 0, len(c.Dimensions))
	for _, name := range c.Dimensions {
		d, err := builder.ParseDimension(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		dims = append(dims, d)
	}

	return dims, nil
}

// SearchStrategy converts Strategy into a dijkstra.Strategy.
func (c Config) SearchStrategy() (dijkstra.Strategy, error) {
	s, err := dijkstra.ParseStrategy(c.Strategy)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return s, nil
}
