// Package config loads the driver's YAML configuration, following the
// tagged-struct-plus-yaml.v3 pattern used throughout the retrieved pack's
// service configs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wrenfield/gridstar/internal/patherrors"
)

// Config is the option set spec.md §6 names, plus the ambient log level
// this expansion's logging stack needs.
type Config struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	InputModule string `yaml:"input_module"` // "random" or "fixed"
	FixedMap    string `yaml:"fixed_map"`     // path, required when InputModule == "fixed"
	BatchWidth  int    `yaml:"batch_width"`
	Seed        *int64 `yaml:"seed"` // nil selects a source-specific default
	Solvers     string `yaml:"solvers"` // "sequential", "parallel" or "both"
	LogLevel    string `yaml:"log_level"`
}

// Default returns a Config with spec.md-reasonable defaults: a 50x50
// random grid, batch width 64, both solvers, info logging.
func Default() Config {
	return Config{
		Width:       50,
		Height:      50,
		InputModule: "random",
		BatchWidth:  64,
		Solvers:     "both",
		LogLevel:    "info",
	}
}

// Load reads a YAML config file, falling back to Default()'s values for
// any field the file omits.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: reading %s: %v", patherrors.ErrConfiguration, path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parsing %s: %v", patherrors.ErrConfiguration, path, err)
	}
	return cfg, cfg.Validate()
}

// Validate enforces spec.md §6: width/height must be positive, the input
// module must be recognised, and a fixed map path must be given when
// requested.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive, got %dx%d", patherrors.ErrConfiguration, c.Width, c.Height)
	}
	switch c.InputModule {
	case "random":
	case "fixed":
		if c.FixedMap == "" {
			return fmt.Errorf("%w: input-module \"fixed\" requires fixed_map", patherrors.ErrConfiguration)
		}
	default:
		return fmt.Errorf("%w: unknown input-module %q", patherrors.ErrConfiguration, c.InputModule)
	}
	if c.BatchWidth < 1 {
		return fmt.Errorf("%w: batch-width must be >= 1, got %d", patherrors.ErrConfiguration, c.BatchWidth)
	}
	switch c.Solvers {
	case "sequential", "parallel", "both":
	default:
		return fmt.Errorf("%w: unknown solvers option %q", patherrors.ErrConfiguration, c.Solvers)
	}
	return nil
}
