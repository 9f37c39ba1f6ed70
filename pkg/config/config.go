package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a defaults file. Keys absent from the file keep
// their built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Directory == "" {
		return errors.New("directory: must not be empty")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: invalid level %q (use debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.Plot.WidthInches <= 0 {
		return fmt.Errorf("plot.width_inches: must be positive, got %v", cfg.Plot.WidthInches)
	}
	if cfg.Plot.HeightInches <= 0 {
		return fmt.Errorf("plot.height_inches: must be positive, got %v", cfg.Plot.HeightInches)
	}

	return nil
}
