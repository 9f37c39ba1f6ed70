// Package config loads the optional ratelog defaults file.
package config

// Config holds tool-wide defaults. Every field has a command-line flag that
// overrides it; the file only saves retyping for repeated runs against the
// same log directory.
type Config struct {
	// Directory is where log groups are resolved. Defaults to the current
	// working directory.
	Directory string `yaml:"directory"`

	// TrimPartial drops the first and last bucket of derived count series,
	// the two that may cover partial seconds of observation.
	TrimPartial bool `yaml:"trim_partial"`

	// LogLevel controls diagnostic output on stderr (debug|info|warn|error).
	LogLevel string `yaml:"log_level"`

	// Plot controls chart geometry.
	Plot PlotConfig `yaml:"plot"`
}

// PlotConfig holds chart rendering defaults.
type PlotConfig struct {
	WidthInches  float64 `yaml:"width_inches"`
	HeightInches float64 `yaml:"height_inches"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Directory: ".",
		LogLevel:  "info",
		Plot: PlotConfig{
			WidthInches:  8,
			HeightInches: 4,
		},
	}
}
