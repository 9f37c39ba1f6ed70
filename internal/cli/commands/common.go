// Package commands implements the ratelog subcommands.
package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ratelog/ratelog/internal/logging"
	"github.com/ratelog/ratelog/pkg/config"
)

// CommonOptions holds the flags shared by every data command.
type CommonOptions struct {
	Dir      string
	Config   string
	LogLevel string
}

func addCommonFlags(cmd *cobra.Command, opts *CommonOptions) {
	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", ".", "Directory to resolve log groups in")
	cmd.Flags().StringVar(&opts.Config, "config", "", "Optional YAML defaults file")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
}

// resolveSettings loads the optional defaults file and applies flag
// overrides: built-in defaults < config file < flags given on the command
// line.
func resolveSettings(cmd *cobra.Command, opts *CommonOptions) (*config.Config, *zap.Logger, error) {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dir") {
		cfg.Directory = opts.Dir
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

// trimEnabled resolves the partial-bucket policy: the flag wins when set,
// otherwise the config default applies.
func trimEnabled(cmd *cobra.Command, cfg *config.Config, flagValue bool) bool {
	if cmd.Flags().Changed("trim-partial") {
		return flagValue
	}
	return cfg.TrimPartial
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// formatFloat prints a value at full float64 precision; presentation layers
// above this tool may round.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
