// Package cli provides the command-line interface for ratelog.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ratelog/ratelog/internal/cli/commands"
	"github.com/ratelog/ratelog/pkg/chart"
	"github.com/ratelog/ratelog/pkg/logset"
	"github.com/ratelog/ratelog/pkg/stats"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps errors to exit statuses: 1 for data errors (missing files,
// empty input, nothing to plot), 2 for usage or configuration errors.
func exitCode(err error) int {
	var notFound *logset.NotFoundError
	if errors.As(err, &notFound) ||
		errors.Is(err, stats.ErrEmptyInput) ||
		errors.Is(err, chart.ErrNoData) {
		return 1
	}
	return 2
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ratelog",
		Short: "Post-process worker timing logs",
		Long: `ratelog post-processes the timing logs written by the worker processes of a
distributed verification service.

Each worker appends completion timestamps (seconds since epoch, one float per
line) to its own log file named <base><unique-suffix>. ratelog resolves all
files sharing a base name as one group and:

  average   pools every value in a group and prints the arithmetic mean
  bucket    merges timestamps into per-second event counts, one per line
  plot      charts the per-second event rate, to an image file or terminal

Exit codes:
  0 - Success
  1 - Data error (no matching files, no valid input, nothing to plot)
  2 - Usage or configuration error`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewAverageCommand())
	rootCmd.AddCommand(commands.NewBucketCommand())
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
