package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ratelog/ratelog/pkg/logset"
	"github.com/ratelog/ratelog/pkg/stats"
	"github.com/ratelog/ratelog/pkg/stream"
)

// AverageOptions holds command-line options for the average command.
type AverageOptions struct {
	CommonOptions
	Filename string
	Verbose  bool
}

// NewAverageCommand creates the average command.
func NewAverageCommand() *cobra.Command {
	opts := &AverageOptions{}

	cmd := &cobra.Command{
		Use:   "average",
		Short: "Print the mean of all values in a log group",
		Long: `Average the values of every log file in a group.

A group is every file in the directory whose name starts with the given base
name, one file per worker process. Files may hold raw per-operation durations
or the per-second counts written by the bucket command; the values of all
files are pooled and their arithmetic mean is printed to standard output.

An empty group, or a group whose files contain no valid numbers, is an error:
ratelog never reports a mean of zero for missing data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAverage(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Filename, "filename", "f", "", "Base name of the log group (required)")
	_ = cmd.MarkFlagRequired("filename")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Also print stddev, min, max, and count")
	addCommonFlags(cmd, &opts.CommonOptions)

	return cmd
}

func runAverage(cmd *cobra.Command, opts *AverageOptions) error {
	ctx := commandContext(cmd)

	cfg, logger, err := resolveSettings(cmd, &opts.CommonOptions)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	paths, err := logset.Resolve(opts.Filename, cfg.Directory)
	if err != nil {
		return err
	}
	logger.Debug("resolved log group",
		zap.String("base", opts.Filename),
		zap.Strings("files", paths))

	if len(paths) == 0 {
		return fmt.Errorf("log group %q in %s: %w", opts.Filename, cfg.Directory, stats.ErrEmptyInput)
	}

	values, skipped, err := stream.ReadSet(ctx, paths)
	if err != nil {
		return err
	}
	if skipped > 0 {
		logger.Warn("skipped malformed lines", zap.Int("count", skipped))
	}

	out := cmd.OutOrStdout()

	if opts.Verbose {
		summary, err := stats.Describe(values)
		if err != nil {
			return fmt.Errorf("averaging %q: %w", opts.Filename, err)
		}
		fmt.Fprintf(out, "mean:   %s\n", formatFloat(summary.Mean))
		fmt.Fprintf(out, "stddev: %s\n", formatFloat(summary.StdDev))
		fmt.Fprintf(out, "min:    %s\n", formatFloat(summary.Min))
		fmt.Fprintf(out, "max:    %s\n", formatFloat(summary.Max))
		fmt.Fprintf(out, "n:      %d\n", summary.N)
		return nil
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return fmt.Errorf("averaging %q: %w", opts.Filename, err)
	}
	fmt.Fprintln(out, formatFloat(mean))

	return nil
}
