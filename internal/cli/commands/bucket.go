package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ratelog/ratelog/pkg/logset"
	"github.com/ratelog/ratelog/pkg/series"
	"github.com/ratelog/ratelog/pkg/stats"
	"github.com/ratelog/ratelog/pkg/stream"
)

// BucketOptions holds command-line options for the bucket command.
type BucketOptions struct {
	CommonOptions
	Infile      string
	Outfile     string
	TrimPartial bool
}

// NewBucketCommand creates the bucket command.
func NewBucketCommand() *cobra.Command {
	opts := &BucketOptions{}

	cmd := &cobra.Command{
		Use:   "bucket",
		Short: "Derive per-second event counts from a timestamp log group",
		Long: `Merge the timestamps of every log file in a group and write per-second
event counts.

All timestamps are pooled into one timeline; bucket boundaries are whole
seconds derived from the earliest timestamp across the whole group, and a
timestamp exactly on a boundary lands in the bucket starting there. The
output file holds one non-negative integer per line, earliest bucket first.

The first and last bucket may cover partial seconds of real activity if
measurement started or stopped mid-second. Pass --trim-partial to drop them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBucket(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Infile, "infile", "i", "", "Base name of the timestamp log group (required)")
	_ = cmd.MarkFlagRequired("infile")
	cmd.Flags().StringVarP(&opts.Outfile, "outfile", "o", "", "Destination file for the count series (required)")
	_ = cmd.MarkFlagRequired("outfile")
	cmd.Flags().BoolVar(&opts.TrimPartial, "trim-partial", false, "Drop the first and last (possibly partial) bucket")
	addCommonFlags(cmd, &opts.CommonOptions)

	return cmd
}

func runBucket(cmd *cobra.Command, opts *BucketOptions) error {
	ctx := commandContext(cmd)

	cfg, logger, err := resolveSettings(cmd, &opts.CommonOptions)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	paths, err := logset.Resolve(opts.Infile, cfg.Directory)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return &logset.NotFoundError{Base: opts.Infile, Dir: cfg.Directory}
	}
	logger.Debug("resolved log group",
		zap.String("base", opts.Infile),
		zap.Strings("files", paths))

	values, skipped, err := stream.ReadSet(ctx, paths)
	if err != nil {
		return err
	}
	if skipped > 0 {
		logger.Warn("skipped malformed lines", zap.Int("count", skipped))
	}
	if len(values) == 0 {
		return fmt.Errorf("bucketing %q: %w", opts.Infile, stats.ErrEmptyInput)
	}

	counts := series.Bucket(values)
	if trimEnabled(cmd, cfg, opts.TrimPartial) {
		counts = counts.TrimPartial()
		if len(counts) == 0 {
			return fmt.Errorf("bucketing %q: no buckets remain after trimming: %w", opts.Infile, stats.ErrEmptyInput)
		}
	}

	if err := writeCounts(counts, opts.Outfile); err != nil {
		return err
	}

	logger.Info("wrote count series",
		zap.String("path", opts.Outfile),
		zap.Int("buckets", len(counts)),
		zap.Int("events", counts.Sum()))

	return nil
}

func writeCounts(counts series.Counts, path string) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := counts.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
