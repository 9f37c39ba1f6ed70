package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ratelog/ratelog/pkg/chart"
	"github.com/ratelog/ratelog/pkg/logset"
	"github.com/ratelog/ratelog/pkg/series"
	"github.com/ratelog/ratelog/pkg/stream"
)

// PlotOptions holds command-line options for the plot command.
type PlotOptions struct {
	CommonOptions
	Infile      string
	Outfile     string
	Title       string
	TrimPartial bool
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Chart the per-second event rate of a timestamp log group",
		Long: `Merge the timestamps of a log group, derive per-second event counts, and
render them as a line chart.

With --outfile the chart is saved as an image (format by extension: .png,
.svg, .pdf) and nothing is displayed. Without it, the chart is drawn on the
terminal. The x axis is elapsed whole seconds since the earliest observed
timestamp; the y axis is the event count in that second.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Infile, "infile", "i", "", "Base name of the timestamp log group (required)")
	_ = cmd.MarkFlagRequired("infile")
	cmd.Flags().StringVarP(&opts.Outfile, "outfile", "o", "", "Image file to save the chart to instead of displaying it")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Chart title (defaults to the base name)")
	cmd.Flags().BoolVar(&opts.TrimPartial, "trim-partial", false, "Drop the first and last (possibly partial) bucket")
	addCommonFlags(cmd, &opts.CommonOptions)

	return cmd
}

func runPlot(cmd *cobra.Command, opts *PlotOptions) error {
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
		return fmt.Errorf("log group %q in %s: %w", opts.Infile, cfg.Directory, chart.ErrNoData)
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

	counts := series.Bucket(values)
	if trimEnabled(cmd, cfg, opts.TrimPartial) {
		counts = counts.TrimPartial()
	}
	if len(counts) == 0 {
		return fmt.Errorf("plotting %q: %w", opts.Infile, chart.ErrNoData)
	}

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("%s events per second", opts.Infile)
	}
	chartOpts := chart.Options{
		Title:        title,
		WidthInches:  cfg.Plot.WidthInches,
		HeightInches: cfg.Plot.HeightInches,
	}

	if opts.Outfile != "" {
		if err := chart.Render(counts, opts.Outfile, chartOpts); err != nil {
			return err
		}
		logger.Info("saved chart",
			zap.String("path", opts.Outfile),
			zap.Int("buckets", len(counts)))
		return nil
	}

	return chart.RenderASCII(counts, cmd.OutOrStdout(), chartOpts)
}
