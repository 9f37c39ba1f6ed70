// Package chart renders bucketed count series as rate-over-time charts,
// either persisted as an image file or drawn on the terminal.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ratelog/ratelog/pkg/series"
)

// ErrNoData reports that there is nothing to render: the log group resolved
// to zero files or the derived series is empty.
var ErrNoData = errors.New("no data to plot")

// Options controls chart appearance.
type Options struct {
	Title        string
	WidthInches  float64
	HeightInches float64
}

func (o Options) withDefaults() Options {
	if o.WidthInches <= 0 {
		o.WidthInches = 8
	}
	if o.HeightInches <= 0 {
		o.HeightInches = 4
	}
	return o
}

// Render writes counts as a line-and-points chart to path. The image format
// follows the file extension (.png, .svg, .pdf, ...). The x axis is the
// bucket index (elapsed whole seconds since the earliest observed
// timestamp), the y axis the event count in that second.
func Render(counts series.Counts, path string, opts Options) error {
	if len(counts) == 0 {
		return ErrNoData
	}
	opts = opts.withDefaults()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "elapsed seconds"
	p.Y.Label.Text = "events per second"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(counts))
	for i, count := range counts {
		pts[i].X = float64(i)
		pts[i].Y = float64(count)
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("building chart: %w", err)
	}
	p.Add(line, points)

	w := vg.Length(opts.WidthInches) * vg.Inch
	h := vg.Length(opts.HeightInches) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("saving chart to %s: %w", path, err)
	}
	return nil
}

// RenderASCII draws counts as a terminal line chart. Used by the plot
// command when no output image path is given.
func RenderASCII(counts series.Counts, w io.Writer, opts Options) error {
	if len(counts) == 0 {
		return ErrNoData
	}

	graph := asciigraph.Plot(counts.Floats(),
		asciigraph.Height(12),
		asciigraph.Caption(opts.Title),
	)
	_, err := fmt.Fprintln(w, graph)
	return err
}
