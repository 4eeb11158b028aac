// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/linsys/iterative"
)

// ErrEmptyTable is returned for a result without iterations.
var ErrEmptyTable = errors.New("chart: empty iteration table")

const (
	// DefaultWidth and DefaultHeight are in inches.
	DefaultWidth  = 6.0
	DefaultHeight = 4.0

	// errorFloor replaces zero errors on the log axis.
	errorFloor = 1e-16
)

const panicSizeInvalid = "chart: WithSize: dimensions must be > 0"

// Option configures a chart.
type Option func(*Options)

// Options holds the chart settings.
type Options struct {
	width, height float64
	title         string
}

// WithSize sets width and height in inches. Panics on non-positive values.
func WithSize(width, height float64) Option {
	if !(width > 0) || !(height > 0) {
		panic(panicSizeInvalid)
	}

	return func(o *Options) { o.width, o.height = width, height }
}

// WithTitle overrides the default title.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

func gatherOptions(user ...Option) Options {
	o := Options{width: DefaultWidth, height: DefaultHeight}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Chart is a rendered-on-demand plot with its target size.
type Chart struct {
	Plot          *plot.Plot
	width, height vg.Length
}

// Values plots every variable's value against the iteration number.
func Values(res *iterative.Result, opts ...Option) (*Chart, error) {
	if res == nil || len(res.Table) == 0 {
		return nil, ErrEmptyTable
	}
	o := gatherOptions(opts...)

	p := newPlot(o, fmt.Sprintf("%s: values per iteration", res.Method), "value")
	for v, name := range res.Names {
		pts := make(plotter.XYs, len(res.Table))
		for i, row := range res.Table {
			pts[i].X = float64(row.Iteration)
			pts[i].Y = row.Values[v]
		}
		if err := addLine(p, name, v, pts); err != nil {
			return nil, err
		}
	}

	return newChart(p, o), nil
}

// MaxError plots the maximum per-variable error of each iteration on a
// logarithmic axis. Zero errors are drawn at 1e-16.
func MaxError(res *iterative.Result, opts ...Option) (*Chart, error) {
	if res == nil || len(res.Table) == 0 {
		return nil, ErrEmptyTable
	}
	o := gatherOptions(opts...)

	p := newPlot(o, fmt.Sprintf("%s: max error per iteration", res.Method), "max error")
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	pts := make(plotter.XYs, len(res.Table))
	for i, row := range res.Table {
		pts[i].X = float64(row.Iteration)
		pts[i].Y = row.MaxError
		if !(pts[i].Y > errorFloor) {
			pts[i].Y = errorFloor
		}
	}
	if err := addLine(p, "max error", 0, pts); err != nil {
		return nil, err
	}

	return newChart(p, o), nil
}

func newPlot(o Options, title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	if o.title != "" {
		p.Title.Text = o.title
	}
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	return p
}

func addLine(p *plot.Plot, name string, idx int, pts plotter.XYs) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("chart: line %s: %w", name, err)
	}
	l.Color = plotutil.Color(idx)
	l.Dashes = plotutil.Dashes(idx)
	p.Add(l)
	p.Legend.Add(name, l)

	return nil
}

func newChart(p *plot.Plot, o Options) *Chart {
	return &Chart{
		Plot:   p,
		width:  vg.Length(o.width) * vg.Inch,
		height: vg.Length(o.height) * vg.Inch,
	}
}

// WritePNG encodes the chart as PNG into w.
func (c *Chart) WritePNG(w io.Writer) error {
	wt, err := c.Plot.WriterTo(c.width, c.height, "png")
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	return nil
}

// Save writes the chart to path; the format follows the extension
// (.png, .svg, .pdf, ...).
func (c *Chart) Save(path string) error {
	if err := c.Plot.Save(c.width, c.height, path); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	return nil
}
