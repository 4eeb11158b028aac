// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/katalvlaran/linsys/iterative"
)

// WriteHTML renders an interactive page with both convergence charts (values
// per variable, and max error on a log axis) into w.
func WriteHTML(w io.Writer, res *iterative.Result, options ...Option) error {
	if res == nil || len(res.Table) == 0 {
		return ErrEmptyTable
	}
	o := gatherOptions(options...)

	title := fmt.Sprintf("%s convergence", res.Method)
	if o.title != "" {
		title = o.title
	}

	iterations := make([]int, len(res.Table))
	for i, row := range res.Table {
		iterations[i] = row.Iteration
	}

	values := newLine(title, "values per iteration", "value")
	values.SetXAxis(iterations)
	for v, name := range res.Names {
		data := make([]opts.LineData, len(res.Table))
		for i, row := range res.Table {
			data[i] = opts.LineData{Value: row.Values[v]}
		}
		values.AddSeries(name, data)
	}

	errs := newLine(title, "max error per iteration", "max error")
	errs.SetGlobalOptions(charts.WithYAxisOpts(opts.YAxis{Name: "max error", Type: "log"}))
	errs.SetXAxis(iterations)
	data := make([]opts.LineData, len(res.Table))
	for i, row := range res.Table {
		e := row.MaxError
		if !(e > errorFloor) {
			e = errorFloor
		}
		data[i] = opts.LineData{Value: e}
	}
	errs.AddSeries("max error", data)

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(values, errs)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	return nil
}

func newLine(title, subtitle, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Type: "scroll", Orient: "vertical", Right: "10", Top: "20"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Scale: opts.Bool(true)}),
	)

	return line
}
