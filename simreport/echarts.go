// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simreport

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/simplesim/cacheplot/simproc"
)

// writeECharts renders the same grouped bar charts as the PNG output
// as an interactive HTML page: one chart per category and level, a
// series per cache size.
func writeECharts(w io.Writer, r *Report) error {
	page := components.NewPage()
	for _, s := range r.Sections {
		for _, t := range s.complete() {
			page.AddCharts(newBar(t))
		}
	}
	return page.Render(w)
}

func newBar(t *simproc.Table) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: t.Title()}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Program name"}),
		charts.WithYAxisOpts(opts.YAxis{Name: simproc.MetricLabel(t.Metric)}),
		charts.WithLegendOpts(opts.Legend{Top: "bottom"}),
		charts.WithAnimation(false),
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#FFFFFF",
		}),
	)
	bar.SetXAxis(t.Programs)
	for _, b := range t.Buckets {
		data := make([]opts.BarData, len(b.Values))
		for i, v := range b.Values {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(b.Desc, data)
	}
	return bar
}
