// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simchart renders grouped bar charts of simulator metrics.
package simchart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/simplesim/cacheplot/cachesize"
	"github.com/simplesim/cacheplot/internal/logging"
	"github.com/simplesim/cacheplot/simproc"
)

// BarStep is the horizontal distance, in x-axis units, between the bars
// of neighbouring cache sizes within one program's group.
const BarStep = 0.2

// A Chart is one output image: a metric category charted at each cache
// level with complete data.
type Chart struct {
	// Category names the chart in the output file name, e.g. "ipc".
	Category string

	// Pattern is the file pattern the results were selected with.
	// It is also embedded in the file name.
	Pattern string

	// Programs are the x-axis categories, in order.
	Programs []string

	// Tables holds one table per cache level. Incomplete tables are
	// skipped; the rest are drawn top to bottom in level order.
	Tables []*simproc.Table
}

// Options controls the geometry of rendered images.
type Options struct {
	// Width of the image. If zero, it is derived from the number
	// of programs.
	Width vg.Length

	// PanelHeight is the height of each level's subplot.
	PanelHeight vg.Length

	DPI int
}

// DefaultOptions are used for zero fields of Options.
var DefaultOptions = Options{
	PanelHeight: 4 * vg.Inch,
	DPI:         96,
}

func (o Options) withDefaults(programs int) Options {
	if o.PanelHeight == 0 {
		o.PanelHeight = DefaultOptions.PanelHeight
	}
	if o.DPI == 0 {
		o.DPI = DefaultOptions.DPI
	}
	if o.Width == 0 {
		// Heuristic width: a program's bar group is about an inch
		// and a half wide, plus room for the axis labels.
		o.Width = vg.Length(1+1.5*float64(programs)) * vg.Inch
		if o.Width < 6*vg.Inch {
			o.Width = 6 * vg.Inch
		}
	}
	return o
}

// FileName returns the name of the image file for category and pattern.
func FileName(category, pattern string) string {
	return fmt.Sprintf("sim_%s_%s.png", category, pattern)
}

// Panels returns the tables of c that will be drawn, in level order.
func (c *Chart) Panels() []*simproc.Table {
	ts := simproc.Complete(c.Tables)
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Level < ts[j].Level })
	return ts
}

// Render draws c as a PNG image to w.
//
// Each level with complete data gets its own subplot. If no level has
// complete data the image is blank; this is not an error.
func Render(w io.Writer, c *Chart, opts Options) error {
	opts = opts.withDefaults(len(c.Programs))
	panels := c.Panels()

	rows := len(panels)
	height := opts.PanelHeight * vg.Length(rows)
	if rows == 0 {
		height = opts.PanelHeight
	}
	can := vgimg.NewWith(vgimg.UseWH(opts.Width, height),
		vgimg.UseDPI(opts.DPI), vgimg.UseBackgroundColor(color.White))

	if rows > 0 {
		plots := make([][]*plot.Plot, rows)
		for i, t := range panels {
			p, err := newPanel(t, c.Programs, opts.Width)
			if err != nil {
				return fmt.Errorf("%s chart, level %s: %w", c.Category, t.Level, err)
			}
			plots[i] = []*plot.Plot{p}
		}
		tiles := draw.Tiles{
			Rows:      rows,
			Cols:      1,
			PadY:      vg.Millimeter * 6,
			PadTop:    vg.Millimeter * 3,
			PadBottom: vg.Millimeter * 3,
			PadLeft:   vg.Millimeter * 3,
			PadRight:  vg.Millimeter * 3,
		}
		canvases := plot.Align(plots, tiles, draw.New(can))
		for i := range plots {
			plots[i][0].Draw(canvases[i][0])
		}
	}

	_, err := vgimg.PngCanvas{Canvas: can}.WriteTo(w)
	return err
}

// WriteFile renders c into dir, creating dir if necessary, and returns
// the path written.
func WriteFile(dir string, c *Chart, opts Options) (string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(c.Category, c.Pattern))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Render(f, c, opts); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	logging.GetLogger().WithField("path", path).Info("Wrote chart")
	return path, nil
}

// newPanel builds the subplot for one level: a bar group per program,
// and within it a bar per cache size, smallest first.
func newPanel(t *simproc.Table, programs []string, width vg.Length) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = t.Title()
	p.Y.Label.Text = simproc.MetricLabel(t.Metric)
	p.X.Label.Text = "Program name"

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	colors, err := paletteFor(len(t.Buckets))
	if err != nil {
		return nil, err
	}

	buckets := t.Buckets
	if !cachesize.IsSorted(t.Descs()) {
		buckets = append([]simproc.Bucket(nil), t.Buckets...)
		cachesize.SortBy(buckets, func(b simproc.Bucket) string { return b.Desc })
	}

	n := len(buckets)
	// Approximate the length of one x-axis unit so bars fill most
	// of their slot without touching.
	span := float64(len(programs)) - 1 + BarStep*float64(n) + 0.4
	unit := (width - 1.5*vg.Inch) / vg.Length(span)
	barWidth := unit * BarStep * 0.9

	for j, b := range buckets {
		bc, err := plotter.NewBarChart(plotter.Values(b.Values), barWidth)
		if err != nil {
			return nil, fmt.Errorf("bucket %s: %w", b.Desc, err)
		}
		bc.XMin = BarStep*float64(j) - BarStep*float64(n-1)/2
		bc.Color = colors[j%len(colors)]
		bc.LineStyle.Width = 0
		p.Add(bc)
		p.Legend.Add(legendLabel(b.Desc), bc)
	}

	p.NominalX(programs...)
	p.Legend.Top = true
	p.Legend.Padding = vg.Millimeter
	return p, nil
}

// legendLabel names a bar series by its descriptor and, when the
// descriptor parses, its effective size.
func legendLabel(desc string) string {
	n, err := cachesize.Size(desc)
	if err != nil {
		return desc
	}
	return fmt.Sprintf("%s (%s)", desc, cachesize.FormatApprox(n))
}

// paletteFor returns n distinguishable colors, repeating if n exceeds
// the palette size.
func paletteFor(n int) ([]color.Color, error) {
	const lo, hi = 3, 9 // sizes offered by the Set1 palette
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	pal, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", n)
	if err != nil {
		return nil, err
	}
	return pal.Colors(), nil
}
