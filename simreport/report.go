// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simreport writes grouped simulator metrics in textual forms:
// aligned text, CSV, an HTML table, or an interactive HTML chart page.
//
// Reports are built from the same simproc.Tables the PNG charts are
// drawn from, and include only complete tables.
package simreport

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"

	"github.com/simplesim/cacheplot/cachesize"
	"github.com/simplesim/cacheplot/simproc"
)

// A Format selects the report encoding.
type Format int

const (
	None Format = iota
	Text
	CSV
	HTML
	ECharts
)

var formatNames = map[string]Format{
	"none":    None,
	"text":    Text,
	"csv":     CSV,
	"html":    HTML,
	"echarts": ECharts,
}

// ParseFormat parses a format name: none, text, csv, html or echarts.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(s)]; ok {
		return f, nil
	}
	return None, fmt.Errorf("unknown report format %q", s)
}

func (f Format) String() string {
	for name, g := range formatNames {
		if g == f {
			return name
		}
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// A Section is the tables of one chart category.
type Section struct {
	Category string
	Tables   []*simproc.Table
}

// A Report is everything produced by one run.
type Report struct {
	Pattern  string
	Programs []string
	Sections []Section
}

// Write encodes r to w in format f.
func Write(w io.Writer, f Format, r *Report) error {
	switch f {
	case None:
		return nil
	case Text:
		return writeText(w, r)
	case CSV:
		return writeCSV(w, r)
	case HTML:
		return writeHTML(w, r)
	case ECharts:
		return writeECharts(w, r)
	}
	return fmt.Errorf("unknown report format %v", f)
}

// complete returns the tables of s that have complete data, without
// logging; the chart renderer already reports skipped levels.
func (s Section) complete() []*simproc.Table {
	var out []*simproc.Table
	for _, t := range s.Tables {
		if t.Complete() {
			out = append(out, t)
		}
	}
	return out
}

// Geomean returns the geometric mean of bucket j across programs. It is
// NaN if any value is negative.
func Geomean(t *simproc.Table, j int) float64 {
	return stats.GeoMean(t.Buckets[j].Values)
}

// formatValue prints large values such as access counts as whole
// numbers and small ones (rates, IPC) to four significant digits.
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "~"
	case math.Abs(v) >= 1000:
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// sizeLabel renders the effective size of desc, or "?" if it does not
// parse.
func sizeLabel(desc string) string {
	n, err := cachesize.Size(desc)
	if err != nil {
		return "?"
	}
	return cachesize.Format(n)
}
