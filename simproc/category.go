// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simproc

import (
	"fmt"
	"strings"

	"github.com/simplesim/cacheplot/simfmt"
)

// A Category is a family of metrics charted together, one metric per
// cache level.
type Category struct {
	// Name is used in output file names, e.g. "miss_rate".
	Name string

	// Metric returns the record field charted for level.
	Metric func(level Level) string
}

// Categories are the standard charts, in output order.
var Categories = []Category{
	{
		Name:   "ipc",
		Metric: func(Level) string { return "sim_IPC" },
	},
	{
		Name:   "miss_rate",
		Metric: func(l Level) string { return l.Name() + "_miss_rate" },
	},
	{
		Name:   "mem_accesses",
		Metric: func(l Level) string { return l.Name() + "_accesses" },
	},
}

// LookupCategory returns the standard category called name.
func LookupCategory(name string) (Category, error) {
	for _, c := range Categories {
		if c.Name == name {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("unknown chart category %q", name)
}

// MetricLabel turns a metric field name into a human-readable label:
// "sim_IPC" becomes "IPC" and "il1_miss_rate" becomes "IL1 Miss Rate".
func MetricLabel(metric string) string {
	words := strings.Split(strings.TrimPrefix(metric, "sim_"), "_")
	for i, w := range words {
		if _, err := ParseLevel(w); err == nil {
			words[i] = strings.ToUpper(w)
			continue
		}
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Title returns the chart title for t, such as
// "Cache IL1 Size vs IL1 Miss Rate".
func (t *Table) Title() string {
	return fmt.Sprintf("Cache %s Size vs %s", t.Level, MetricLabel(t.Metric))
}

// Build aggregates every level of c, in Levels order. The result
// includes incomplete tables; see Complete.
func (c Category) Build(rs *simfmt.ResultSet, programs []string, mode Discovery) []*Table {
	ts := make([]*Table, 0, len(Levels))
	for _, l := range Levels {
		ts = append(ts, Aggregate(rs, programs, l, c.Metric(l), mode))
	}
	return ts
}
