// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simproc groups parsed simulator reports by benchmark program
// and cache configuration.
//
// The typical flow is:
//
// 1. Load a simfmt.ResultSet.
//
// 2. Find the programs with DistinctPrograms. Their order is the order
// of bar groups in every chart.
//
// 3. For each cache level and metric, build a Table with Aggregate.
// A Table maps each cache descriptor to the metric values of every
// program, smallest cache first.
//
// 4. Keep only Tables that are Complete, or use Complete to filter a
// list of them, and hand them to a renderer.
package simproc

import (
	"fmt"
	"strings"

	"github.com/simplesim/cacheplot/cachesize"
	"github.com/simplesim/cacheplot/internal/logging"
	"github.com/simplesim/cacheplot/simfmt"
	"github.com/sirupsen/logrus"
)

// ProgramKey is the record field naming the benchmark program.
const ProgramKey = "benchmark_program_name"

// DistinctPrograms returns each program named in rs exactly once, in
// the order first seen. Records without a program name are ignored.
func DistinctPrograms(rs *simfmt.ResultSet) []string {
	var out []string
	seen := make(map[string]bool)
	for _, res := range rs.Results {
		p := res.Record.Str(ProgramKey)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// DistinctSizes returns the distinct cache descriptors for level used
// by program's records, in the order first seen.
//
// This treats program as representative of the whole result set: it
// assumes every program was run against the same configuration sweep.
func DistinctSizes(rs *simfmt.ResultSet, program string, level Level) []string {
	return distinct(rs, level, func(rec *simfmt.Record) bool {
		return rec.Str(ProgramKey) == program
	})
}

// AllSizes returns the distinct cache descriptors for level across all
// records in rs, in the order first seen.
func AllSizes(rs *simfmt.ResultSet, level Level) []string {
	return distinct(rs, level, func(*simfmt.Record) bool { return true })
}

func distinct(rs *simfmt.ResultSet, level Level, keep func(*simfmt.Record) bool) []string {
	var out []string
	seen := make(map[string]bool)
	key := level.ParamKey()
	for _, res := range rs.Results {
		if !keep(res.Record) {
			continue
		}
		d := res.Record.Str(key)
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// Discovery selects how the set of cache sizes for a level is found.
type Discovery int

const (
	// Union collects sizes from every program.
	Union Discovery = iota
	// Representative collects sizes from the first program only.
	Representative
)

// ParseDiscovery parses "union" or "representative".
func ParseDiscovery(s string) (Discovery, error) {
	switch strings.ToLower(s) {
	case "", "union":
		return Union, nil
	case "representative":
		return Representative, nil
	}
	return 0, fmt.Errorf("unknown size discovery mode %q", s)
}

func (d Discovery) String() string {
	if d == Representative {
		return "representative"
	}
	return "union"
}

// DiscoverSizes returns the cache descriptors for level, smallest
// first, according to mode.
func DiscoverSizes(rs *simfmt.ResultSet, programs []string, level Level, mode Discovery) []string {
	var sizes []string
	switch mode {
	case Representative:
		if len(programs) > 0 {
			sizes = DistinctSizes(rs, programs[0], level)
		}
	default:
		sizes = AllSizes(rs, level)
	}
	cachesize.Sort(sizes)
	return sizes
}

// GroupedValues collects the values of metric for level into a Table.
//
// Programs are processed in the given order. Each program's records are
// first ordered by cache size; then every record appends its metric to
// the bucket of its cache descriptor. Records missing the descriptor or
// a numeric metric contribute nothing, which leaves their bucket short.
// A program with two runs for one descriptor also makes that bucket
// short, even if another program's missing run evens out the count.
func GroupedValues(rs *simfmt.ResultSet, programs []string, level Level, metric string) *Table {
	log := logging.GetLogger().WithFields(logrus.Fields{
		"level":  level,
		"metric": metric,
	})
	t := &Table{
		Level:    level,
		Metric:   metric,
		Programs: append([]string(nil), programs...),
	}
	key := level.ParamKey()

	// counts[desc][i] is the number of values program i added.
	counts := make(map[string][]int)
	for i, prog := range programs {
		var recs []simfmt.Result
		for _, res := range rs.Results {
			if res.Record.Str(ProgramKey) == prog {
				recs = append(recs, res)
			}
		}
		cachesize.SortBy(recs, func(r simfmt.Result) string { return r.Record.Str(key) })

		for _, res := range recs {
			desc := res.Record.Str(key)
			if desc == "" {
				log.WithField("file", res.Name).Debugf("No %s descriptor", key)
				continue
			}
			v, ok := res.Record.Number(metric)
			if !ok {
				log.WithField("file", res.Name).Debug("Metric missing or not numeric")
				continue
			}
			b := t.bucket(desc)
			b.Values = append(b.Values, v)
			if counts[desc] == nil {
				counts[desc] = make([]int, len(programs))
			}
			counts[desc][i]++
		}
	}
	for desc, cs := range counts {
		for i, n := range cs {
			if n != 1 {
				if t.uneven == nil {
					t.uneven = make(map[string]bool)
				}
				t.uneven[desc] = true
				log.WithFields(logrus.Fields{
					"program": programs[i],
					"cache":   desc,
					"runs":    n,
				}).Debug("Program does not have exactly one run")
				break
			}
		}
	}

	cachesize.SortBy(t.Buckets, func(b Bucket) string { return b.Desc })
	t.pos = nil
	return t
}

// Aggregate builds the Table for metric at level, restricted to the
// cache sizes found by mode.
func Aggregate(rs *simfmt.ResultSet, programs []string, level Level, metric string, mode Discovery) *Table {
	t := GroupedValues(rs, programs, level, metric)
	t.Restrict(DiscoverSizes(rs, programs, level, mode))
	return t
}

// Complete returns the complete tables in ts, logging each one it
// drops and why.
func Complete(ts []*Table) []*Table {
	var out []*Table
	for _, t := range ts {
		if t.Complete() {
			out = append(out, t)
			continue
		}
		fields := logrus.Fields{
			"level":    t.Level,
			"metric":   t.Metric,
			"programs": len(t.Programs),
		}
		var short []string
		for _, b := range t.Short() {
			short = append(short, fmt.Sprintf("%s(%d)", b.Desc, len(b.Values)))
		}
		if len(short) > 0 {
			fields["short"] = strings.Join(short, ",")
		}
		logging.GetLogger().WithFields(fields).Warn("Incomplete data for cache level, skipping")
	}
	return out
}
