// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simproc

// A Bucket holds the values of one metric for one cache descriptor, one
// value per program in Table.Programs order.
type Bucket struct {
	Desc   string
	Values []float64
}

// A Table is the grouped values of one metric at one cache level.
type Table struct {
	Level    Level
	Metric   string
	Programs []string

	// Buckets are ordered by ascending cache size.
	Buckets []Bucket

	// pos maps from Bucket.Desc to index in Buckets while the
	// table is being built.
	pos map[string]int

	// uneven holds the descriptors of buckets to which some program
	// contributed other than exactly one value. Such a bucket may
	// still have one value per program in total.
	uneven map[string]bool
}

func (t *Table) bucket(desc string) *Bucket {
	if t.pos == nil {
		t.pos = make(map[string]int)
	}
	i, ok := t.pos[desc]
	if !ok {
		i = len(t.Buckets)
		t.pos[desc] = i
		t.Buckets = append(t.Buckets, Bucket{Desc: desc})
	}
	return &t.Buckets[i]
}

// Descs returns the bucket descriptors in order.
func (t *Table) Descs() []string {
	out := make([]string, len(t.Buckets))
	for i, b := range t.Buckets {
		out[i] = b.Desc
	}
	return out
}

// Complete reports whether t has at least one bucket and every bucket
// has exactly one value per program. Only complete tables are charted.
func (t *Table) Complete() bool {
	return len(t.Buckets) > 0 && len(t.Short()) == 0
}

// Short returns the buckets that do not hold exactly one value from
// each program.
func (t *Table) Short() []Bucket {
	var out []Bucket
	for _, b := range t.Buckets {
		if len(b.Values) != len(t.Programs) || t.uneven[b.Desc] {
			out = append(out, b)
		}
	}
	return out
}

// Restrict drops buckets whose descriptor is not in descs, preserving
// the order of the remaining buckets.
func (t *Table) Restrict(descs []string) {
	keep := make(map[string]bool, len(descs))
	for _, d := range descs {
		keep[d] = true
	}
	out := t.Buckets[:0]
	for _, b := range t.Buckets {
		if keep[b.Desc] {
			out = append(out, b)
		}
	}
	t.Buckets = out
	t.pos = nil
}

// Value returns the value for program index i in bucket j.
func (t *Table) Value(j, i int) float64 {
	return t.Buckets[j].Values[i]
}
