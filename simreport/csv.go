// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simreport

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/simplesim/cacheplot/cachesize"
)

var csvHeader = []string{"category", "level", "metric", "program", "cache", "size_bytes", "value"}

// writeCSV emits one row per program, level and cache size. Values are
// printed with full precision for consumption by other programs.
func writeCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	row := make([]string, len(csvHeader))
	for _, s := range r.Sections {
		for _, t := range s.complete() {
			for j, b := range t.Buckets {
				size := ""
				if n, err := cachesize.Size(b.Desc); err == nil {
					size = strconv.FormatInt(n, 10)
				}
				for i, prog := range t.Programs {
					row = append(row[:0], s.Category, t.Level.String(), t.Metric, prog, b.Desc, size,
						strconv.FormatFloat(t.Value(j, i), 'f', -1, 64))
					if err := cw.Write(row); err != nil {
						return err
					}
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
