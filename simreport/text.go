// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simreport

import (
	"fmt"
	"io"

	"github.com/simplesim/cacheplot/internal/texttab"
)

// writeText prints one aligned table per category and level, with a
// program per row, a cache size per column and a final geomean row.
func writeText(w io.Writer, r *Report) error {
	first := true
	for _, s := range r.Sections {
		for _, t := range s.complete() {
			if !first {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			first = false

			if _, err := fmt.Fprintf(w, "%s %s: %s\n", s.Category, t.Level, t.Title()); err != nil {
				return err
			}
			tab := new(texttab.Table)
			tab.Row().Cell("program")
			for _, b := range t.Buckets {
				tab.Cell(b.Desc, texttab.Right)
			}
			tab.Row().Cell("")
			for _, b := range t.Buckets {
				tab.Cell(sizeLabel(b.Desc), texttab.Right)
			}
			for i, prog := range t.Programs {
				tab.Row().Cell(prog)
				for j := range t.Buckets {
					tab.Cell(formatValue(t.Value(j, i)), texttab.Right)
				}
			}
			tab.Row().Cell("geomean")
			for j := range t.Buckets {
				tab.Cell(formatValue(Geomean(t, j)), texttab.Right)
			}
			if err := tab.Format(w); err != nil {
				return err
			}
		}
	}
	return nil
}
