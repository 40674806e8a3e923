// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out aligned plain-text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table accumulates rows of cells and formats them in aligned columns.
//
// Row and Cell return the Table so calls can be chained.
type Table struct {
	rows [][]cell
	cols int
}

type cell struct {
	value string
	align align
}

type align int

const (
	alignLeft align = iota
	alignRight
)

// A CellOption changes how a cell is laid out.
type CellOption func(c *cell)

var (
	Left  CellOption = func(c *cell) { c.align = alignLeft }
	Right CellOption = func(c *cell) { c.align = alignRight }
)

// Row starts a new row.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell appends a cell to the current row, starting a row if there is
// none.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	r := len(t.rows) - 1
	t.rows[r] = append(t.rows[r], c)
	if len(t.rows[r]) > t.cols {
		t.cols = len(t.rows[r])
	}
	return t
}

// Format writes t to w. Columns are separated by two spaces and
// trailing blanks are trimmed from each line.
func (t *Table) Format(w io.Writer) error {
	widths := make([]int, t.cols)
	for _, row := range t.rows {
		for i, c := range row {
			if n := utf8.RuneCountInString(c.value); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for i, c := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			pad := widths[i] - utf8.RuneCountInString(c.value)
			if c.align == alignRight {
				fmt.Fprintf(&line, "%*s%s", pad, "", c.value)
			} else {
				fmt.Fprintf(&line, "%s%*s", c.value, pad, "")
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
