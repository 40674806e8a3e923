// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	check := func(tab *Table, want string) {
		t.Helper()
		var buf strings.Builder
		if err := tab.Format(&buf); err != nil {
			t.Fatal(err)
		}
		got := buf.String()
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	}

	tab := new(Table)
	tab.Row().Cell("program").Cell("16KiB", Right).Cell("8KiB", Right)
	tab.Row().Cell("bzip2").Cell("1.3307", Right).Cell("1.2104", Right)
	tab.Row().Cell("gcc").Cell("1", Right)
	check(tab, ""+
		"program   16KiB    8KiB\n"+
		"bzip2    1.3307  1.2104\n"+
		"gcc           1\n")

	// Cell without Row starts the first row; left is the default.
	tab = new(Table)
	tab.Cell("a").Cell("bb")
	tab.Row().Cell("ccc")
	check(tab, "a    bb\nccc\n")

	check(new(Table), "")
}
