// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simchart

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/simplesim/cacheplot/simproc"
)

func table(level simproc.Level, metric string, buckets ...simproc.Bucket) *simproc.Table {
	return &simproc.Table{
		Level:    level,
		Metric:   metric,
		Programs: []string{"bzip2", "gcc"},
		Buckets:  buckets,
	}
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	return img
}

// distinctColors counts the distinct colors in img, stopping at max.
func distinctColors(img image.Image, max int) int {
	seen := make(map[[4]uint32]bool)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x += 2 {
			r, g, bl, a := img.At(x, y).RGBA()
			seen[[4]uint32{r, g, bl, a}] = true
			if len(seen) >= max {
				return len(seen)
			}
		}
	}
	return len(seen)
}

func TestRender(t *testing.T) {
	c := &Chart{
		Category: "miss_rate",
		Pattern:  "QA",
		Programs: []string{"bzip2", "gcc"},
		Tables: []*simproc.Table{
			table(simproc.IL1, "il1_miss_rate",
				simproc.Bucket{Desc: "il1:256:32:1:l", Values: []float64{0.0012, 0.0215}},
				simproc.Bucket{Desc: "il1:512:32:1:l", Values: []float64{0.0004, 0.0081}}),
			// Only one of two programs has data: skipped.
			table(simproc.DL1, "dl1_miss_rate",
				simproc.Bucket{Desc: "dl1:256:32:1:l", Values: []float64{0.04}}),
			table(simproc.UL2, "ul2_miss_rate",
				simproc.Bucket{Desc: "ul2:1024:64:4:l", Values: []float64{0.18, 0.09}}),
		},
	}

	panels := c.Panels()
	if len(panels) != 2 || panels[0].Level != simproc.IL1 || panels[1].Level != simproc.UL2 {
		t.Fatalf("panels = %v, want IL1 and UL2", panels)
	}

	var buf bytes.Buffer
	opts := Options{Width: 6 * vg.Inch, PanelHeight: 3 * vg.Inch, DPI: 50}
	if err := Render(&buf, c, opts); err != nil {
		t.Fatal(err)
	}
	img := decode(t, buf.Bytes())
	if got, want := img.Bounds().Dx(), 300; got != want {
		t.Errorf("width = %d px, want %d", got, want)
	}
	if got, want := img.Bounds().Dy(), 300; got != want {
		t.Errorf("height = %d px, want %d (two panels)", got, want)
	}
	if n := distinctColors(img, 4); n < 4 {
		t.Errorf("image has only %d colors, want a drawn chart", n)
	}
}

func TestRenderEmpty(t *testing.T) {
	c := &Chart{
		Category: "ipc",
		Pattern:  "QA",
		Programs: []string{"bzip2", "gcc"},
		Tables: []*simproc.Table{
			table(simproc.IL1, "sim_IPC"),
		},
	}
	var buf bytes.Buffer
	if err := Render(&buf, c, Options{DPI: 20}); err != nil {
		t.Fatalf("rendering empty chart: %v", err)
	}
	img := decode(t, buf.Bytes())
	if n := distinctColors(img, 2); n != 1 {
		t.Errorf("empty chart has %d colors, want plain background", n)
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "charts")
	c := &Chart{
		Category: "ipc",
		Pattern:  "QA",
		Programs: []string{"bzip2", "gcc"},
		Tables: []*simproc.Table{
			table(simproc.IL1, "sim_IPC",
				simproc.Bucket{Desc: "8:16:1", Values: []float64{1.8, 0.9}},
				simproc.Bucket{Desc: "4:16:1", Values: []float64{1.4, 0.7}}),
		},
	}
	path, err := WriteFile(dir, c, Options{DPI: 30})
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "sim_ipc_QA.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	decode(t, data)
}

func TestFileName(t *testing.T) {
	for _, tc := range []struct{ cat, pattern, want string }{
		{"ipc", "QA", "sim_ipc_QA.png"},
		{"miss_rate", "32K", "sim_miss_rate_32K.png"},
		{"mem_accesses", "", "sim_mem_accesses_.png"},
	} {
		if got := FileName(tc.cat, tc.pattern); got != tc.want {
			t.Errorf("FileName(%q, %q) = %q, want %q", tc.cat, tc.pattern, got, tc.want)
		}
	}
}

func TestPaletteFor(t *testing.T) {
	for _, n := range []int{0, 1, 3, 9, 15} {
		cs, err := paletteFor(n)
		if err != nil {
			t.Fatalf("paletteFor(%d): %v", n, err)
		}
		if len(cs) < 3 {
			t.Errorf("paletteFor(%d) gave %d colors", n, len(cs))
		}
	}
}

func TestLegendLabel(t *testing.T) {
	for _, tc := range []struct{ desc, want string }{
		{"il1:512:32:1:l", "il1:512:32:1:l (16KiB)"},
		{"dl1:48:32:1:l", "dl1:48:32:1:l (1.5KiB)"},
		{"none", "none"},
	} {
		if got := legendLabel(tc.desc); got != tc.want {
			t.Errorf("legendLabel(%q) = %q, want %q", tc.desc, got, tc.want)
		}
	}
}
