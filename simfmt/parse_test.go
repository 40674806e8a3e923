// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simfmt

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/simplesim/cacheplot/internal/logging"
)

func TestParse(t *testing.T) {
	check := func(text string, want ...Field) {
		t.Helper()
		got := Parse(text, "test")
		if diff := cmp.Diff(want, got.Fields); diff != "" {
			t.Errorf("Parse(%q) fields mismatch (-want +got):\n%s", text, diff)
		}
	}

	// Parameters keep their raw text; results become numbers.
	check("banner\n-cache:il1 8:32:1:l #comment\nsim.IPC 0x2 #comment\n",
		Field{"cache_il1", StringValue("8:32:1:l")},
		Field{"sim_IPC", IntValue(2)},
	)
	check("banner\nil1.miss_rate      0.0215 # miss rate\n",
		Field{"il1_miss_rate", FloatValue(0.0215)},
	)
	check("banner\nsim_num_insn 50000000 # total\n",
		Field{"sim_num_insn", FloatValue(50000000)},
	)

	// Nothing on the first line is matched.
	check("-cache:il1 8:32:1:l #comment\n")

	// The parameter value runs to the comment marker.
	check("x\n-cache:dl1       dl1:256:32:1:l # l1 data cache config, i.e., {<config>|none}\n",
		Field{"cache_dl1", StringValue("dl1:256:32:1:l")},
	)

	// Last match wins, in the position of the first.
	check("x\na.b 1 #\nc 2 #\na.b 3 #\n",
		Field{"a_b", FloatValue(3)},
		Field{"c", FloatValue(2)},
	)

	// Lines without a comment marker are not fields.
	check("x\nsim_IPC 1.5\nsim: ** simulation statistics **\n")
}

func TestParseDropsBadNumbers(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	defer logging.SetOutput(os.Stderr)

	text := "banner\n" +
		"-benchmark:program_name gcc # program\n" +
		"sim_IPC not_a_number # bad\n" +
		"il1.miss_rate 0.5 # good\n" +
		"dl1.accesses 10x5 # bad hex\n"
	rec := Parse(text, "bad.txt")

	if _, ok := rec.Get("sim_IPC"); ok {
		t.Errorf("sim_IPC present, want dropped")
	}
	if _, ok := rec.Get("dl1_accesses"); ok {
		t.Errorf("dl1_accesses present, want dropped")
	}
	if got := rec.Str("benchmark_program_name"); got != "gcc" {
		t.Errorf("benchmark_program_name = %q, want gcc", got)
	}
	if got, ok := rec.Number("il1_miss_rate"); !ok || got != 0.5 {
		t.Errorf("il1_miss_rate = %v, %v, want 0.5, true", got, ok)
	}
	if rec.Len() != 2 {
		t.Errorf("got %d fields, want 2", rec.Len())
	}

	log := buf.String()
	for _, want := range []string{"field=sim_IPC", "value=not_a_number", "file=bad.txt", "field=dl1_accesses"} {
		if !strings.Contains(log, want) {
			t.Errorf("log output missing %q:\n%s", want, log)
		}
	}
}

func TestParseWideHex(t *testing.T) {
	text := "banner\nmem_brk 0xffffffffffffffff # top\nld_stack_base 0x7fffc000 # stack\n"
	rec := Parse(text, "wide.txt")
	v, ok := rec.Get("mem_brk")
	if !ok {
		t.Fatalf("mem_brk dropped; fields %v", rec.Fields)
	}
	if v != IntValue(0xffffffffffffffff) {
		t.Errorf("mem_brk = %v, want %d", v, uint64(0xffffffffffffffff))
	}
	if got := v.String(); got != "18446744073709551615" {
		t.Errorf("mem_brk.String() = %q", got)
	}
	if v, _ := rec.Get("ld_stack_base"); v != IntValue(0x7fffc000) {
		t.Errorf("ld_stack_base = %v", v)
	}
}

func TestParseIdempotent(t *testing.T) {
	text := "banner\n-cache:il1 il1:512:32:1:l # cfg\nsim_IPC 1.25 # ipc\nld_text_base 0x00400000 # base\n"
	a, b := Parse(text, "a"), Parse(text, "b")
	if diff := cmp.Diff(a.Fields, b.Fields); diff != "" {
		t.Errorf("parsing twice differs (-first +second):\n%s", diff)
	}
	if v, _ := a.Get("ld_text_base"); v != IntValue(0x400000) {
		t.Errorf("ld_text_base = %v, want %d", v, 0x400000)
	}
}

func TestRecordLiteral(t *testing.T) {
	// Records built directly must still support lookup and Set.
	r := &Record{Fields: []Field{{"a", StringValue("x")}, {"b", FloatValue(1)}}}
	if got := r.Str("a"); got != "x" {
		t.Errorf("Str(a) = %q, want x", got)
	}
	r.Set("a", StringValue("y"))
	r.Set("c", IntValue(7))
	want := []Field{{"a", StringValue("y")}, {"b", FloatValue(1)}, {"c", IntValue(7)}}
	if diff := cmp.Diff(want, r.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	if _, ok := r.Number("a"); ok {
		t.Errorf("Number(a) ok for string field")
	}
}
