// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simfmt reads the text reports written by SimpleScalar-style
// architectural simulators.
//
// A report contains two kinds of interesting lines. Parameter lines
// echo the simulator configuration:
//
//	-cache:il1       il1:512:32:1:l # l1 inst cache config
//
// and result lines report statistics gathered during the run:
//
//	sim_IPC                      1.4821 # instructions per cycle
//	il1.accesses             0x2f4ae10 # total number of accesses
//
// Each report is turned into a Record, a flat ordered mapping from
// field name to Value. Field names are derived from the raw names by
// replacing ':' (parameters) or '.' (results) with '_', so the lines
// above produce the fields cache_il1, sim_IPC and il1_accesses.
package simfmt

import (
	"fmt"
	"strconv"
)

// A Kind is the type of a Value.
type Kind int

const (
	String Kind = iota
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Value is a single field value from a simulator report. Parameters
// are always Strings; results are Ints or Floats.
type Value struct {
	Kind  Kind
	Str   string
	Int   uint64
	Float float64
}

// StringValue, IntValue and FloatValue construct Values of each kind.
func StringValue(s string) Value { return Value{Kind: String, Str: s} }
func IntValue(i uint64) Value    { return Value{Kind: Int, Int: i} }
func FloatValue(f float64) Value { return Value{Kind: Float, Float: f} }

// Number returns v as a float64. ok is false if v is a String.
func (v Value) Number() (n float64, ok bool) {
	switch v.Kind {
	case Int:
		return float64(v.Int), true
	case Float:
		return v.Float, true
	}
	return 0, false
}

func (v Value) String() string {
	switch v.Kind {
	case Int:
		return strconv.FormatUint(v.Int, 10)
	case Float:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
	return v.Str
}

// A Field is a single name/value pair of a Record.
type Field struct {
	Name  string
	Value Value
}

// A Record is the set of fields parsed from one simulator report.
//
// Fields keep the order in which their names were first seen. Setting
// an existing name replaces its value in place, so a report that
// repeats a field keeps the last value.
type Record struct {
	Fields []Field

	// pos maps from Field.Name to index in Fields. This may be nil,
	// which indicates the index needs to be constructed.
	pos map[string]int
}

// Set sets field name to v, adding it if necessary.
func (r *Record) Set(name string, v Value) {
	if i, ok := r.index(name); ok {
		r.Fields[i].Value = v
		return
	}
	r.pos[name] = len(r.Fields)
	r.Fields = append(r.Fields, Field{name, v})
}

// Get returns the value of field name and whether it is present.
func (r *Record) Get(name string) (Value, bool) {
	if i, ok := r.index(name); ok {
		return r.Fields[i].Value, true
	}
	return Value{}, false
}

// Str returns the string form of field name, or "" if it is absent.
func (r *Record) Str(name string) string {
	v, ok := r.Get(name)
	if !ok {
		return ""
	}
	return v.String()
}

// Number returns field name as a float64. ok is false if the field is
// absent or is not numeric.
func (r *Record) Number(name string) (float64, bool) {
	v, ok := r.Get(name)
	if !ok {
		return 0, false
	}
	return v.Number()
}

// Len returns the number of fields in r.
func (r *Record) Len() int {
	return len(r.Fields)
}

func (r *Record) index(name string) (int, bool) {
	if r.pos == nil {
		r.pos = make(map[string]int, len(r.Fields))
		for i, f := range r.Fields {
			r.pos[f.Name] = i
		}
	}
	i, ok := r.pos[name]
	return i, ok
}
