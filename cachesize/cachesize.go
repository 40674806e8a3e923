// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cachesize interprets simulator cache descriptors and orders
// them by capacity.
//
// A descriptor is a colon-separated configuration string such as
//
//	il1:512:32:1:l
//
// naming a cache, its number of sets, block size and associativity, and
// a replacement policy. Its effective size is nsets * bsize * assoc,
// here 16384 bytes. The cache name is optional ("8:32:1:l" is also a
// valid descriptor).
package cachesize

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// A Descriptor is the numeric geometry of a cache descriptor.
type Descriptor struct {
	NSets int64
	BSize int64
	Assoc int64
}

// Size returns the capacity described by d in bytes.
func (d Descriptor) Size() int64 {
	return d.NSets * d.BSize * d.Assoc
}

// A SyntaxError reports a descriptor without three numeric fields.
type SyntaxError struct {
	Desc string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("cache descriptor %q: %s", e.Desc, e.Msg)
}

// Parse extracts the geometry of desc from its first three fields that
// consist only of decimal digits. Non-numeric fields such as the cache
// name or replacement policy are skipped.
func Parse(desc string) (Descriptor, error) {
	var nums [3]int64
	n := 0
	for _, f := range strings.Split(desc, ":") {
		if f == "" || strings.TrimLeft(f, "0123456789") != "" {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Descriptor{}, &SyntaxError{desc, err.Error()}
		}
		nums[n] = v
		if n++; n == len(nums) {
			return Descriptor{nums[0], nums[1], nums[2]}, nil
		}
	}
	return Descriptor{}, &SyntaxError{desc, fmt.Sprintf("want 3 numeric fields, found %d", n)}
}

// Size returns the effective size of desc in bytes.
func Size(desc string) (int64, error) {
	d, err := Parse(desc)
	if err != nil {
		return 0, err
	}
	return d.Size(), nil
}

// compare orders a before b by size. Descriptors that do not parse sort
// after all others and are unordered among themselves.
func compare(a, b string) int {
	sa, erra := Size(a)
	sb, errb := Size(b)
	switch {
	case erra == nil && errb == nil:
		if sa < sb {
			return -1
		}
		if sa > sb {
			return 1
		}
		return 0
	case erra != nil && errb != nil:
		return 0
	case erra == nil:
		return -1
	}
	return 1
}

// Sort orders descs by ascending effective size, in place. The sort is
// stable: descriptors of equal size keep their relative order.
func Sort(descs []string) {
	SortBy(descs, func(s string) string { return s })
}

// SortBy stably orders xs by the effective size of the descriptor key
// returns for each element.
//
// Each element is inserted after every already-placed element that is
// not larger, which keeps equal elements in their original order.
func SortBy[T any](xs []T, key func(T) string) {
	keys := make([]string, len(xs))
	for i, x := range xs {
		keys[i] = key(x)
	}
	for i := 1; i < len(xs); i++ {
		x, k := xs[i], keys[i]
		j := i
		for j > 0 && compare(keys[j-1], k) > 0 {
			xs[j], keys[j] = xs[j-1], keys[j-1]
			j--
		}
		xs[j], keys[j] = x, k
	}
}

// IsSorted reports whether descs is in ascending size order.
func IsSorted(descs []string) bool {
	return sort.SliceIsSorted(descs, func(i, j int) bool {
		return compare(descs[i], descs[j]) < 0
	})
}

var iecPrefixes = []string{"", "Ki", "Mi", "Gi", "Ti"}

// Format renders a size in bytes with a binary prefix, using the
// largest prefix that divides it exactly ("16KiB", "1536B").
func Format(size int64) string {
	if size == 0 {
		return "0B"
	}
	exp := 0
	for exp < len(iecPrefixes)-1 && size%1024 == 0 {
		size /= 1024
		exp++
	}
	return strconv.FormatInt(size, 10) + iecPrefixes[exp] + "B"
}

// FormatApprox renders size with at most one decimal place, for labels
// where exactness does not matter ("1.5KiB").
func FormatApprox(size int64) string {
	v := float64(size)
	exp := 0
	for exp < len(iecPrefixes)-1 && math.Abs(v) >= 1024 {
		v /= 1024
		exp++
	}
	s := strconv.FormatFloat(v, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s + iecPrefixes[exp] + "B"
}
