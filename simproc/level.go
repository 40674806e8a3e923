// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simproc

import (
	"fmt"
	"strings"
)

// A Level is one level of the simulated cache hierarchy.
type Level int

const (
	IL1 Level = iota
	DL1
	UL2
)

// Levels lists every Level in display order.
var Levels = []Level{IL1, DL1, UL2}

var levelNames = [...]string{IL1: "il1", DL1: "dl1", UL2: "ul2"}

// ParseLevel parses a level name such as "il1" or "UL2".
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("unknown cache level %q", s)
}

// Name returns the lower-case name of l, as used in metric field names.
func (l Level) Name() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("level%d", int(l))
	}
	return levelNames[l]
}

func (l Level) String() string {
	return strings.ToUpper(l.Name())
}

// ParamKey returns the record field holding the cache descriptor for l.
// The unified L2 cache is configured through the simulator's dl2 option,
// so UL2 maps to cache_dl2.
func (l Level) ParamKey() string {
	switch l {
	case IL1:
		return "cache_il1"
	case DL1:
		return "cache_dl1"
	case UL2:
		return "cache_dl2"
	}
	return "cache_" + l.Name()
}
