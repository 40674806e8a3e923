// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simfmt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/simplesim/cacheplot/internal/logging"
	"github.com/sirupsen/logrus"
)

// Both patterns require the line to follow a newline. Simulator reports
// open with a banner line, so nothing of interest is ever on line one.
var (
	paramRe  = regexp.MustCompile(`\n-([\w|:]+)\s+(.+) #`)
	resultRe = regexp.MustCompile(`\n([\w|\.]+)\s+([\w|\.]+) #`)
)

// hexMarker in a result value selects integer parsing.
const hexMarker = "0x"

// Parse converts the text of one simulator report into a Record.
// fileName is used in diagnostics only.
//
// Parameters are applied before results. A result value that cannot be
// converted to a number is logged and left out of the Record; it never
// causes Parse to fail.
func Parse(text, fileName string) *Record {
	rec := new(Record)

	for _, m := range paramRe.FindAllStringSubmatch(text, -1) {
		rec.Set(strings.ReplaceAll(m[1], ":", "_"), StringValue(m[2]))
	}

	for _, m := range resultRe.FindAllStringSubmatch(text, -1) {
		name := strings.ReplaceAll(m[1], ".", "_")
		v, err := parseNumber(m[2])
		if err != nil {
			logging.GetLogger().WithFields(logrus.Fields{
				"file":  fileName,
				"field": name,
				"value": m[2],
			}).Warn("Cannot convert result value, skipping")
			continue
		}
		rec.Set(name, v)
	}

	return rec
}

// parseNumber parses a raw result value. Values containing the hex
// marker are base-16 integers, with the marker itself optional at the
// front, and may use all 64 bits; everything else is a float.
func parseNumber(raw string) (Value, error) {
	if strings.Contains(raw, hexMarker) {
		i, err := strconv.ParseUint(strings.TrimPrefix(raw, hexMarker), 16, 64)
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Value{}, err
	}
	return FloatValue(f), nil
}
