// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simfmt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/simplesim/cacheplot/internal/logging"
)

// A Result is one parsed report and the name it was loaded under.
type Result struct {
	Name   string
	Record *Record
}

// A ResultSet is the collection of parsed reports for one run of the
// tool, in load order.
type ResultSet struct {
	Results []Result

	byName map[string]int
}

// Add appends rec under name. Adding a name twice replaces the earlier
// record but keeps its position.
func (rs *ResultSet) Add(name string, rec *Record) {
	if rs.byName == nil {
		rs.byName = make(map[string]int)
	}
	if i, ok := rs.byName[name]; ok {
		rs.Results[i].Record = rec
		return
	}
	rs.byName[name] = len(rs.Results)
	rs.Results = append(rs.Results, Result{name, rec})
}

// Lookup returns the record loaded under name.
func (rs *ResultSet) Lookup(name string) (*Record, bool) {
	i, ok := rs.byName[name]
	if !ok {
		return nil, false
	}
	return rs.Results[i].Record, true
}

// Len returns the number of records in rs.
func (rs *ResultSet) Len() int {
	return len(rs.Results)
}

// A DecodeError reports a report file that is not valid UTF-8 text.
type DecodeError struct {
	Path string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: file is not valid UTF-8 text", e.Path)
}

// LoadDir parses every regular file in dir whose name contains pattern.
// An empty pattern matches every file. Subdirectories are ignored.
// Results are keyed by file name and ordered as the directory listing.
//
// Any error reading the directory or a file is returned; LoadDir does
// not return partial results.
func LoadDir(dir, pattern string) (*ResultSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading results directory: %w", err)
	}

	log := logging.GetLogger().WithField("dir", dir)
	rs := new(ResultSet)
	for _, ent := range entries {
		name := ent.Name()
		if !strings.Contains(name, pattern) {
			continue
		}
		if !ent.Type().IsRegular() {
			// ReadDir does not follow symlinks, so check the
			// target before deciding to skip.
			info, err := os.Stat(filepath.Join(dir, name))
			if errors.Is(err, fs.ErrNotExist) {
				log.WithField("file", name).Debug("Skipping dangling symlink")
				continue
			}
			if err != nil {
				return nil, err
			}
			if !info.Mode().IsRegular() {
				continue
			}
		}
		rec, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		rs.Add(name, rec)
	}
	log.WithField("files", rs.Len()).Debug("Loaded simulator reports")
	return rs, nil
}

// A Files loads an explicit list of report files.
//
// Each Result is named by its path. As with benchmark labels, an entry
// of the form label=path is loaded from path but named label when
// AllowLabels is set.
type Files struct {
	Paths       []string
	AllowLabels bool
}

// Load parses each file in f.Paths in order.
func (f *Files) Load() (*ResultSet, error) {
	rs := new(ResultSet)
	for _, path := range f.Paths {
		label := path
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			label, path = path[:i], path[i+1:]
		}
		rec, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		rs.Add(label, rec)
	}
	return rs, nil
}

func loadFile(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, &DecodeError{path}
	}
	return Parse(string(data), path), nil
}
