// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging holds the process-wide logrus logger shared by the
// cacheplot packages.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

func init() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)
}

// GetLogger returns the shared logger.
func GetLogger() *logrus.Logger {
	return logger
}

// SetLogLevel parses level ("debug", "info", "warn", ...) and applies it.
func SetLogLevel(level string) error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(logLevel)
	return nil
}

// SetOutput redirects log output, typically to capture it in tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}
