// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads cacheplot settings from a YAML file and the
// environment.
//
// Settings are resolved in increasing order of precedence: built-in
// defaults, CACHEPLOT_* environment variables (which may come from a
// .env file), the YAML config file, and finally command-line flags,
// which the caller applies on top of the returned Config.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/simplesim/cacheplot/internal/logging"
	"github.com/simplesim/cacheplot/simproc"
	"github.com/simplesim/cacheplot/simreport"
)

// Config is the complete set of settings for one run.
type Config struct {
	ResultsDir    string      `yaml:"results_dir"`
	FilePattern   string      `yaml:"file_pattern"`
	OutputDir     string      `yaml:"output_dir"`
	LogLevel      string      `yaml:"log_level"`
	Report        string      `yaml:"report"`
	SizeDiscovery string      `yaml:"size_discovery"`
	Chart         ChartConfig `yaml:"chart"`
}

// ChartConfig sets the image geometry. Lengths are in inches; zero
// means the renderer's default.
type ChartConfig struct {
	Width       float64 `yaml:"width"`
	PanelHeight float64 `yaml:"panel_height"`
	DPI         int     `yaml:"dpi"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		OutputDir:     ".",
		LogLevel:      "info",
		Report:        "text",
		SizeDiscovery: "union",
	}
}

// envPrefix is prepended to the upper-cased YAML key to form the
// environment variable name, e.g. CACHEPLOT_RESULTS_DIR.
const envPrefix = "CACHEPLOT_"

// Load returns the configuration from defaults, the environment and,
// if path is not empty, the YAML file at path. A .env file in the
// working directory is loaded into the environment first, if present.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger()

	// A missing .env file is the normal case.
	_ = godotenv.Load(".env")

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.WithField("filepath", path).WithError(err).Error("Failed to read config file")
			return nil, err
		}
		if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
			logger.WithField("filepath", path).WithError(err).Error("Failed to parse config file")
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"RESULTS_DIR":    &c.ResultsDir,
		"FILE_PATTERN":   &c.FilePattern,
		"OUTPUT_DIR":     &c.OutputDir,
		"LOG_LEVEL":      &c.LogLevel,
		"REPORT":         &c.Report,
		"SIZE_DISCOVERY": &c.SizeDiscovery,
	}
	for key, p := range str {
		if v, ok := lookup(envPrefix + key); ok {
			*p = v
		}
	}
	if v, ok := lookup(envPrefix + "CHART_DPI"); ok {
		dpi, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sCHART_DPI: %w", envPrefix, err)
		}
		c.Chart.DPI = dpi
	}
	return nil
}

var envVarRe = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} with the value of VAR. References to
// unset variables are left as they are.
func expandEnvVars(content string) string {
	return envVarRe.ReplaceAllStringFunc(content, func(match string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})
}

// Validate checks that the enumerated settings are known.
func (c *Config) Validate() error {
	if _, err := simreport.ParseFormat(c.Report); err != nil {
		return err
	}
	if _, err := simproc.ParseDiscovery(c.SizeDiscovery); err != nil {
		return err
	}
	if c.Chart.Width < 0 || c.Chart.PanelHeight < 0 || c.Chart.DPI < 0 {
		return fmt.Errorf("chart dimensions must not be negative")
	}
	return nil
}
