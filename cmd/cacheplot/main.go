// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cacheplot charts the results of a cache-size sweep of a processor
// simulator.
//
// Usage:
//
//	cacheplot [flags] [files...]
//
// Cacheplot reads every regular file in the results directory whose name
// contains the file pattern, or the files named on the command line,
// and parses each as the statistics dump of one simulator run. It then
// groups the runs by program and by the configured size of each cache
// level and draws three PNG bar charts into the output directory:
//
//	sim_ipc_<pattern>.png           instructions per cycle
//	sim_miss_rate_<pattern>.png     miss rate of the charted level
//	sim_mem_accesses_<pattern>.png  access count of the charted level
//
// Each chart has one panel per cache level (IL1, DL1, UL2) with a bar
// for every (program, cache size) pair. A level is left out of a chart
// if some program lacks a run for one of its cache sizes.
//
// A summary of the charted values is written to standard output. The
// --report flag selects its form: text (the default), csv, html, echarts
// for an interactive chart page, or none.
//
// Settings may also come from a YAML file given with --config and from
// CACHEPLOT_RESULTS_DIR, CACHEPLOT_FILE_PATTERN, CACHEPLOT_OUTPUT_DIR
// and related environment variables, which are read from a .env file
// in the current directory if one exists. Flags take precedence over
// the config file, which takes precedence over the environment.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/simplesim/cacheplot/internal/config"
	"github.com/simplesim/cacheplot/internal/logging"
	"github.com/simplesim/cacheplot/simchart"
	"github.com/simplesim/cacheplot/simfmt"
	"github.com/simplesim/cacheplot/simproc"
	"github.com/simplesim/cacheplot/simreport"
)

func main() {
	logger := logging.GetLogger()
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logger.WithError(err).Fatal("cacheplot failed")
	}
}

// flagValues are the raw command-line settings. Only flags the user
// actually set override the loaded configuration.
type flagValues struct {
	configFile    string
	resultsDir    string
	filePattern   string
	outputDir     string
	logLevel      string
	report        string
	sizeDiscovery string
	categories    []string
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var fv flagValues
	cmd := &cobra.Command{
		Use:   "cacheplot [flags] [files...]",
		Short: "Chart simulator results across a cache-size sweep",
		Long: "Cacheplot parses simulator statistics dumps and draws IPC, miss rate and\n" +
			"memory access bar charts for each cache level, grouped by program and\n" +
			"cache size.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(fv.configFile)
			if err != nil {
				return err
			}
			if err := fv.apply(cmd, cfg); err != nil {
				return err
			}
			if err := logging.SetLogLevel(cfg.LogLevel); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			cats, err := categories(fv.categories)
			if err != nil {
				return err
			}
			return run(cfg, cats, args, stdout)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&fv.configFile, "config", "c", "", "read settings from YAML `file`")
	f.StringVar(&fv.resultsDir, "results-dir", "", "read simulator results from `dir`")
	f.StringVar(&fv.filePattern, "file-pattern", "", "only read result files whose names contain `substr`")
	f.StringVar(&fv.outputDir, "output-dir", ".", "write charts to `dir`")
	f.StringVar(&fv.logLevel, "log-level", "info", "log `level` (trace, debug, info, warn, error)")
	f.StringVar(&fv.report, "report", "text", "summary `format` (text, csv, html, echarts, none)")
	f.StringVar(&fv.sizeDiscovery, "size-discovery", "union", "cache size discovery `mode` (union, representative)")
	f.StringSliceVar(&fv.categories, "category", nil, "only draw chart `name`s (ipc, miss_rate, mem_accesses); default all")
	return cmd
}

// apply copies the flags set on cmd into cfg and revalidates it.
func (fv *flagValues) apply(cmd *cobra.Command, cfg *config.Config) error {
	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("results-dir", &cfg.ResultsDir, fv.resultsDir)
	set("file-pattern", &cfg.FilePattern, fv.filePattern)
	set("output-dir", &cfg.OutputDir, fv.outputDir)
	set("log-level", &cfg.LogLevel, fv.logLevel)
	set("report", &cfg.Report, fv.report)
	set("size-discovery", &cfg.SizeDiscovery, fv.sizeDiscovery)
	return cfg.Validate()
}

// categories resolves chart category names, in the order given. No
// names selects every category.
func categories(names []string) ([]simproc.Category, error) {
	if len(names) == 0 {
		return simproc.Categories, nil
	}
	var cats []simproc.Category
	for _, name := range names {
		c, err := simproc.LookupCategory(name)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, nil
}

func run(cfg *config.Config, cats []simproc.Category, files []string, stdout io.Writer) error {
	logger := logging.GetLogger()

	// Both have been validated by the config.
	format, _ := simreport.ParseFormat(cfg.Report)
	mode, _ := simproc.ParseDiscovery(cfg.SizeDiscovery)

	rs, err := load(cfg, files)
	if err != nil {
		return err
	}
	programs := simproc.DistinctPrograms(rs)
	logger.WithFields(logrus.Fields{
		"results":  rs.Len(),
		"programs": len(programs),
	}).Info("Loaded simulator results")

	opts := simchart.Options{
		Width:       vg.Length(cfg.Chart.Width) * vg.Inch,
		PanelHeight: vg.Length(cfg.Chart.PanelHeight) * vg.Inch,
		DPI:         cfg.Chart.DPI,
	}
	report := &simreport.Report{Pattern: cfg.FilePattern, Programs: programs}
	for _, cat := range cats {
		tables := cat.Build(rs, programs, mode)
		c := &simchart.Chart{
			Category: cat.Name,
			Pattern:  cfg.FilePattern,
			Programs: programs,
			Tables:   tables,
		}
		if _, err := simchart.WriteFile(cfg.OutputDir, c, opts); err != nil {
			return err
		}
		report.Sections = append(report.Sections, simreport.Section{Category: cat.Name, Tables: tables})
	}

	return simreport.Write(stdout, format, report)
}

// load reads the named files if there are any, and otherwise the
// matching files of the results directory. Either way the result is
// not empty.
func load(cfg *config.Config, files []string) (*simfmt.ResultSet, error) {
	if len(files) > 0 {
		rs, err := (&simfmt.Files{Paths: files, AllowLabels: true}).Load()
		if err != nil {
			return nil, fmt.Errorf("loading named result files: %w", err)
		}
		return rs, nil
	}
	if cfg.ResultsDir == "" {
		return nil, fmt.Errorf("no results directory or result files given")
	}
	rs, err := simfmt.LoadDir(cfg.ResultsDir, cfg.FilePattern)
	if err != nil {
		return nil, err
	}
	if rs.Len() == 0 {
		return nil, fmt.Errorf("no result files in %q match pattern %q", cfg.ResultsDir, cfg.FilePattern)
	}
	return rs, nil
}
