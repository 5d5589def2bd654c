// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command chrono normalizes, shifts and differences calendar values.
//
//	chrono normalize month 2015 13        # 2016-01 (corrected)
//	chrono add day 1 2016 2 28            # 2016-02-29
//	chrono diff month 2015 3 2014 12      # 3
//	chrono now instant
//
// Values are specified as their numeric components, coarsest first.
// Omitted leading components, or those given as _, default to the
// current time. Use -- before negative components, eg.
// chrono normalize -- day 2015 1 -1.
package main

import (
	"fmt"
	"os"

	"cloudeng.io/chrono"
	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	config    string
	now       string
	strict    bool
	format    string
	logLevel  int
	logFile   string
	logFormat string
}

type app struct {
	flags  globalFlags
	cfg    Config
	cal    *chrono.Calendar
	logger *cmdutil.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "chrono",
		Short: "Normalize, shift and difference calendar values",
		Long: `chrono creates Year, Month, Day and Instant values from possibly out of
range components and prints the equivalent valid calendar value,
eg. month 13 of 2015 is 2016-01 and February 30th 2015 is 2015-03-02.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.configure,
		PersistentPostRunE: a.cleanup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.config, "config", "", "YAML configuration file")
	pf.StringVar(&a.flags.now, "now", "", "RFC3339 time to use in place of the system clock")
	pf.BoolVar(&a.flags.strict, "strict", false, "fail if a value had to be corrected")
	pf.StringVar(&a.flags.format, "format", "text", "output format: text, json or yaml")
	pf.IntVar(&a.flags.logLevel, "log-level", 0, "logging level: 0=error, 1=warn, 2=info, 3=debug")
	pf.StringVar(&a.flags.logFile, "log-file", "", "log file path, logs are written to stderr if not specified")
	pf.StringVar(&a.flags.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(a.normalizeCmd(), a.addCmd(), a.diffCmd(), a.nowCmd())
	return root
}

// configure merges the configuration file and flags, flags taking
// precedence, and stores a logger in the command's context.
func (a *app) configure(cmd *cobra.Command, _ []string) error {
	cfg := defaultConfig()
	if len(a.flags.config) > 0 {
		var err error
		if cfg, err = ReadConfig(a.flags.config); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("now") {
		cfg.Now = a.flags.now
	}
	if flags.Changed("strict") {
		cfg.Strict = a.flags.strict
	}
	if flags.Changed("format") {
		cfg.Format = a.flags.format
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.flags.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = a.flags.logFile
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.flags.logFormat
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	clock, err := cfg.Clock()
	if err != nil {
		return err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.cal = chrono.New(chrono.WithClock(clock))
	a.logger = logger
	cmd.SetContext(ctxlog.Context(cmd.Context(), logger.Logger))
	logger.Debug("configuration", "config", a.flags.config, "now", cfg.Now, "strict", cfg.Strict, "format", cfg.Format)
	return nil
}

func (a *app) cleanup(_ *cobra.Command, _ []string) error {
	if a.logger == nil {
		return nil
	}
	return a.logger.Close()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "chrono: %v\n", err)
		os.Exit(1)
	}
}
