// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"cloudeng.io/chrono/gregorian"
	"cloudeng.io/cmdutil"
)

// Config represents the contents of the optional configuration file.
type Config struct {
	// Now, if set, is an RFC3339 time used in place of the system clock
	// for omitted arguments.
	Now     string                `yaml:"now"`
	Strict  bool                  `yaml:"strict"`
	Format  string                `yaml:"format"`
	Logging cmdutil.LoggingConfig `yaml:"logging"`
}

func defaultConfig() Config {
	return Config{
		Format:  "text",
		Logging: cmdutil.LoggingConfig{Format: "text"},
	}
}

// ParseConfig parses a YAML configuration, unspecified fields retain
// their default values.
func ParseConfig(spec []byte) (Config, error) {
	cfg := defaultConfig()
	if err := cmdutil.ParseYAMLConfig(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

// ReadConfig reads and parses the configuration file at path.
func ReadConfig(path string) (Config, error) {
	spec, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(spec)
	if err != nil {
		return Config{}, fmt.Errorf("%v: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := c.Clock(); err != nil {
		return err
	}
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	switch c.Logging.Format {
	case "text", "json", "":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

// Clock returns the clock to use for omitted arguments.
func (c Config) Clock() (gregorian.Clock, error) {
	if len(c.Now) == 0 {
		return gregorian.SystemClock, nil
	}
	t, err := time.Parse(time.RFC3339Nano, c.Now)
	if err != nil {
		return nil, fmt.Errorf("invalid value for now: %w", err)
	}
	return gregorian.FixedClock(t), nil
}
