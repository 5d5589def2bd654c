// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type result struct {
	Level     string `json:"level" yaml:"level"`
	Value     string `json:"value" yaml:"value"`
	From      string `json:"from,omitempty" yaml:"from,omitempty"`
	To        string `json:"to,omitempty" yaml:"to,omitempty"`
	Corrected bool   `json:"corrected" yaml:"corrected"`
}

func newResult(level string, v value) result {
	return result{Level: level, Value: v.String(), Corrected: v.Corrected()}
}

func (r result) text() string {
	if r.Corrected {
		return r.Value + " (corrected)"
	}
	return r.Value
}

func (a *app) write(out io.Writer, r result) error {
	switch a.cfg.Format {
	case "json":
		enc := json.NewEncoder(out)
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(out, r.text())
	return err
}
