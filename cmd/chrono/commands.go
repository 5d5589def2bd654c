// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/chrono"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"
)

// value is implemented by all of the chrono value types.
type value interface {
	fmt.Stringer
	Corrected() bool
}

var levels = map[string]int{
	"year":    1,
	"month":   2,
	"day":     3,
	"instant": 4,
	"hms":     6,
}

const levelNames = "year, month, day, instant or hms"

func checkLevel(level string) (int, error) {
	n, ok := levels[level]
	if !ok {
		return 0, fmt.Errorf("unknown level %q, must be one of %v", level, levelNames)
	}
	return n, nil
}

// parseArgs converts command line arguments to values suitable for the
// chrono.Calendar constructors: _ is an omitted value, integers and floats
// are converted and anything else is passed through as a string which
// the Calendar will reject.
func parseArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if a == "_" {
			continue
		}
		if n, err := strconv.Atoi(a); err == nil {
			out[i] = n
			continue
		}
		if f, err := strconv.ParseFloat(a, 64); err == nil {
			out[i] = f
			continue
		}
		out[i] = a
	}
	return out
}

func (a *app) build(level string, args []string) (value, error) {
	vals := parseArgs(args)
	switch level {
	case "year":
		return a.cal.Year(vals...)
	case "month":
		return a.cal.Month(vals...)
	case "day":
		return a.cal.Day(vals...)
	case "instant":
		return a.cal.Instant(vals...)
	case "hms":
		return a.cal.InstantHMS(vals...)
	}
	_, err := checkLevel(level)
	return nil, err
}

func strict(v value) error {
	var err error
	switch tv := v.(type) {
	case chrono.Year:
		_, err = tv.Strict()
	case chrono.Month:
		_, err = tv.Strict()
	case chrono.Day:
		_, err = tv.Strict()
	case chrono.Instant:
		_, err = tv.Strict()
	}
	return err
}

// finish logs corrections and applies strict mode.
func (a *app) finish(ctx context.Context, level string, args []string, v value) error {
	if !v.Corrected() {
		return nil
	}
	ctxlog.Logger(ctx).Info("value corrected", "granularity", level, "args", strings.Join(args, " "), "value", v.String())
	if a.cfg.Strict {
		return strict(v)
	}
	return nil
}

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <level> [components...]",
		Short: "Print the normalized value for the given components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			v, err := a.build(args[0], args[1:])
			if err != nil {
				return errors.Annotate("normalize", err)
			}
			if err := a.finish(ctx, args[0], args[1:], v); err != nil {
				return errors.Annotate("normalize", err)
			}
			return a.write(cmd.OutOrStdout(), newResult(args[0], v))
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <level> <n> [components...]",
		Short: "Add n years, months, days or seconds to the given value",
		Long: `Add n units of the given level to the value specified by components.
The unit is years, months or days for the year, month and day levels and
seconds for the instant and hms levels. Use a negative n to subtract.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			level, components := args[0], args[2:]
			v, err := a.build(level, components)
			if err != nil {
				return errors.Annotate("add", err)
			}
			if err := a.finish(ctx, level, components, v); err != nil {
				return errors.Annotate("add", err)
			}
			r, err := add(v, args[1])
			if err != nil {
				return errors.Annotate("add", err)
			}
			return a.write(cmd.OutOrStdout(), newResult(level, r))
		},
	}
}

func add(v value, amount string) (value, error) {
	if i, ok := v.(chrono.Instant); ok {
		s, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number of seconds %q: %w", amount, chrono.ErrInvalidArgument)
		}
		return i.Add(s), nil
	}
	n, err := strconv.Atoi(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid count %q: %w", amount, chrono.ErrInvalidArgument)
	}
	switch tv := v.(type) {
	case chrono.Year:
		return tv.Add(n), nil
	case chrono.Month:
		return tv.Add(n), nil
	case chrono.Day:
		return tv.Add(n), nil
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}

func (a *app) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <level> <components of a...> <components of b...>",
		Short: "Print a - b in years, months, days or seconds",
		Long: `Print the difference a - b between two values of the same level. All
components of both values must be specified, eg. diff month 2015 3 2014 12.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			level := args[0]
			n, err := checkLevel(level)
			if err != nil {
				return errors.Annotate("diff", err)
			}
			components := args[1:]
			if len(components) != 2*n {
				return errors.Annotate("diff", fmt.Errorf("%v: expected %v components, got %v", level, 2*n, len(components)))
			}
			errs := &errors.M{}
			va, err := a.build(level, components[:n])
			errs.Append(err)
			vb, err := a.build(level, components[n:])
			errs.Append(err)
			if err := errs.Err(); err != nil {
				return errors.Annotate("diff", err)
			}
			errs.Append(a.finish(ctx, level, components[:n], va), a.finish(ctx, level, components[n:], vb))
			if err := errs.Err(); err != nil {
				return errors.Annotate("diff", err)
			}
			d := diff(va, vb)
			return a.write(cmd.OutOrStdout(), result{
				Level:     level,
				Value:     d,
				From:      vb.String(),
				To:        va.String(),
				Corrected: va.Corrected() || vb.Corrected(),
			})
		},
	}
}

func diff(a, b value) string {
	switch ta := a.(type) {
	case chrono.Year:
		return strconv.Itoa(ta.Diff(b.(chrono.Year)))
	case chrono.Month:
		return strconv.Itoa(ta.Diff(b.(chrono.Month)))
	case chrono.Day:
		return strconv.Itoa(ta.Diff(b.(chrono.Day)))
	case chrono.Instant:
		return strconv.FormatFloat(ta.Diff(b.(chrono.Instant)), 'f', -1, 64)
	}
	return ""
}

func (a *app) nowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now [level]",
		Short: "Print the current value at the given level, instant by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := "instant"
			if len(args) == 1 {
				level = args[0]
			}
			v, err := a.build(level, nil)
			if err != nil {
				return errors.Annotate("now", err)
			}
			return a.write(cmd.OutOrStdout(), newResult(level, v))
		},
	}
}
