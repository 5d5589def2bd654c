// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"math"
	"reflect"

	"cloudeng.io/chrono/gregorian"
	"cloudeng.io/errors"
)

// current is the clock's time used for defaults.
type current struct {
	year, month, day int
	secondsOfDay     float64
}

func (n current) hms() (int, int, float64) {
	return gregorian.SplitSeconds(n.secondsOfDay)
}

// param describes a single constructor parameter. Exactly one of
// defInt or defSeconds is set, the latter for parameters that accept
// fractional seconds.
type param struct {
	name       string
	defInt     func(n current) int
	defSeconds func(n current) float64
}

var (
	pYear   = param{name: "year", defInt: func(n current) int { return n.year }}
	pMonth  = param{name: "month", defInt: func(n current) int { return n.month }}
	pDay    = param{name: "day", defInt: func(n current) int { return n.day }}
	pHour   = param{name: "hour", defInt: func(n current) int {
		h, _, _ := n.hms()
		return h
	}}
	pMinute = param{name: "minute", defInt: func(n current) int {
		_, m, _ := n.hms()
		return m
	}}

	pSecondsOfDay = param{name: "seconds", defSeconds: func(n current) float64 { return n.secondsOfDay }}
	pSecond       = param{name: "second", defSeconds: func(n current) float64 {
		_, _, s := n.hms()
		return s
	}}

	yearParams    = []param{pYear}
	monthParams   = []param{pYear, pMonth}
	dayParams     = []param{pYear, pMonth, pDay}
	instantParams = []param{pYear, pMonth, pDay, pSecondsOfDay}
	hmsParams     = []param{pYear, pMonth, pDay, pHour, pMinute, pSecond}
)

// bound holds the integer arguments in order and the seconds argument,
// if any, which is always the last parameter.
type bound struct {
	ints    []int
	seconds float64
}

// bind fills omitted leading arguments with nil, coerces each supplied
// argument and obtains defaults for nil ones from the clock. The clock
// is read at most once. All argument errors are returned together.
func (c *Calendar) bind(level string, params []param, args []any) (bound, error) {
	if len(args) > len(params) {
		return bound{}, &ArgumentError{
			Level:  level,
			Reason: fmt.Sprintf("too many arguments: got %v, want at most %v", len(args), len(params)),
		}
	}
	padded := make([]any, len(params))
	copy(padded[len(params)-len(args):], args)

	var now *current
	clock := func() current {
		if now == nil {
			y, m, d, s := gregorian.Now(c.opts.clock)
			now = &current{year: y, month: m, day: d, secondsOfDay: s}
		}
		return *now
	}

	b := bound{ints: make([]int, 0, len(params))}
	errs := &errors.M{}
	for i, p := range params {
		v := padded[i]
		if p.defSeconds != nil {
			if v == nil {
				b.seconds = p.defSeconds(clock())
				continue
			}
			s, err := toSeconds(v)
			if err != nil {
				errs.Append(&ArgumentError{Level: level, Name: p.name, Value: v, Reason: err.Error()})
			}
			b.seconds = s
			continue
		}
		if v == nil {
			b.ints = append(b.ints, p.defInt(clock()))
			continue
		}
		n, err := toInt(v)
		if err != nil {
			errs.Append(&ArgumentError{Level: level, Name: p.name, Value: v, Reason: err.Error()})
		}
		b.ints = append(b.ints, n)
	}
	return b, errs.Err()
}

// toInt accepts any value whose underlying type is an integer, or a
// float with an integral value, that can be represented as an int.
func toInt(v any) (int, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, fmt.Errorf("%v overflows int", n)
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, fmt.Errorf("%v overflows int", n)
		}
		return int(n), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, fmt.Errorf("%v is not an integer", f)
		}
		if f < math.MinInt || f >= math.MaxInt {
			return 0, fmt.Errorf("%v overflows int", f)
		}
		return int(f), nil
	}
	return 0, fmt.Errorf("%T is not an integer", v)
}

// toSeconds accepts any integer or finite float value.
func toSeconds(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%v is not a finite number", f)
		}
		return f, nil
	}
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("%T is not a number", v)
	}
	return float64(n), nil
}
