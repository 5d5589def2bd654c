// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package chrono provides calendar values at four levels of granularity:
// Year, Month, Day and Instant (a Day and a time of day). Each level
// accepts out of range components, eg. month 13, day 0 or negative seconds,
// and normalizes them to the equivalent valid point in the proleptic
// Gregorian calendar, recording whether a correction was required.
//
//	m := chrono.NewMonth(2015, 13) // 2016-01, m.Corrected() == true
//	d := chrono.NewDay(2015, 2, 30) // 2015-03-02
//	_, err := d.Strict()            // errors.Is(err, chrono.ErrInvalidTemporalValue)
//
// Values are plain, comparable, data records that are safe to copy;
// all arithmetic returns new values. Time zones are not supported, all
// values are interpreted in UTC.
//
// A Calendar supports constructing values from loosely typed arguments
// with omitted arguments defaulting to the current time as reported by
// its Clock. Defaults are filled right-to-left so that a single argument
// to Calendar.Month is a month in the current year:
//
//	cal := chrono.New(chrono.WithClock(gregorian.FixedClock(when)))
//	m, err := cal.Month(3) // March of the year of when
package chrono

import (
	"cloudeng.io/chrono/gregorian"
)

// Option represents an option to New.
type Option func(o *options)

type options struct {
	clock gregorian.Clock
}

// WithClock specifies the clock used to obtain default values for
// omitted arguments. The default is gregorian.SystemClock.
func WithClock(clock gregorian.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// Calendar constructs values from loosely typed arguments, using its
// clock for any that are omitted or nil.
type Calendar struct {
	opts options
}

// New returns a new Calendar.
func New(opts ...Option) *Calendar {
	c := &Calendar{}
	c.opts.clock = gregorian.SystemClock
	for _, fn := range opts {
		fn(&c.opts)
	}
	if c.opts.clock == nil {
		c.opts.clock = gregorian.SystemClock
	}
	return c
}

// Year returns the Year for the arguments (year).
func (c *Calendar) Year(args ...any) (Year, error) {
	b, err := c.bind("Year", yearParams, args)
	if err != nil {
		return Year{}, err
	}
	return NewYear(b.ints[0]), nil
}

// Month returns the Month for the arguments (year, month).
func (c *Calendar) Month(args ...any) (Month, error) {
	b, err := c.bind("Month", monthParams, args)
	if err != nil {
		return Month{}, err
	}
	return NewMonth(b.ints[0], b.ints[1]), nil
}

// Day returns the Day for the arguments (year, month, day).
func (c *Calendar) Day(args ...any) (Day, error) {
	b, err := c.bind("Day", dayParams, args)
	if err != nil {
		return Day{}, err
	}
	return NewDay(b.ints[0], b.ints[1], b.ints[2]), nil
}

// Instant returns the Instant for the arguments (year, month, day, seconds)
// where seconds is the number of seconds since midnight.
func (c *Calendar) Instant(args ...any) (Instant, error) {
	b, err := c.bind("Instant", instantParams, args)
	if err != nil {
		return Instant{}, err
	}
	return NewInstant(b.ints[0], b.ints[1], b.ints[2], b.seconds), nil
}

// InstantHMS returns the Instant for the arguments
// (year, month, day, hour, minute, second). Unlike the other constructors
// the time of day is filled left-to-right once the date is exhausted, so
// that InstantHMS(9) is 09:MM:SS today and InstantHMS(9, 30) is 09:30:SS
// today where the omitted values are taken from the clock. With more than
// three arguments the last three are always hour, minute and second.
func (c *Calendar) InstantHMS(args ...any) (Instant, error) {
	if len(args) <= 3 {
		tod := make([]any, 3)
		copy(tod, args)
		args = append([]any{nil, nil, nil}, tod...)
	}
	b, err := c.bind("Instant", hmsParams, args)
	if err != nil {
		return Instant{}, err
	}
	return NewInstantHMS(b.ints[0], b.ints[1], b.ints[2], b.ints[3], b.ints[4], b.seconds), nil
}

// Now returns the current Instant.
func (c *Calendar) Now() Instant {
	return InstantFromTime(c.opts.clock.Now())
}

// Today returns the current Day.
func (c *Calendar) Today() Day {
	return DayFromTime(c.opts.clock.Now())
}
