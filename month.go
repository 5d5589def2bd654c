// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"cmp"
	"fmt"
	"time"

	"cloudeng.io/chrono/gregorian"
)

// Month represents a month in a specific year.
type Month struct {
	monthFields
	corrected bool
}

func finalizeMonth(f monthFields, corrected bool) Month {
	corrected = f.correct() || corrected
	return Month{monthFields: f, corrected: corrected}
}

// NewMonth returns the Month for year and month. A month outside of
// the range 1-12 is treated as an offset from January of year, so that
// month 13 of 2015 is January 2016 and month 0 is December 2014. Such
// Months are flagged as Corrected.
func NewMonth(year, month int) Month {
	return finalizeMonth(composeMonth(year, month), false)
}

// MonthFromTime returns the Month containing t, interpreted in UTC.
func MonthFromTime(t time.Time) Month {
	y, m, _, _ := gregorian.FromTime(t)
	return NewMonth(y, m)
}

// Year returns the Year that m is in.
func (m Month) Year() Year {
	return NewYear(m.year)
}

// RebaseYear changes the year of m, re-runs correction and returns m.
func (m *Month) RebaseYear(year int) *Month {
	*m = finalizeMonth(composeMonth(year, m.month), false)
	return m
}

// Int returns the month number, 1-12.
func (m Month) Int() int {
	return m.month
}

// String returns m in the form YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.year, m.month)
}

// Name returns the English name of the month, eg. January.
func (m Month) Name() string {
	return time.Month(m.month).String()
}

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Corrected returns true if the values m was created from did not
// denote a valid month.
func (m Month) Corrected() bool {
	return m.corrected
}

// Strict returns m, or an error wrapping ErrInvalidTemporalValue
// if m was corrected.
func (m Month) Strict() (Month, error) {
	return m, strictErr("Month", m.corrected, m)
}

// Add returns the month n months after m.
func (m Month) Add(n int) Month {
	y, mn := gregorian.AddMonths(m.year, m.month, n)
	return finalizeMonth(composeMonth(y, mn), m.corrected)
}

// Sub returns the month n months before m.
func (m Month) Sub(n int) Month {
	return m.Add(-n)
}

// Diff returns the number of months between m and o, ie. m - o.
func (m Month) Diff(o Month) int {
	return (m.year-o.year)*12 + m.month - o.month
}

// Days returns the number of days in m.
func (m Month) Days() int {
	return gregorian.DaysInMonth(m.year, m.month)
}

// Day returns the given day of m, correcting it if necessary.
func (m Month) Day(day int) Day {
	return NewDay(m.year, m.month, day)
}

// First returns the first day of m.
func (m Month) First() Day {
	return m.Day(1)
}

// Last returns the last day of m.
func (m Month) Last() Day {
	return m.Day(m.Days())
}

// Time returns the start of m in UTC.
func (m Month) Time() time.Time {
	return gregorian.Time(m.year, m.month, 1, 0)
}

// Compare returns -1, 0 or +1 depending on whether m is before,
// the same as or after o.
func (m Month) Compare(o Month) int {
	if c := cmp.Compare(m.year, o.year); c != 0 {
		return c
	}
	return cmp.Compare(m.month, o.month)
}

// Before returns true if m is before o.
func (m Month) Before(o Month) bool {
	return m.Compare(o) < 0
}

// After returns true if m is after o.
func (m Month) After(o Month) bool {
	return m.Compare(o) > 0
}

// Equal returns true if m and o denote the same month, regardless
// of whether either was corrected.
func (m Month) Equal(o Month) bool {
	return m.Compare(o) == 0
}
