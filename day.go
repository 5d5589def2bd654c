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

// Day represents a calendar date.
type Day struct {
	dayFields
	corrected bool
}

func finalizeDay(f dayFields, corrected bool) Day {
	corrected = f.correct() || corrected
	return Day{dayFields: f, corrected: corrected}
}

// NewDay returns the Day for year, month and day. The month is corrected
// as per NewMonth and a day outside of that month is then treated as an
// offset from its first day: day 0 is the last day of the previous month
// and February 30th 2015 is March 2nd 2015. Such Days are flagged as
// Corrected.
func NewDay(year, month, day int) Day {
	return finalizeDay(composeDay(year, month, day), false)
}

// DayFromTime returns the Day containing t, interpreted in UTC.
func DayFromTime(t time.Time) Day {
	y, m, d, _ := gregorian.FromTime(t)
	return NewDay(y, m, d)
}

// Month returns the Month that d is in.
func (d Day) Month() Month {
	return NewMonth(d.year, d.month)
}

// Year returns the Year that d is in.
func (d Day) Year() Year {
	return NewYear(d.year)
}

// RebaseMonth changes the month of d, re-runs correction for the
// entire date and returns d.
func (d *Day) RebaseMonth(month int) *Day {
	*d = finalizeDay(composeDay(d.year, month, d.day), false)
	return d
}

// Int returns the day of the month.
func (d Day) Int() int {
	return d.day
}

// String returns d in the form YYYY-MM-DD.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Corrected returns true if the values d was created from did not
// denote a valid date.
func (d Day) Corrected() bool {
	return d.corrected
}

// Strict returns d, or an error wrapping ErrInvalidTemporalValue
// if d was corrected.
func (d Day) Strict() (Day, error) {
	return d, strictErr("Day", d.corrected, d)
}

// Add returns the day n days after d.
func (d Day) Add(n int) Day {
	y, m, dd := gregorian.AddDays(d.year, d.month, d.day, n)
	return finalizeDay(composeDay(y, m, dd), d.corrected)
}

// Sub returns the day n days before d.
func (d Day) Sub(n int) Day {
	return d.Add(-n)
}

// Diff returns the number of days between d and o, ie. d - o.
func (d Day) Diff(o Day) int {
	return int(d.dayNumber() - o.dayNumber())
}

// Weekday returns the day of the week for d.
func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// DayOfYear returns the day of the year, 1-365 or 1-366 for leap years.
func (d Day) DayOfYear() int {
	return gregorian.DayOfYear(d.year, d.month, d.day)
}

// Instant returns the instant at secondsOfDay on d, correcting it
// if necessary.
func (d Day) Instant(secondsOfDay float64) Instant {
	return NewInstant(d.year, d.month, d.day, secondsOfDay)
}

// Time returns midnight at the start of d in UTC.
func (d Day) Time() time.Time {
	return gregorian.Time(d.year, d.month, d.day, 0)
}

// Compare returns -1, 0 or +1 depending on whether d is before,
// the same as or after o.
func (d Day) Compare(o Day) int {
	return cmp.Compare(d.dayNumber(), o.dayNumber())
}

// Before returns true if d is before o.
func (d Day) Before(o Day) bool {
	return d.Compare(o) < 0
}

// After returns true if d is after o.
func (d Day) After(o Day) bool {
	return d.Compare(o) > 0
}

// Equal returns true if d and o denote the same date, regardless
// of whether either was corrected.
func (d Day) Equal(o Day) bool {
	return d.Compare(o) == 0
}
