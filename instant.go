// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"cmp"
	"fmt"
	"math"
	"strings"
	"time"

	"cloudeng.io/chrono/gregorian"
)

// Instant represents a date and a time of day, expressed as seconds since
// midnight, in a single absolute (UTC) timescale.
type Instant struct {
	instantFields
	corrected bool
}

func finalizeInstant(f instantFields, corrected bool) Instant {
	corrected = f.correct() || corrected
	return Instant{instantFields: f, corrected: corrected}
}

// NewInstant returns the Instant at secondsOfDay on the given date. The
// date is corrected as per NewDay and a secondsOfDay outside of [0, 86400)
// is folded into the date, eg. -1 is the last second of the previous day.
// Such Instants are flagged as Corrected.
func NewInstant(year, month, day int, secondsOfDay float64) Instant {
	return finalizeInstant(composeInstant(year, month, day, secondsOfDay), false)
}

// NewInstantHMS is like NewInstant except that the time of day is
// specified as an hour, minute and second. The Instant is flagged as
// Corrected if any of these is out of range, even if their combination
// is a valid time of day, eg. 00:90:00.
func NewInstantHMS(year, month, day, hour, minute int, second float64) Instant {
	return finalizeInstant(composeInstant(year, month, day, hmsSeconds(hour, minute, second)), !validHMS(hour, minute, second))
}

func hmsSeconds(hour, minute int, second float64) float64 {
	return float64(hour*3600+minute*60) + second
}

func validHMS(hour, minute int, second float64) bool {
	return hour >= 0 && hour < 24 && minute >= 0 && minute < 60 && second >= 0 && second < 60
}

// InstantFromTime returns the Instant for t, interpreted in UTC.
func InstantFromTime(t time.Time) Instant {
	return NewInstant(gregorian.FromTime(t))
}

// Day returns the Day that i is on.
func (i Instant) Day() Day {
	return NewDay(i.year, i.month, i.day)
}

// Month returns the Month that i is in.
func (i Instant) Month() Month {
	return NewMonth(i.year, i.month)
}

// Year returns the Year that i is in.
func (i Instant) Year() Year {
	return NewYear(i.year)
}

// RebaseDay changes the day of the month of i, re-runs correction
// and returns i.
func (i *Instant) RebaseDay(day int) *Instant {
	*i = finalizeInstant(composeInstant(i.year, i.month, day, i.seconds), false)
	return i
}

// Seconds returns the number of seconds since midnight, including
// any fractional part.
func (i Instant) Seconds() float64 {
	return i.seconds
}

// Int returns the number of whole seconds since midnight.
func (i Instant) Int() int {
	return int(i.seconds)
}

// Hour returns the hour of the day, 0-23.
func (i Instant) Hour() int {
	h, _, _ := gregorian.SplitSeconds(i.seconds)
	return h
}

// Minute returns the minute of the hour, 0-59.
func (i Instant) Minute() int {
	_, m, _ := gregorian.SplitSeconds(i.seconds)
	return m
}

// Second returns the second of the minute, including any fractional part.
func (i Instant) Second() float64 {
	_, _, s := gregorian.SplitSeconds(i.seconds)
	return s
}

// String returns i in the form YYYY-MM-DD HH:MM:SS with a fractional
// second appended only when it is non-zero.
func (i Instant) String() string {
	h, m, s := gregorian.SplitSeconds(i.seconds)
	whole := math.Floor(s)
	out := &strings.Builder{}
	fmt.Fprintf(out, "%04d-%02d-%02d %02d:%02d:%02d", i.year, i.month, i.day, h, m, int(whole))
	if ns := int(math.Round((s - whole) * 1e9)); ns > 0 {
		ns = min(ns, 999999999)
		out.WriteString(strings.TrimRight(fmt.Sprintf(".%09d", ns), "0"))
	}
	return out.String()
}

// MarshalText implements encoding.TextMarshaler.
func (i Instant) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Corrected returns true if the values i was created from did not
// denote a valid date and time of day.
func (i Instant) Corrected() bool {
	return i.corrected
}

// Strict returns i, or an error wrapping ErrInvalidTemporalValue
// if i was corrected.
func (i Instant) Strict() (Instant, error) {
	return i, strictErr("Instant", i.corrected, i)
}

// Add returns the instant seconds after i.
func (i Instant) Add(seconds float64) Instant {
	y, m, d, s := gregorian.AddSeconds(i.year, i.month, i.day, i.seconds, seconds)
	return finalizeInstant(composeInstant(y, m, d, s), i.corrected)
}

// Sub returns the instant seconds before i.
func (i Instant) Sub(seconds float64) Instant {
	return i.Add(-seconds)
}

// AddDuration returns the instant d after i.
func (i Instant) AddDuration(d time.Duration) Instant {
	return i.Add(d.Seconds())
}

// Diff returns the number of seconds between i and o, ie. i - o.
func (i Instant) Diff(o Instant) float64 {
	days := i.dayNumber() - o.dayNumber()
	return float64(days)*gregorian.SecondsPerDay + (i.seconds - o.seconds)
}

// Time returns i as a UTC time.Time.
func (i Instant) Time() time.Time {
	return gregorian.Time(i.year, i.month, i.day, i.seconds)
}

// Compare returns -1, 0 or +1 depending on whether i is before,
// the same as or after o.
func (i Instant) Compare(o Instant) int {
	if c := cmp.Compare(i.dayNumber(), o.dayNumber()); c != 0 {
		return c
	}
	return cmp.Compare(i.seconds, o.seconds)
}

// Before returns true if i is before o.
func (i Instant) Before(o Instant) bool {
	return i.Compare(o) < 0
}

// After returns true if i is after o.
func (i Instant) After(o Instant) bool {
	return i.Compare(o) > 0
}

// Equal returns true if i and o denote the same instant, regardless
// of whether either was corrected.
func (i Instant) Equal(o Instant) bool {
	return i.Compare(o) == 0
}
