// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"math"

	"cloudeng.io/chrono/gregorian"
)

// Each level embeds the fields of the level above it by value. The compose
// functions only aggregate raw, possibly out of range, values; correction
// is performed exactly once by the public constructor or mutator for the
// level being built via its correct method. The correct methods delegate
// to the coarser level first, so a single pass always reaches a valid
// calendar point.

type yearFields struct {
	year int
}

type monthFields struct {
	yearFields
	month int
}

type dayFields struct {
	monthFields
	day int
}

type instantFields struct {
	dayFields
	seconds float64
}

func composeYear(year int) yearFields {
	return yearFields{year: year}
}

func composeMonth(year, month int) monthFields {
	return monthFields{yearFields: composeYear(year), month: month}
}

func composeDay(year, month, day int) dayFields {
	return dayFields{monthFields: composeMonth(year, month), day: day}
}

func composeInstant(year, month, day int, seconds float64) instantFields {
	return instantFields{dayFields: composeDay(year, month, day), seconds: seconds}
}

// correct is a no-op, a bare year is always valid.
func (f *yearFields) correct() bool {
	return false
}

// correct treats an out of range month as an offset from January.
func (f *monthFields) correct() bool {
	corrected := f.yearFields.correct()
	if gregorian.IsValidMonth(f.year, f.month) {
		return corrected
	}
	f.year, f.month = gregorian.AddMonths(f.year, f.month, 0)
	return true
}

// correct treats an out of range day as an offset from the first day
// of the (corrected) month.
func (f *dayFields) correct() bool {
	corrected := f.monthFields.correct()
	if gregorian.IsValidDate(f.year, f.month, f.day) {
		return corrected
	}
	f.year, f.month, f.day = gregorian.AddDays(f.year, f.month, f.day, 0)
	return true
}

// correct folds seconds outside of [0, 86400) into the (corrected) date.
// Non-finite seconds are replaced by midnight.
func (f *instantFields) correct() bool {
	corrected := f.dayFields.correct()
	if f.seconds >= 0 && f.seconds < gregorian.SecondsPerDay {
		return corrected
	}
	if math.IsNaN(f.seconds) || math.IsInf(f.seconds, 0) {
		f.seconds = 0
		return true
	}
	f.year, f.month, f.day, f.seconds = gregorian.AddSeconds(f.year, f.month, f.day, 0, f.seconds)
	return true
}

func (f dayFields) dayNumber() int64 {
	return gregorian.DayNumber(f.year, f.month, f.day)
}
