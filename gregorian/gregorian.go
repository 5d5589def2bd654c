// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gregorian provides the proleptic Gregorian calendar primitives
// used by chrono: date validation, month, day and second arithmetic with
// roll-over, absolute day numbers and access to the current time via an
// injectable Clock. All computations are carried out in UTC, there is no
// notion of a time zone, and leap seconds are ignored.
//
// Arithmetic is delegated to the standard library's time.Date which
// normalizes out of range components, e.g. month 13 of 2015 is January 2016
// and day 0 of March is the last day of February. Month offsets are
// computed without overflow for every int, day offsets saturate at
// MaxDayOffset.
package gregorian

import (
	"math"
	"time"

	"cloudeng.io/datetime"
)

// SecondsPerDay is the number of seconds in every calendar day.
const SecondsPerDay = 86400

// MaxDayOffset bounds the number of days that AddDays and AddSeconds
// will move a date by, larger offsets saturate at this value. On 64 bit
// platforms it corresponds to roughly 96 billion years.
const MaxDayOffset = min(1<<45, math.MaxInt/4)

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	return datetime.DaysInFeb(year)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month for the given
// year, or zero if month is not in the range 1-12.
func DaysInMonth(year, month int) int {
	if !IsValidMonth(year, month) {
		return 0
	}
	return datetime.DaysInMonth(year, datetime.Month(month))
}

// DayOfYear returns the day of the year, 1-365 or 1-366 for leap years,
// for a valid date.
func DayOfYear(year, month, day int) int {
	return datetime.Date{Month: datetime.Month(month), Day: day}.DayOfYear(year)
}

// IsValidMonth returns true if month is in the range 1-12. Every integer
// is a valid year.
func IsValidMonth(_, month int) bool {
	return month >= 1 && month <= 12
}

// IsValidDate returns true if year, month and day denote a day that
// exists in the calendar.
func IsValidDate(year, month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}

// AddMonths returns the year and month that is n months after the
// given year and month. The month need not be valid, ie. AddMonths(2015, 1, 12)
// and AddMonths(2015, 13, 0) both return 2016, 1. The year saturates
// at math.MaxInt and math.MinInt.
func AddMonths(year, month, n int) (int, int) {
	yq, m := splitMonth(month)
	nq, nr := n/12, n%12
	m += nr
	switch {
	case m > 12:
		m -= 12
		nq++
	case m < 1:
		m += 12
		nq--
	}
	return saturatingAdd(saturatingAdd(year, yq), nq), m
}

// splitMonth returns q and m such that month == 12*q + m with m in 1-12.
func splitMonth(month int) (int, int) {
	q, r := month/12, month%12
	if r <= 0 {
		r += 12
		q--
	}
	return q, r
}

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

func clampDays(n int) int {
	return max(-MaxDayOffset, min(n, MaxDayOffset))
}

// AddDays returns the date that is n days after the given date. As
// for AddMonths, month and day need not be valid. Both day and n are
// limited to MaxDayOffset in magnitude.
func AddDays(year, month, day, n int) (int, int, int) {
	year, month = AddMonths(year, month, 0)
	t := time.Date(year, time.Month(month), clampDays(day)+clampDays(n), 0, 0, 0, 0, time.UTC)
	return t.Year(), int(t.Month()), t.Day()
}

// AddSeconds adds delta seconds to the given date and seconds of day
// and returns the resulting date and seconds of day, the latter in the
// range [0, SecondsPerDay). Whole days of overflow or underflow are
// folded into the date using AddDays. Non-finite values of secondsOfDay+delta
// leave the date unchanged and return a seconds of day of zero. Offsets
// of more than MaxDayOffset days saturate.
func AddSeconds(year, month, day int, secondsOfDay, delta float64) (int, int, int, float64) {
	total := secondsOfDay + delta
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return year, month, day, 0
	}
	days := math.Floor(total / SecondsPerDay)
	rem := total - days*SecondsPerDay
	if rem >= SecondsPerDay {
		rem -= SecondsPerDay
		days++
	}
	if rem < 0 || rem >= SecondsPerDay {
		rem = 0
	}
	days = max(-MaxDayOffset, min(days, MaxDayOffset))
	y, m, d := AddDays(year, month, day, int(days))
	return y, m, d, rem
}

// DayNumber returns the number of days between 1970-01-01 and the given
// date, negative for dates before 1970. The difference between the day
// numbers of two dates is the number of days between them.
func DayNumber(year, month, day int) int64 {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Unix() / SecondsPerDay
}

// FromDayNumber is the inverse of DayNumber.
func FromDayNumber(n int64) (int, int, int) {
	t := time.Unix(n*SecondsPerDay, 0).UTC()
	return t.Year(), int(t.Month()), t.Day()
}

// Time returns the UTC time.Time for the given date and seconds of day.
// Fractional seconds are rounded to the nearest nanosecond.
func Time(year, month, day int, secondsOfDay float64) time.Time {
	whole := math.Floor(secondsOfDay)
	nsec := min(math.Round((secondsOfDay-whole)*1e9), 999999999)
	return time.Date(year, time.Month(month), day, 0, 0, int(whole), int(nsec), time.UTC)
}

// FromTime returns the UTC date and seconds of day for t.
func FromTime(t time.Time) (year, month, day int, secondsOfDay float64) {
	t = t.UTC()
	secondsOfDay = float64(t.Hour()*3600 + t.Minute()*60 + t.Second())
	if ns := t.Nanosecond(); ns != 0 {
		secondsOfDay += float64(ns) / 1e9
	}
	return t.Year(), int(t.Month()), t.Day(), secondsOfDay
}

// SplitSeconds returns the hour, minute and second for a seconds of day
// value. The second includes any fractional part.
func SplitSeconds(secondsOfDay float64) (hour, minute int, second float64) {
	whole := int(math.Floor(secondsOfDay))
	hour = whole / 3600
	minute = whole / 60 % 60
	second = secondsOfDay - float64(hour*3600+minute*60)
	return
}
