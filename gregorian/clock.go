// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc allows a function to be used as a Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is a Clock that returns time.Now.
var SystemClock Clock = systemClock{}

// FixedClock is a Clock that always returns the same time.
type FixedClock time.Time

// Now implements Clock.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Now returns the current UTC year, month, day and seconds of day
// as reported by clock. A nil clock is treated as SystemClock.
func Now(clock Clock) (year, month, day int, secondsOfDay float64) {
	if clock == nil {
		clock = SystemClock
	}
	return FromTime(clock.Now())
}
