// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"math"
	"testing"
	"time"

	"cloudeng.io/chrono"
)

func TestDayCorrection(t *testing.T) {
	for _, tc := range []struct {
		y, m, d    int
		ry, rm, rd int
		corrected  bool
	}{
		{2015, 1, 1, 2015, 1, 1, false},
		{2016, 2, 29, 2016, 2, 29, false},
		{2015, 1, -1, 2014, 12, 30, true},
		{2015, 2, 30, 2015, 3, 2, true},
		{2015, 1, 0, 2014, 12, 31, true},
		{2015, 2, 29, 2015, 3, 1, true},
		{2015, 13, 1, 2016, 1, 1, true},
		{2015, 13, 32, 2016, 2, 1, true},
		{2015, 0, 0, 2014, 11, 30, true},
		{2015, 1, 366, 2016, 1, 1, true},
	} {
		d := chrono.NewDay(tc.y, tc.m, tc.d)
		m := d.Month()
		if got, want := [3]int{m.Year().Int(), m.Int(), d.Int()}, [3]int{tc.ry, tc.rm, tc.rd}; got != want {
			t.Errorf("%v-%v-%v: got %v, want %v", tc.y, tc.m, tc.d, got, want)
		}
		if got, want := d.Corrected(), tc.corrected; got != want {
			t.Errorf("%v-%v-%v: got %v, want %v", tc.y, tc.m, tc.d, got, want)
		}
		again := chrono.NewDay(m.Year().Int(), m.Int(), d.Int())
		if !again.Equal(d) || again.Corrected() {
			t.Errorf("%v-%v-%v: got %v, want %v", tc.y, tc.m, tc.d, again, d)
		}
	}
	// A Month obtained from a corrected Day is valid in its own right.
	if chrono.NewDay(2015, 13, 1).Month().Corrected() {
		t.Errorf("month should not be corrected")
	}
}

func TestDayArithmetic(t *testing.T) {
	for _, tc := range []struct {
		a, b chrono.Day
		diff int
	}{
		{chrono.NewDay(2015, 3, 1), chrono.NewDay(2015, 2, 1), 28},
		{chrono.NewDay(2016, 3, 1), chrono.NewDay(2016, 2, 1), 29},
		{chrono.NewDay(2016, 1, 1), chrono.NewDay(2015, 1, 1), 365},
		{chrono.NewDay(2015, 1, 1), chrono.NewDay(2016, 1, 1), -365},
		{chrono.NewDay(2015, 6, 10), chrono.NewDay(2015, 6, 10), 0},
		{chrono.NewDay(2400, 1, 1), chrono.NewDay(2000, 1, 1), 146097},
	} {
		if got, want := tc.a.Diff(tc.b), tc.diff; got != want {
			t.Errorf("%v - %v: got %v, want %v", tc.a, tc.b, got, want)
		}
		if got, want := tc.b.Add(tc.diff), tc.a; got != want {
			t.Errorf("%v + %v: got %v, want %v", tc.b, tc.diff, got, want)
		}
	}

	for _, d := range []chrono.Day{
		chrono.NewDay(2015, 1, 1),
		chrono.NewDay(2016, 2, 29),
		chrono.NewDay(2015, 2, 30),
		chrono.NewDay(1, 1, 1),
	} {
		for _, n := range []int{0, 1, -1, 28, 29, 365, 366, -1000, 100000} {
			if got, want := d.Add(n).Sub(n), d; got != want {
				t.Errorf("%v + %v - %v: got %v, want %v", d, n, n, got, want)
			}
		}
	}

	if got, want := chrono.NewDay(2015, 12, 31).Add(1).String(), "2016-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := chrono.NewDay(2016, 3, 1).Sub(1).String(), "2016-02-29"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDayRebase(t *testing.T) {
	d := chrono.NewDay(2015, 1, 31)
	d.RebaseMonth(2)
	if got, want := d.String(), "2015-03-03"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !d.Corrected() {
		t.Errorf("%v: should be corrected", d)
	}
	d.RebaseMonth(12)
	if got, want := d.String(), "2015-12-03"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if d.Corrected() {
		t.Errorf("%v: should not be corrected", d)
	}
	if got, want := d.RebaseMonth(13).String(), "2016-01-03"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDayCalendar(t *testing.T) {
	for _, tc := range []struct {
		d       chrono.Day
		weekday time.Weekday
		yday    int
	}{
		{chrono.NewDay(2015, 1, 1), time.Thursday, 1},
		{chrono.NewDay(2015, 12, 31), time.Thursday, 365},
		{chrono.NewDay(2016, 12, 31), time.Saturday, 366},
		{chrono.NewDay(2016, 3, 1), time.Tuesday, 61},
	} {
		if got, want := tc.d.Weekday(), tc.weekday; got != want {
			t.Errorf("%v: got %v, want %v", tc.d, got, want)
		}
		if got, want := tc.d.DayOfYear(), tc.yday; got != want {
			t.Errorf("%v: got %v, want %v", tc.d, got, want)
		}
	}
	d := chrono.DayFromTime(time.Date(2015, 7, 4, 12, 0, 0, 0, time.UTC))
	if got, want := d.String(), "2015-07-04"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Time(), time.Date(2015, 7, 4, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Instant(-1).String(), "2015-07-03 23:59:59"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !d.Before(d.Add(1)) || !d.After(d.Sub(1)) || !d.Equal(chrono.NewDay(2015, 6, 34)) {
		t.Errorf("%v: comparison failed", d)
	}
	if got, want := d.Year().Int(), 2015; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDayExtremes(t *testing.T) {
	ref := chrono.NewDay(2015, 1, 1)
	low, high := chrono.NewDay(2015, 1, math.MinInt), chrono.NewDay(2015, 1, math.MaxInt)
	if !low.Corrected() || !low.Before(ref) {
		t.Errorf("got %v, corrected %v", low, low.Corrected())
	}
	if !high.Corrected() || !high.After(ref) {
		t.Errorf("got %v, corrected %v", high, high.Corrected())
	}
	if got, want := ref.Add(math.MaxInt), ref.Add(math.MaxInt-1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
