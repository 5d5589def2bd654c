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

func TestYear(t *testing.T) {
	y := chrono.NewYear(2015)
	if got, want := y.String(), "2015"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := y.Diff(chrono.NewYear(2014)), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := y.Add(10).Int(), 2025; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := y.Sub(2016).Int(), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if y.Corrected() || y.IsLeap() {
		t.Errorf("%v: unexpected state", y)
	}
	if got, want := chrono.NewYear(2016).Days(), 366; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := y.Month(14), chrono.NewMonth(2016, 2); !got.Equal(want) || !got.Corrected() {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := y.Time(), time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if !y.Before(y.Add(1)) || !y.After(y.Sub(1)) || !y.Equal(chrono.NewYear(2015)) {
		t.Errorf("%v: comparison failed", y)
	}
}

func TestMonthCorrection(t *testing.T) {
	for _, tc := range []struct {
		year, month int
		ry, rm      int
		corrected   bool
	}{
		{2015, 1, 2015, 1, false},
		{2015, 12, 2015, 12, false},
		{2015, 13, 2016, 1, true},
		{2015, -1, 2014, 11, true},
		{2015, 0, 2014, 12, true},
		{2015, 25, 2017, 1, true},
		{2015, -12, 2013, 12, true},
	} {
		m := chrono.NewMonth(tc.year, tc.month)
		if got, want := m.Year().Int(), tc.ry; got != want {
			t.Errorf("%v-%v: got %v, want %v", tc.year, tc.month, got, want)
		}
		if got, want := m.Int(), tc.rm; got != want {
			t.Errorf("%v-%v: got %v, want %v", tc.year, tc.month, got, want)
		}
		if got, want := m.Corrected(), tc.corrected; got != want {
			t.Errorf("%v-%v: got %v, want %v", tc.year, tc.month, got, want)
		}
		// Correction is idempotent.
		again := chrono.NewMonth(m.Year().Int(), m.Int())
		if !again.Equal(m) || again.Corrected() {
			t.Errorf("%v-%v: got %v, want %v", tc.year, tc.month, again, m)
		}
	}
}

func TestMonthArithmetic(t *testing.T) {
	if got, want := chrono.NewMonth(2015, 3).Diff(chrono.NewMonth(2014, 12)), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := chrono.NewMonth(2014, 12).Diff(chrono.NewMonth(2015, 3)), -3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := chrono.NewMonth(2015, 3).Sub(3).Int(), 12; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		m    chrono.Month
		n    int
		want string
	}{
		{chrono.NewMonth(2015, 1), 1, "2015-02"},
		{chrono.NewMonth(2015, 12), 1, "2016-01"},
		{chrono.NewMonth(2015, 1), -1, "2014-12"},
		{chrono.NewMonth(2015, 6), 120, "2025-06"},
		{chrono.NewMonth(2015, 6), 0, "2015-06"},
	} {
		r := tc.m.Add(tc.n)
		if got, want := r.String(), tc.want; got != want {
			t.Errorf("%v + %v: got %v, want %v", tc.m, tc.n, got, want)
		}
		if got, want := r.Diff(tc.m), tc.n; got != want {
			t.Errorf("%v + %v: got %v, want %v", tc.m, tc.n, got, want)
		}
		if got, want := r.Sub(tc.n), tc.m; got != want {
			t.Errorf("%v + %v: got %v, want %v", tc.m, tc.n, got, want)
		}
	}

	// Arithmetic retains the corrected state of its operand.
	c := chrono.NewMonth(2015, 13)
	if got, want := c.Add(2).Sub(2), c; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMonthRebase(t *testing.T) {
	m := chrono.NewMonth(2015, 13)
	if !m.Corrected() {
		t.Fatalf("%v: should be corrected", m)
	}
	m.RebaseYear(2020)
	if got, want := m.String(), "2020-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if m.Corrected() {
		t.Errorf("%v: should not be corrected", m)
	}

	// The Year obtained from a Month is a copy.
	y := m.Year()
	y = y.Add(5)
	if got, want := m.Year().Int(), 2020; got != want || y.Int() != 2025 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMonthDays(t *testing.T) {
	for _, tc := range []struct {
		m     chrono.Month
		name  string
		days  int
		first string
		last  string
	}{
		{chrono.NewMonth(2015, 2), "February", 28, "2015-02-01", "2015-02-28"},
		{chrono.NewMonth(2016, 2), "February", 29, "2016-02-01", "2016-02-29"},
		{chrono.NewMonth(2015, 4), "April", 30, "2015-04-01", "2015-04-30"},
		{chrono.NewMonth(2015, 12), "December", 31, "2015-12-01", "2015-12-31"},
	} {
		if got, want := tc.m.Name(), tc.name; got != want {
			t.Errorf("%v: got %v, want %v", tc.m, got, want)
		}
		if got, want := tc.m.Days(), tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.m, got, want)
		}
		if got, want := tc.m.First().String(), tc.first; got != want {
			t.Errorf("%v: got %v, want %v", tc.m, got, want)
		}
		if got, want := tc.m.Last().String(), tc.last; got != want {
			t.Errorf("%v: got %v, want %v", tc.m, got, want)
		}
		if got, want := tc.m.First().Month(), tc.m; got != want {
			t.Errorf("%v: got %v, want %v", tc.m, got, want)
		}
	}
}

func TestMonthCompare(t *testing.T) {
	a, b := chrono.NewMonth(2015, 12), chrono.NewMonth(2016, 1)
	if !a.Before(b) || a.After(b) || !b.After(a) || a.Equal(b) {
		t.Errorf("%v, %v: comparison failed", a, b)
	}
	c := chrono.NewMonth(2016, 0)
	if !c.Equal(a) || c == a {
		t.Errorf("%v, %v: comparison failed", c, a)
	}
	if got, want := chrono.MonthFromTime(time.Date(2015, 7, 31, 23, 0, 0, 0, time.UTC)).String(), "2015-07"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	txt, err := a.MarshalText()
	if err != nil || string(txt) != "2015-12" {
		t.Errorf("got %s, %v", txt, err)
	}
}

func TestMonthExtremes(t *testing.T) {
	for _, tc := range []struct {
		m           chrono.Month
		year, month int
	}{
		{chrono.NewMonth(2015, math.MinInt), 2015 + math.MinInt/12 - 1, 4},
		{chrono.NewMonth(2015, math.MaxInt), 2015 + math.MaxInt/12, 7},
		{chrono.NewMonth(2015, 1).Add(math.MinInt), 2015 + math.MinInt/12 - 1, 5},
	} {
		if got, want := tc.m.Year().Int(), tc.year; got != want {
			t.Errorf("%v: got %v, want %v", tc.m, got, want)
		}
		if got, want := tc.m.Int(), tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.m, got, want)
		}
	}
	if m := chrono.NewMonth(2015, math.MinInt); !m.Corrected() {
		t.Errorf("%v: should be corrected", m)
	}
}
