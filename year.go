// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"cmp"
	"strconv"
	"time"

	"cloudeng.io/chrono/gregorian"
)

// Year represents a calendar year. Every integer is a valid year and
// hence a Year is never corrected.
type Year struct {
	yearFields
}

// NewYear returns the Year for year.
func NewYear(year int) Year {
	return Year{yearFields: composeYear(year)}
}

// Int returns the year as an integer.
func (y Year) Int() int {
	return y.year
}

func (y Year) String() string {
	return strconv.Itoa(y.year)
}

// MarshalText implements encoding.TextMarshaler.
func (y Year) MarshalText() ([]byte, error) {
	return []byte(y.String()), nil
}

// Corrected always returns false.
func (y Year) Corrected() bool {
	return false
}

// Strict always returns y and a nil error, it is provided for symmetry
// with the other levels.
func (y Year) Strict() (Year, error) {
	return y, nil
}

// Add returns the year n years after y.
func (y Year) Add(n int) Year {
	return NewYear(y.year + n)
}

// Sub returns the year n years before y.
func (y Year) Sub(n int) Year {
	return y.Add(-n)
}

// Diff returns the number of years between y and o, ie. y - o.
func (y Year) Diff(o Year) int {
	return y.year - o.year
}

// IsLeap returns true if y is a leap year.
func (y Year) IsLeap() bool {
	return gregorian.IsLeap(y.year)
}

// Days returns the number of days in y.
func (y Year) Days() int {
	return gregorian.DaysInYear(y.year)
}

// Month returns the given month of y, correcting it if necessary.
func (y Year) Month(month int) Month {
	return NewMonth(y.year, month)
}

// Time returns the start of y in UTC.
func (y Year) Time() time.Time {
	return gregorian.Time(y.year, 1, 1, 0)
}

// Compare returns -1, 0 or +1 depending on whether y is before,
// the same as or after o.
func (y Year) Compare(o Year) int {
	return cmp.Compare(y.year, o.year)
}

// Before returns true if y is before o.
func (y Year) Before(o Year) bool {
	return y.Compare(o) < 0
}

// After returns true if y is after o.
func (y Year) After(o Year) bool {
	return y.Compare(o) > 0
}

// Equal returns true if y and o denote the same year.
func (y Year) Equal(o Year) bool {
	return y.Compare(o) == 0
}
