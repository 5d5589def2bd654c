// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidArgument is returned when a constructor argument can
	// not be converted to the numeric type required for it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidTemporalValue is returned by the Strict methods for
	// values that had to be corrected.
	ErrInvalidTemporalValue = errors.New("invalid temporal value")
)

// ArgumentError describes an argument that could not be used by one
// of the Calendar constructors. It wraps ErrInvalidArgument.
type ArgumentError struct {
	Level  string // Year, Month, Day or Instant.
	Name   string // Parameter name, eg. month.
	Value  any
	Reason string
}

// Error implements error.
func (e *ArgumentError) Error() string {
	if len(e.Name) == 0 {
		return fmt.Sprintf("%v: %v: %v", e.Level, ErrInvalidArgument, e.Reason)
	}
	return fmt.Sprintf("%v: %v for %v: %#v: %v", e.Level, ErrInvalidArgument, e.Name, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// TemporalValueError is returned by Strict for corrected values, Value
// is the corrected value in its String form. It wraps ErrInvalidTemporalValue.
type TemporalValueError struct {
	Level string
	Value string
}

// Error implements error.
func (e *TemporalValueError) Error() string {
	return fmt.Sprintf("%v: invalid %v (should be %v)", ErrInvalidTemporalValue, e.Level, e.Value)
}

// Unwrap returns ErrInvalidTemporalValue.
func (e *TemporalValueError) Unwrap() error {
	return ErrInvalidTemporalValue
}

func strictErr(level string, corrected bool, s fmt.Stringer) error {
	if !corrected {
		return nil
	}
	return &TemporalValueError{Level: level, Value: s.String()}
}
