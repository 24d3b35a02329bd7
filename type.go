// File: inilib/type.go
package inilib

import (
	"fmt"
	"strconv"
	"time"
)

// Typed accessors convert stored values at the caller's request. The
// document itself never coerces: every value stays a string until one of
// these parses it, and a failed conversion reports the value, key, section,
// and cause.

// Int64 retrieves the value of key in section converted to int64.
// Base prefixes are honored ("0xFF", "0o17", "0b101"); a plain decimal with
// a fractional part is truncated.
func (s *Store) Int64(section, key string) (int64, error) {
	v, err := s.GetValue(section, key)
	if err != nil {
		return 0, err
	}
	if i, err := strconv.ParseInt(v, 0, 64); err == nil {
		return i, nil
	} else {
		if f, ferr := strconv.ParseFloat(v, 64); ferr == nil {
			return int64(f), nil // Truncate
		}
		// Return the original integer parsing error if float also fails
		return 0, fmt.Errorf("cannot convert %q to int64 for key %q in section %q: %w", v, key, section, err)
	}
}

// Float64 retrieves the value of key in section converted to float64.
func (s *Store) Float64(section, key string) (float64, error) {
	v, err := s.GetValue(section, key)
	if err != nil {
		return 0.0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0.0, fmt.Errorf("cannot convert %q to float64 for key %q in section %q: %w", v, key, section, err)
	}
	return f, nil
}

// Bool retrieves the value of key in section converted to bool. Accepted
// spellings are those of strconv.ParseBool: 1, t, T, TRUE, true, True, 0, f,
// F, FALSE, false, False.
func (s *Store) Bool(section, key string) (bool, error) {
	v, err := s.GetValue(section, key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("cannot convert %q to bool for key %q in section %q: %w", v, key, section, err)
	}
	return b, nil
}

// Duration retrieves the value of key in section converted to time.Duration
// using time.ParseDuration ("300ms", "2h45m").
func (s *Store) Duration(section, key string) (time.Duration, error) {
	v, err := s.GetValue(section, key)
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to duration for key %q in section %q: %w", v, key, section, err)
	}
	return d, nil
}
