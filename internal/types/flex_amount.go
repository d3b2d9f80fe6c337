// flex_amount.go
//
// Practice management data service for tax consulting firms.
// Copyright (c) 2026 PajakDesk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexAmount is an optional monetary value that can be unmarshaled from a
// JSON number, a numeric string, an empty string, or null. Dialog forms post
// amount fields as free-text strings; an empty field means "no amount", not
// zero.
type FlexAmount struct {
	set bool
	val float64
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexAmount) UnmarshalJSON(data []byte) error {
	f.set = false
	f.val = 0

	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	// Try unmarshaling as a number first
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		f.set = true
		f.val = n
		return nil
	}

	// Try unmarshaling as a string; empty string means unset
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			return nil
		}
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("FlexAmount: invalid number string %q: %w", s, err)
		}
		f.set = true
		f.val = val
		return nil
	}

	return fmt.Errorf("FlexAmount: unexpected type, expected number, string or null")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexAmount) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.val)
}

// Ptr returns the value as a nullable pointer, nil when unset.
func (f FlexAmount) Ptr() *float64 {
	if !f.set {
		return nil
	}
	v := f.val
	return &v
}

// FlexInt is an int that can be unmarshaled from either a JSON number or a
// numeric string. An empty string yields zero.
type FlexInt int

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*f = 0
			return nil
		}
		val, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("FlexInt: invalid int string %q: %w", s, err)
		}
		*f = FlexInt(val)
		return nil
	}

	return fmt.Errorf("FlexInt: unexpected type, expected number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// Int converts FlexInt back to int.
func (f FlexInt) Int() int {
	return int(f)
}
