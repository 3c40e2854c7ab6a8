// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// Condition specifies if a car is used or new. Although this enum is
// numeric (and is stored as an integer column), it is (de)serialized
// as a string for readability in the REST APIs.
type Condition int

// Valid values for the Condition enum.
const (
	ConditionInvalid Condition = iota // zero value is invalid

	ConditionUsed // a car which had other owners before
	ConditionNew  // a car which is sold for the first time
)

// ErrUnknownCondition indicates that a given string may not be parsed
// as a known car condition. Caller of ParseCondition knows about the
// invalid string, so it is not included in the error.
var ErrUnknownCondition = errors.New("unknown condition")

// ConditionError indicates an invalid condition, carrying the invalid
// numeric value. It is returned when an integer (e.g., a stored column)
// does not map to a known condition.
type ConditionError int

// Error implements the error interface, returning a string
// representation of the ConditionError.
func (e ConditionError) Error() string {
	return fmt.Sprintf("invalid condition: %d", e)
}

// Validate returns nil if the Condition value is valid. For invalid
// values, an instance of the ConditionError will be returned.
func (c Condition) Validate() error {
	switch c {
	case ConditionUsed, ConditionNew:
		return nil
	default:
		return ConditionError(c)
	}
}

// String converts the Condition enum to its string representation.
// Invalid conditions are reported as "invalid" instead of panicking
// because a Car may be logged before its validation.
func (c Condition) String() string {
	switch c {
	case ConditionUsed:
		return "used"
	case ConditionNew:
		return "new"
	default:
		return "invalid"
	}
}

// ParseCondition parses the given string and returns a Condition.
// For unknown strings, ConditionInvalid and ErrUnknownCondition
// will be returned.
func ParseCondition(s string) (Condition, error) {
	switch s {
	case "used", "USED":
		return ConditionUsed, nil
	case "new", "NEW":
		return ConditionNew, nil
	default:
		return ConditionInvalid, ErrUnknownCondition
	}
}

// MarshalText implements encoding.TextMarshaler, so a Condition is
// encoded as a JSON string.
func (c Condition) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and parses the
// text using ParseCondition.
func (c *Condition) UnmarshalText(text []byte) error {
	cc, err := ParseCondition(string(text))
	if err != nil {
		return fmt.Errorf("%q: %w", text, err)
	}
	*c = cc
	return nil
}
