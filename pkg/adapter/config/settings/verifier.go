// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"cmp"
	"fmt"
)

// OutOfRangeError indicates that a Value was less than its minimum
// valid value or greater than its maximum valid value.
type OutOfRangeError[T cmp.Ordered] struct {
	Value       T    // The actual out-of-range value
	Bound       T    // The violated boundary
	LessThanMin bool // true if and only if min boundary is violated
}

func (e *OutOfRangeError[T]) Error() string {
	if e.LessThanMin {
		return fmt.Sprintf("%v is less than min (%v)", e.Value, e.Bound)
	}
	return fmt.Sprintf("%v is greater than max (%v)", e.Value, e.Bound)
}

// VerifyRange ensures that *value is either nil or within the
// [minb, maxb] closed range. Out of range values are clamped to the
// violated boundary in addition to the returned error, so callers may
// log the error and go on.
func VerifyRange[T cmp.Ordered](value **T, minb, maxb T) *OutOfRangeError[T] {
	if (*value) == nil {
		return nil
	}
	switch v := **value; {
	case v < minb:
		**value = minb
		return &OutOfRangeError[T]{Value: v, Bound: minb, LessThanMin: true}
	case v > maxb:
		**value = maxb
		return &OutOfRangeError[T]{Value: v, Bound: maxb}
	}
	return nil
}
