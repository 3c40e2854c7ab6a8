// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"

	"github.com/momeni/vehicles-api/pkg/core/model"
)

// Valuer returns an Attr for the given slog.LogValuer value.
func Valuer(key string, value slog.LogValuer) slog.Attr {
	return slog.Any(key, value)
}

// Err returns an Attr for the given error value.
// The error value is resolved as a string by its Error() method.
// If error value is nil, the constant "no-error" value will be used.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// CarID returns a "car_id" Attr for the given car identifier.
// A nil id (belonging to a car which is not persisted yet) is logged
// as the constant "new-car" value.
func CarID(id *int64) slog.Attr {
	if id == nil {
		return slog.String("car_id", "new-car")
	}
	return slog.Int64("car_id", *id)
}

// VehicleID returns a "vehicle_id" Attr for the given identifier.
func VehicleID(id int64) slog.Attr {
	return slog.Int64("vehicle_id", id)
}

// Money returns an Attr which formats m like "USD 22.50".
// A nil m is logged as the constant "no-price" value.
func Money(key string, m *model.Money) slog.Attr {
	if m == nil {
		return slog.String(key, "no-price")
	}
	return slog.String(key, m.String())
}

// Component returns a "component" Attr, naming the vehicles or pricing
// database schema owner.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path returns a "path" Attr for the given file path.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}
