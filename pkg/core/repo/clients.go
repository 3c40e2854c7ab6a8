// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/vehicles-api/pkg/core/model"
)

// PriceClient fetches the current price of a vehicle from the pricing
// service. An error is returned if no price exists for the vehicle or
// the remote call fails.
type PriceClient interface {
	Price(ctx context.Context, vehicleID int64) (*model.Money, error)
}

// MapsClient resolves the address of a location using its coordinates.
// The returned location has its Address, City, State, and Zip fields
// populated, while its coordinates may be echoed or left zero.
type MapsClient interface {
	Address(ctx context.Context, loc model.Location) (*model.Location, error)
}
