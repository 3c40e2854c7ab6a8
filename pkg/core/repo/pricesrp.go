// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/vehicles-api/pkg/core/model"
)

// Prices interface presents expectations from the prices repository,
// following the same Conn/Tx unwrapping pattern as the Cars interface.
type Prices interface {
	Conn(Conn) PricesConnQueryer
	Tx(Tx) PricesTxQueryer
}

type PricesConnQueryer interface {
	PricesQueryer
}

type PricesTxQueryer interface {
	PricesQueryer
}

// PricesQueryer lists the prices persistence operations.
// Missing prices are reported by errors which are classified by the
// cerr.NotFound function.
type PricesQueryer interface {
	// Save inserts p if its ID is zero, assigning a new ID, otherwise,
	// it updates the price with the same ID. The persisted price is
	// returned. A VehicleID which is already priced by another row
	// causes a cerr.Conflict error.
	Save(ctx context.Context, p *model.Price) (*model.Price, error)

	// Find fetches one price by its ID.
	Find(ctx context.Context, id int64) (*model.Price, error)

	// FindByVehicle fetches the price of the given vehicle.
	FindByVehicle(ctx context.Context, vehicleID int64) (*model.Price, error)

	// List fetches all prices, ordered by their IDs.
	List(ctx context.Context) ([]*model.Price, error)

	// Delete removes the price having the given ID.
	Delete(ctx context.Context, id int64) error
}
