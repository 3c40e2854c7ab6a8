// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/vehicles-api/pkg/core/model"
)

// Cars interface presents expectations from the cars repository.
// It does not hold a database connection itself. Instead, the Conn and
// Tx methods unwrap a connection or transaction which was acquired
// by a use case and return queryer objects which run their statements
// over that connection or transaction.
type Cars interface {
	Conn(Conn) CarsConnQueryer
	Tx(Tx) CarsTxQueryer
}

type CarsConnQueryer interface {
	CarsQueryer
}

type CarsTxQueryer interface {
	CarsQueryer
}

// CarsQueryer lists the cars persistence operations.
// Missing cars are reported by errors which are classified by the
// cerr.NotFound function.
type CarsQueryer interface {
	// Save inserts the car if its ID is nil, assigning a new ID,
	// otherwise, it updates all persisted columns of the car with
	// the same ID. The transient Price field is not persisted.
	// The persisted car is returned.
	Save(ctx context.Context, car *model.Car) (*model.Car, error)

	// Find fetches one car by its ID.
	Find(ctx context.Context, id int64) (*model.Car, error)

	// List fetches all cars, ordered by their IDs.
	List(ctx context.Context) ([]*model.Car, error)

	// Delete removes the car having the given ID.
	Delete(ctx context.Context, id int64) error
}
