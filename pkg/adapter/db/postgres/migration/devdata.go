// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/carsrp"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/pricesrp"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/repo"
	"github.com/momeni/vehicles-api/pkg/core/usecase/migrationuc"
)

// Bounds of the generated dev prices, in cents. Amounts are uniformly
// chosen from [1000.00, 100000.00).
const (
	minSeedCents = 1000_00
	maxSeedCents = 100000_00
)

// InitDevData fills the component tables with the development suitable
// data. The vehicles component gets a sample car (if it has no car),
// while the pricing component gets a random price for each vehicle id
// from 1 up to the seed count (skipping the vehicles which are priced
// already). All rows are inserted in one transaction.
func (i *Initializer) InitDevData(ctx context.Context) error {
	return i.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			switch i.component {
			case migrationuc.ComponentVehicles:
				return seedCars(ctx, carsrp.New().Tx(tx))
			default:
				return i.seedPrices(ctx, pricesrp.New().Tx(tx))
			}
		})
	})
}

func seedCars(ctx context.Context, q repo.CarsTxQueryer) error {
	cars, err := q.List(ctx)
	if err != nil {
		return err
	}
	if len(cars) > 0 {
		return nil
	}
	now := time.Now().UTC()
	_, err = q.Save(ctx, &model.Car{
		Condition: model.ConditionUsed,
		Details: model.Details{
			Body:  "sedan",
			Model: "Impala",
			Manufacturer: model.Manufacturer{
				Code: 101, Name: "Chevrolet",
			},
			NumberOfDoors:  4,
			FuelType:       "Gasoline",
			Engine:         "3.6L V6",
			Mileage:        32280,
			ModelYear:      2018,
			ProductionYear: 2018,
			ExternalColor:  "white",
		},
		Location:   model.Location{Lat: 40.730610, Lon: -73.935242},
		CreatedAt:  now,
		ModifiedAt: now,
	})
	if err != nil {
		return fmt.Errorf("saving sample car: %w", err)
	}
	return nil
}

func (i *Initializer) seedPrices(ctx context.Context, q repo.PricesTxQueryer) error {
	for vid := int64(1); vid <= int64(i.seedCount); vid++ {
		_, err := q.FindByVehicle(ctx, vid)
		switch {
		case err == nil:
			continue
		case !cerr.IsNotFound(err):
			return err
		}
		cents := minSeedCents + i.rnd.Int64N(maxSeedCents-minSeedCents)
		_, err = q.Save(ctx, &model.Price{
			VehicleID: vid,
			Currency:  i.currency,
			Amount:    decimal.New(cents, -2),
		})
		if err != nil {
			return fmt.Errorf("pricing vehicle %d: %w", vid, err)
		}
	}
	return nil
}
