// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsrp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momeni/vehicles-api/internal/test/sqlitedb"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/carsrp"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/repo"
	"github.com/momeni/vehicles-api/pkg/core/usecase/migrationuc"
)

func newCar(name string, lat, lon float64) *model.Car {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	return &model.Car{
		Condition: model.ConditionNew,
		Details: model.Details{
			Body:          "hatchback",
			Model:         name,
			Manufacturer:  model.Manufacturer{Code: 102, Name: "Ford"},
			NumberOfDoors: 5,
			FuelType:      "Electric",
			ModelYear:     2025,
			ExternalColor: "blue",
		},
		Location:   model.Location{Lat: lat, Lon: lon, Address: "ignored"},
		Price:      &model.Money{Currency: "USD"},
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

func TestCarsCRUD(t *testing.T) {
	ctx := context.Background()
	pool := sqlitedb.New(t, migrationuc.ComponentVehicles)
	r := carsrp.New()

	err := pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := r.Conn(c)
		first, err := q.Save(ctx, newCar("Focus", 40, -74))
		require.NoError(t, err)
		require.NotNil(t, first.ID)
		assert.Nil(t, first.Price, "price is not persisted")
		assert.Empty(t, first.Location.Address)
		second, err := q.Save(ctx, newCar("Fiesta", 41.5, -73.25))
		require.NoError(t, err)
		assert.Greater(t, *second.ID, *first.ID)

		found, err := q.Find(ctx, *first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Focus", found.Details.Model)
		assert.Equal(t, model.Manufacturer{Code: 102, Name: "Ford"}, found.Details.Manufacturer)
		assert.Equal(t, model.Location{Lat: 40, Lon: -74}, found.Location)
		assert.Equal(t, model.ConditionNew, found.Condition)
		assert.True(t, first.CreatedAt.Equal(found.CreatedAt))

		upd := newCar("Mustang", 10, 20)
		upd.ID = first.ID
		upd.Condition = model.ConditionUsed
		upd.CreatedAt = time.Time{}
		upd.ModifiedAt = first.ModifiedAt.Add(time.Hour)
		saved, err := q.Save(ctx, upd)
		require.NoError(t, err)
		assert.Equal(t, *first.ID, *saved.ID)
		assert.Equal(t, "Mustang", saved.Details.Model)
		assert.Equal(t, model.ConditionUsed, saved.Condition)
		assert.True(t, first.CreatedAt.Equal(saved.CreatedAt), "created_at is kept")
		assert.True(t, upd.ModifiedAt.Equal(saved.ModifiedAt))

		cars, err := q.List(ctx)
		require.NoError(t, err)
		require.Len(t, cars, 2)
		assert.Equal(t, *first.ID, *cars[0].ID)
		assert.Equal(t, "Fiesta", cars[1].Details.Model)

		require.NoError(t, q.Delete(ctx, *first.ID))
		_, err = q.Find(ctx, *first.ID)
		assert.True(t, cerr.IsNotFound(err), "err=%v", err)
		err = q.Delete(ctx, *first.ID)
		assert.True(t, cerr.IsNotFound(err), "err=%v", err)

		missing := newCar("Ka", 1, 1)
		missingID := int64(1000)
		missing.ID = &missingID
		_, err = q.Save(ctx, missing)
		assert.True(t, cerr.IsNotFound(err), "err=%v", err)
		cars, err = q.List(ctx)
		require.NoError(t, err)
		assert.Len(t, cars, 1)
		return nil
	})
	require.NoError(t, err)
}

func TestCarsTxRollback(t *testing.T) {
	ctx := context.Background()
	pool := sqlitedb.New(t, migrationuc.ComponentVehicles)
	r := carsrp.New()

	err := pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		err := c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			_, err := r.Tx(tx).Save(ctx, newCar("Focus", 1, 2))
			require.NoError(t, err)
			return cerr.BadRequest(assert.AnError)
		})
		assert.ErrorIs(t, err, assert.AnError)
		cars, err := r.Conn(c).List(ctx)
		require.NoError(t, err)
		assert.Empty(t, cars)
		return nil
	})
	require.NoError(t, err)
}
