// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsrp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/model"
)

// gCar is the GORM representation of a cars table row.
// The details and manufacturer value objects are flattened into their
// own columns, while only the coordinates of a location are persisted.
type gCar struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Condition int16

	Body             string
	Model            string
	ManufacturerCode int
	ManufacturerName string
	NumberOfDoors    int
	FuelType         string
	Engine           string
	Mileage          int
	ModelYear        int
	ProductionYear   int
	ExternalColor    string

	Lat float64
	Lon float64

	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
	ModifiedAt time.Time
}

func (gc *gCar) TableName() string {
	return "cars"
}

func fromModel(c *model.Car) *gCar {
	d := c.Details
	gc := &gCar{
		Condition:        int16(c.Condition),
		Body:             d.Body,
		Model:            d.Model,
		ManufacturerCode: d.Manufacturer.Code,
		ManufacturerName: d.Manufacturer.Name,
		NumberOfDoors:    d.NumberOfDoors,
		FuelType:         d.FuelType,
		Engine:           d.Engine,
		Mileage:          d.Mileage,
		ModelYear:        d.ModelYear,
		ProductionYear:   d.ProductionYear,
		ExternalColor:    d.ExternalColor,
		Lat:              c.Location.Lat,
		Lon:              c.Location.Lon,
		CreatedAt:        c.CreatedAt,
		ModifiedAt:       c.ModifiedAt,
	}
	if c.ID != nil {
		gc.ID = *c.ID
	}
	return gc
}

func (gc *gCar) toModel() *model.Car {
	id := gc.ID
	return &model.Car{
		ID:        &id,
		Condition: model.Condition(gc.Condition),
		Details: model.Details{
			Body:  gc.Body,
			Model: gc.Model,
			Manufacturer: model.Manufacturer{
				Code: gc.ManufacturerCode,
				Name: gc.ManufacturerName,
			},
			NumberOfDoors:  gc.NumberOfDoors,
			FuelType:       gc.FuelType,
			Engine:         gc.Engine,
			Mileage:        gc.Mileage,
			ModelYear:      gc.ModelYear,
			ProductionYear: gc.ProductionYear,
			ExternalColor:  gc.ExternalColor,
		},
		Location: model.Location{Lat: gc.Lat, Lon: gc.Lon},
		// stored timestamps are reported in UTC, regardless of the
		// session time zone of the database connection
		CreatedAt:  gc.CreatedAt.UTC(),
		ModifiedAt: gc.ModifiedAt.UTC(),
	}
}

// Save inserts car if its ID is nil or updates all columns of the
// stored car with the same ID otherwise. Updating a missing car
// returns a cerr.NotFound error. The persisted car is returned.
func Save[Q postgres.Queryer](ctx context.Context, q Q, car *model.Car) (*model.Car, error) {
	gc := fromModel(car)
	gdb := q.GORM(ctx)
	if car.ID == nil {
		if err := gdb.Create(gc).Error; err != nil {
			return nil, postgres.MapError("carsrp.Save", err)
		}
		return gc.toModel(), nil
	}
	res := gdb.Model(&gCar{}).Select("*").Omit("id", "created_at").Where(
		"id = ?", gc.ID,
	).Updates(gc)
	if err := res.Error; err != nil {
		return nil, postgres.MapError(fmt.Sprintf("carsrp.Save(%d)", gc.ID), err)
	}
	if res.RowsAffected == 0 {
		return nil, cerr.NotFound(fmt.Errorf("car %d does not exist", gc.ID))
	}
	return Find(ctx, q, gc.ID)
}

// Find fetches the id car or returns a cerr.NotFound error.
func Find[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Car, error) {
	var gc gCar
	err := q.GORM(ctx).Where("id = ?", id).Take(&gc).Error
	if err != nil {
		return nil, postgres.MapError(fmt.Sprintf("carsrp.Find(%d)", id), err)
	}
	return gc.toModel(), nil
}

// List fetches all cars, ordered by their IDs.
func List[Q postgres.Queryer](ctx context.Context, q Q) ([]*model.Car, error) {
	var gcs []gCar
	if err := q.GORM(ctx).Order("id").Find(&gcs).Error; err != nil {
		return nil, postgres.MapError("carsrp.List", err)
	}
	cars := make([]*model.Car, 0, len(gcs))
	for i := range gcs {
		cars = append(cars, gcs[i].toModel())
	}
	return cars, nil
}

// Delete removes the id car or returns a cerr.NotFound error.
func Delete[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	res := q.GORM(ctx).Where("id = ?", id).Delete(&gCar{})
	if err := res.Error; err != nil {
		return postgres.MapError(fmt.Sprintf("carsrp.Delete(%d)", id), err)
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(errors.New("car does not exist"))
	}
	return nil
}
