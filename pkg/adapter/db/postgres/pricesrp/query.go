// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package pricesrp

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/model"
)

type gPrice struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	VehicleID int64
	Currency  string
	Amount    decimal.Decimal
}

func (gp *gPrice) TableName() string {
	return "prices"
}

func (gp *gPrice) toModel() *model.Price {
	return &model.Price{
		ID:        gp.ID,
		VehicleID: gp.VehicleID,
		Currency:  gp.Currency,
		Amount:    gp.Amount,
	}
}

// Save inserts p if its ID is zero or updates the stored price with
// the same ID otherwise. Updating a missing price returns a
// cerr.NotFound error, while pricing an already priced vehicle returns
// a cerr.Conflict error.
func Save[Q postgres.Queryer](ctx context.Context, q Q, p *model.Price) (*model.Price, error) {
	gp := &gPrice{
		ID:        p.ID,
		VehicleID: p.VehicleID,
		Currency:  p.Currency,
		Amount:    p.Amount,
	}
	gdb := q.GORM(ctx)
	if gp.ID == 0 {
		if err := gdb.Create(gp).Error; err != nil {
			return nil, postgres.MapError("pricesrp.Save", err)
		}
		return gp.toModel(), nil
	}
	res := gdb.Model(&gPrice{}).Select(
		"vehicle_id", "currency", "amount",
	).Where("id = ?", gp.ID).Updates(gp)
	if err := res.Error; err != nil {
		return nil, postgres.MapError(fmt.Sprintf("pricesrp.Save(%d)", gp.ID), err)
	}
	if res.RowsAffected == 0 {
		return nil, cerr.NotFound(fmt.Errorf("price %d does not exist", gp.ID))
	}
	return gp.toModel(), nil
}

// Find fetches the id price or returns a cerr.NotFound error.
func Find[Q postgres.Queryer](ctx context.Context, q Q, id int64) (*model.Price, error) {
	var gp gPrice
	err := q.GORM(ctx).Where("id = ?", id).Take(&gp).Error
	if err != nil {
		return nil, postgres.MapError(fmt.Sprintf("pricesrp.Find(%d)", id), err)
	}
	return gp.toModel(), nil
}

// FindByVehicle fetches the price of the vehicleID vehicle or returns
// a cerr.NotFound error.
func FindByVehicle[Q postgres.Queryer](ctx context.Context, q Q, vehicleID int64) (*model.Price, error) {
	var gp gPrice
	err := q.GORM(ctx).Where("vehicle_id = ?", vehicleID).Take(&gp).Error
	if err != nil {
		return nil, postgres.MapError(
			fmt.Sprintf("pricesrp.FindByVehicle(%d)", vehicleID), err,
		)
	}
	return gp.toModel(), nil
}

// List fetches all prices, ordered by their IDs.
func List[Q postgres.Queryer](ctx context.Context, q Q) ([]*model.Price, error) {
	var gps []gPrice
	if err := q.GORM(ctx).Order("id").Find(&gps).Error; err != nil {
		return nil, postgres.MapError("pricesrp.List", err)
	}
	prices := make([]*model.Price, 0, len(gps))
	for i := range gps {
		prices = append(prices, gps[i].toModel())
	}
	return prices, nil
}

// Delete removes the id price or returns a cerr.NotFound error.
func Delete[Q postgres.Queryer](ctx context.Context, q Q, id int64) error {
	res := q.GORM(ctx).Where("id = ?", id).Delete(&gPrice{})
	if err := res.Error; err != nil {
		return postgres.MapError(fmt.Sprintf("pricesrp.Delete(%d)", id), err)
	}
	if res.RowsAffected == 0 {
		return cerr.NotFound(errors.New("price does not exist"))
	}
	return nil
}
