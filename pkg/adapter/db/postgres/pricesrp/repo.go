// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package pricesrp provides a reification of the repo.Prices interface,
// persisting prices in the prices table using GORM.
package pricesrp

import (
	"context"

	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

// Repo represents the prices repository.
type Repo struct {
}

// New instantiates a prices Repo.
func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

// Conn unwraps the given repo.Conn instance, expecting to find an
// instance of *postgres.Conn. Otherwise, it will panic.
func (prices *Repo) Conn(c repo.Conn) repo.PricesConnQueryer {
	return connQueryer{Conn: c.(*postgres.Conn)}
}

func (cq connQueryer) Save(ctx context.Context, p *model.Price) (*model.Price, error) {
	return Save(ctx, cq.Conn, p)
}

func (cq connQueryer) Find(ctx context.Context, id int64) (*model.Price, error) {
	return Find(ctx, cq.Conn, id)
}

func (cq connQueryer) FindByVehicle(ctx context.Context, vehicleID int64) (*model.Price, error) {
	return FindByVehicle(ctx, cq.Conn, vehicleID)
}

func (cq connQueryer) List(ctx context.Context) ([]*model.Price, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, cq.Conn, id)
}

type txQueryer struct {
	*postgres.Tx
}

// Tx unwraps the given repo.Tx instance, expecting to find an
// instance of *postgres.Tx. Otherwise, it will panic.
func (prices *Repo) Tx(tx repo.Tx) repo.PricesTxQueryer {
	return txQueryer{Tx: tx.(*postgres.Tx)}
}

func (tq txQueryer) Save(ctx context.Context, p *model.Price) (*model.Price, error) {
	return Save(ctx, tq.Tx, p)
}

func (tq txQueryer) Find(ctx context.Context, id int64) (*model.Price, error) {
	return Find(ctx, tq.Tx, id)
}

func (tq txQueryer) FindByVehicle(ctx context.Context, vehicleID int64) (*model.Price, error) {
	return FindByVehicle(ctx, tq.Tx, vehicleID)
}

func (tq txQueryer) List(ctx context.Context) ([]*model.Price, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, tq.Tx, id)
}
