// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrp provides a reification of the repo.Cars interface,
// persisting cars in the cars table using GORM.
package carsrp

import (
	"context"

	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

// Repo represents the cars repository.
type Repo struct {
}

// New instantiates a cars Repo.
func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

// Conn unwraps the given repo.Conn instance, expecting to find an
// instance of *postgres.Conn as created by this adapter layer.
// Otherwise, it will panic.
func (cars *Repo) Conn(c repo.Conn) repo.CarsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Save(ctx context.Context, car *model.Car) (*model.Car, error) {
	return Save(ctx, cq.Conn, car)
}

func (cq connQueryer) Find(ctx context.Context, id int64) (*model.Car, error) {
	return Find(ctx, cq.Conn, id)
}

func (cq connQueryer) List(ctx context.Context) ([]*model.Car, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, cq.Conn, id)
}

type txQueryer struct {
	*postgres.Tx
}

// Tx unwraps the given repo.Tx instance, expecting to find an
// instance of *postgres.Tx as created by this adapter layer.
func (cars *Repo) Tx(tx repo.Tx) repo.CarsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Save(ctx context.Context, car *model.Car) (*model.Car, error) {
	return Save(ctx, tq.Tx, car)
}

func (tq txQueryer) Find(ctx context.Context, id int64) (*model.Car, error) {
	return Find(ctx, tq.Tx, id)
}

func (tq txQueryer) List(ctx context.Context) ([]*model.Car, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Delete(ctx context.Context, id int64) error {
	return Delete(ctx, tq.Tx, id)
}
