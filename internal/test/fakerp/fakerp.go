// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fakerp is an internal helper for the use cases test packages.
// It provides in-memory implementations of the repo.Pool, repo.Cars,
// and repo.Prices interfaces, so use cases may be tested without a
// database. Stored entities are copied in and out, so callers cannot
// alter the stored state by mutating the returned models.
package fakerp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

// ErrRawSQL is returned by the fake Exec and Query methods.
var ErrRawSQL = errors.New("raw sql is not supported by fake connections")

// Pool is a fake connection pool which passes a fake connection to
// its handlers. It counts the acquired connections and transactions.
type Pool struct {
	mu    sync.Mutex
	Conns int
	Txs   int
}

func (p *Pool) Conn(ctx context.Context, handler repo.ConnHandler) error {
	p.mu.Lock()
	p.Conns++
	p.mu.Unlock()
	return handler(ctx, &conn{pool: p})
}

func (p *Pool) Close() error {
	return nil
}

type queryer struct{}

func (queryer) Exec(context.Context, string, ...any) (int64, error) {
	return 0, ErrRawSQL
}

func (queryer) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, ErrRawSQL
}

type conn struct {
	queryer
	pool *Pool
}

func (c *conn) Tx(ctx context.Context, handler repo.TxHandler) error {
	c.pool.mu.Lock()
	c.pool.Txs++
	c.pool.mu.Unlock()
	return handler(ctx, tx{})
}

func (c *conn) IsConn() {
}

type tx struct {
	queryer
}

func (tx) IsTx() {
}

// Cars is an in-memory cars repository. Its zero value is ready to
// be used. IDs are assigned sequentially, starting from one.
type Cars struct {
	mu     sync.Mutex
	cars   map[int64]model.Car
	lastID int64
}

func (cr *Cars) Conn(repo.Conn) repo.CarsConnQueryer {
	return cr
}

func (cr *Cars) Tx(repo.Tx) repo.CarsTxQueryer {
	return cr
}

// Put stores a copy of car with its ID, bypassing the Save logic,
// so test cases can prepare the initial state.
func (cr *Cars) Put(car model.Car) {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	if cr.cars == nil {
		cr.cars = make(map[int64]model.Car)
	}
	id := *car.ID
	car.ID = &id
	cr.cars[id] = car
	if id > cr.lastID {
		cr.lastID = id
	}
}

// Len returns the number of stored cars.
func (cr *Cars) Len() int {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	return len(cr.cars)
}

// Get returns a copy of the id car and reports if it was found.
func (cr *Cars) Get(id int64) (model.Car, bool) {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	car, ok := cr.cars[id]
	return car, ok
}

func (cr *Cars) Save(_ context.Context, car *model.Car) (*model.Car, error) {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	if cr.cars == nil {
		cr.cars = make(map[int64]model.Car)
	}
	c := *car
	c.Price = nil
	if c.ID == nil {
		cr.lastID++
		id := cr.lastID
		c.ID = &id
	} else {
		id := *c.ID
		if _, ok := cr.cars[id]; !ok {
			return nil, cerr.NotFound(fmt.Errorf("car %d", id))
		}
		c.ID = &id
	}
	cr.cars[*c.ID] = c
	return &c, nil
}

func (cr *Cars) Find(_ context.Context, id int64) (*model.Car, error) {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	c, ok := cr.cars[id]
	if !ok {
		return nil, cerr.NotFound(fmt.Errorf("car %d", id))
	}
	return &c, nil
}

func (cr *Cars) List(context.Context) ([]*model.Car, error) {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	cc := make([]*model.Car, 0, len(cr.cars))
	for _, c := range cr.cars {
		c := c
		cc = append(cc, &c)
	}
	sort.Slice(cc, func(i, j int) bool {
		return *cc[i].ID < *cc[j].ID
	})
	return cc, nil
}

func (cr *Cars) Delete(_ context.Context, id int64) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	if _, ok := cr.cars[id]; !ok {
		return cerr.NotFound(fmt.Errorf("car %d", id))
	}
	delete(cr.cars, id)
	return nil
}

// Prices is an in-memory prices repository. Its zero value is ready
// to be used. Similar to the real repository, it rejects two prices
// for the same vehicle with a cerr.Conflict error.
type Prices struct {
	mu     sync.Mutex
	prices map[int64]model.Price
	lastID int64
}

func (pr *Prices) Conn(repo.Conn) repo.PricesConnQueryer {
	return pr
}

func (pr *Prices) Tx(repo.Tx) repo.PricesTxQueryer {
	return pr
}

// Len returns the number of stored prices.
func (pr *Prices) Len() int {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return len(pr.prices)
}

func (pr *Prices) Save(_ context.Context, p *model.Price) (*model.Price, error) {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	if pr.prices == nil {
		pr.prices = make(map[int64]model.Price)
	}
	for id, other := range pr.prices {
		if id != p.ID && other.VehicleID == p.VehicleID {
			return nil, cerr.Conflict(fmt.Errorf(
				"vehicle %d is already priced", p.VehicleID,
			))
		}
	}
	c := *p
	if c.ID == 0 {
		pr.lastID++
		c.ID = pr.lastID
	} else if _, ok := pr.prices[c.ID]; !ok {
		return nil, cerr.NotFound(fmt.Errorf("price %d", c.ID))
	}
	pr.prices[c.ID] = c
	return &c, nil
}

func (pr *Prices) Find(_ context.Context, id int64) (*model.Price, error) {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	p, ok := pr.prices[id]
	if !ok {
		return nil, cerr.NotFound(fmt.Errorf("price %d", id))
	}
	return &p, nil
}

func (pr *Prices) FindByVehicle(_ context.Context, vehicleID int64) (*model.Price, error) {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	for _, p := range pr.prices {
		if p.VehicleID == vehicleID {
			return &p, nil
		}
	}
	return nil, cerr.NotFound(fmt.Errorf("price of vehicle %d", vehicleID))
}

func (pr *Prices) List(context.Context) ([]*model.Price, error) {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	pp := make([]*model.Price, 0, len(pr.prices))
	for _, p := range pr.prices {
		p := p
		pp = append(pp, &p)
	}
	sort.Slice(pp, func(i, j int) bool {
		return pp[i].ID < pp[j].ID
	})
	return pp, nil
}

func (pr *Prices) Delete(_ context.Context, id int64) error {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	if _, ok := pr.prices[id]; !ok {
		return cerr.NotFound(fmt.Errorf("price %d", id))
	}
	delete(pr.prices, id)
	return nil
}
