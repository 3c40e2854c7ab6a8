// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsuc contains the cars UseCase which supports the
// vehicles service use cases. Cars are stored by the cars repository,
// while their addresses and prices are not persisted. Instead, each car
// which is read by the List or Find use cases is enriched by asking the
// maps and pricing services (see the repo.MapsClient and
// repo.PriceClient interfaces) for its latest address and price.
// The Save and Delete use cases only deal with the cars repository.
package carsuc

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/log"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

// UseCase represents a cars use case. It holds a database connection
// pool, the cars repository instance (to be guided with the DB pool),
// the collaborator clients, and the cars use case specific settings.
type UseCase struct {
	pool   repo.Pool
	carsrp repo.Cars
	prices repo.PriceClient
	maps   repo.MapsClient

	clock   clockwork.Clock
	workers int
}

// New instantiates a cars use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	p repo.Pool,
	c repo.Cars,
	prices repo.PriceClient,
	maps repo.MapsClient,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{pool: p, carsrp: c, prices: prices, maps: maps}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.clock == nil {
		uc.clock = clockwork.NewRealClock()
	}
	if uc.workers == 0 {
		uc.workers = 1
	}
	return uc, nil
}

// List use case fetches all cars and enriches each one of them by its
// current address and price. If any collaborator fails, the whole
// listing fails and no partial result is returned.
func (cars *UseCase) List(ctx context.Context) ([]*model.Car, error) {
	var cc []*model.Car
	err := cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) (err error) {
		cc, err = cars.carsrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err = cars.enrichAll(ctx, cc); err != nil {
		return nil, err
	}
	return cc, nil
}

// Find use case fetches the id car and enriches it by its current
// address and price. A missing car is reported by a cerr.NotFound
// classified error.
func (cars *UseCase) Find(ctx context.Context, id int64) (*model.Car, error) {
	var car *model.Car
	err := cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) (err error) {
		car, err = cars.carsrp.Conn(c).Find(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err = cars.enrich(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// Save use case creates or updates a car.
// A car without ID is inserted as is and the repository assigns its
// ID. Otherwise, the stored car with the same ID is looked up and its
// details, location, and condition are replaced by the car fields
// while its other fields are kept. Updating a missing car fails with
// a cerr.NotFound error and creates nothing.
// The persisted car is returned without enrichment.
func (cars *UseCase) Save(ctx context.Context, car *model.Car) (*model.Car, error) {
	if err := car.Condition.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	now := cars.clock.Now()
	var saved *model.Car
	err := cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		if !car.HasID() {
			car.CreatedAt, car.ModifiedAt = now, now
			var err error
			saved, err = cars.carsrp.Conn(c).Save(ctx, car)
			return err
		}
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := cars.carsrp.Tx(tx)
			stored, err := q.Find(ctx, *car.ID)
			if err != nil {
				return err
			}
			stored.Details = car.Details
			stored.Location = car.Location
			stored.Condition = car.Condition
			stored.ModifiedAt = now
			saved, err = q.Save(ctx, stored)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "car is saved", log.CarID(saved.ID))
	return saved, nil
}

// Delete use case removes the id car. A missing car is reported by
// a cerr.NotFound error, leaving the repository unchanged.
func (cars *UseCase) Delete(ctx context.Context, id int64) error {
	err := cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := cars.carsrp.Tx(tx)
			if _, err := q.Find(ctx, id); err != nil {
				return err
			}
			return q.Delete(ctx, id)
		})
	})
	if err != nil {
		return err
	}
	log.Info(ctx, "car is deleted", log.CarID(&id))
	return nil
}

// enrichAll enriches cc cars, either one by one or using at most
// cars.workers concurrent goroutines. In both cases, the first error
// is returned and remaining cars are not enriched.
func (cars *UseCase) enrichAll(ctx context.Context, cc []*model.Car) error {
	if cars.workers <= 1 {
		for _, car := range cc {
			if err := cars.enrich(ctx, car); err != nil {
				return err
			}
		}
		return nil
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cars.workers)
	for _, car := range cc {
		g.Go(func() error {
			return cars.enrich(ctx, car)
		})
	}
	return g.Wait()
}

// enrich fills the address fields of car location from the maps
// service (keeping its coordinates) and sets its price as reported by
// the pricing service. The car is mutated in place, so a failure in
// the second step may leave it partially enriched.
func (cars *UseCase) enrich(ctx context.Context, car *model.Car) error {
	addr, err := cars.maps.Address(ctx, car.Location)
	if err != nil {
		log.Warn(ctx, "cannot resolve car address",
			log.CarID(car.ID), log.Err("err", err),
		)
		return fmt.Errorf("resolving address of car %d: %w", *car.ID, err)
	}
	car.Location.CopyAddress(addr)
	price, err := cars.prices.Price(ctx, *car.ID)
	if err != nil {
		log.Warn(ctx, "cannot fetch car price",
			log.CarID(car.ID), log.Err("err", err),
		)
		return fmt.Errorf("fetching price of car %d: %w", *car.ID, err)
	}
	car.Price = price
	log.Debug(ctx, "car is enriched",
		log.CarID(car.ID), log.Money("price", price),
	)
	return nil
}
