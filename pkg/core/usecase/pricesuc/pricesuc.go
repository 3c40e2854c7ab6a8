// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package pricesuc contains the prices UseCase which supports the
// pricing service use cases, namely the CRUD operations over stored
// prices and finding the price of a vehicle by its identifier.
package pricesuc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/log"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

// These errors are returned (classified as cerr.BadRequest) when
// a price which is passed to the Save use case is malformed.
var (
	ErrNegativeAmount   = errors.New("price amount is negative")
	ErrAmountPrecision  = errors.New("price amount has more than two fractional digits")
	ErrInvalidCurrency  = errors.New("currency is not a 3-letter code")
	ErrInvalidVehicleID = errors.New("vehicle id is not positive")
)

// UseCase represents a prices use case. It holds a database connection
// pool, the prices repository instance, and the prices use case
// specific settings.
type UseCase struct {
	pool     repo.Pool
	pricesrp repo.Prices

	defaultCurrency string
}

// New instantiates a prices use case.
// Optional parameters are passed as a series of functional options.
func New(p repo.Pool, r repo.Prices, opts ...Option) (*UseCase, error) {
	uc := &UseCase{pool: p, pricesrp: r}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.defaultCurrency == "" {
		uc.defaultCurrency = "USD"
	}
	return uc, nil
}

// DefaultCurrency returns the currency which is used for prices which
// are saved without a currency.
func (prices *UseCase) DefaultCurrency() string {
	return prices.defaultCurrency
}

// List use case fetches all prices, ordered by their IDs.
func (prices *UseCase) List(ctx context.Context) (pp []*model.Price, err error) {
	err = prices.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		pp, err = prices.pricesrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		pp = nil
	}
	return
}

// Find use case fetches the id price. A missing price is reported by
// a cerr.NotFound classified error.
func (prices *UseCase) Find(ctx context.Context, id int64) (p *model.Price, err error) {
	err = prices.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		p, err = prices.pricesrp.Conn(c).Find(ctx, id)
		return err
	})
	if err != nil {
		p = nil
	}
	return
}

// FindByVehicle use case fetches the price of the vehicleID vehicle.
// It backs the price lookups of the vehicles service.
func (prices *UseCase) FindByVehicle(ctx context.Context, vehicleID int64) (p *model.Price, err error) {
	if vehicleID <= 0 {
		return nil, cerr.BadRequest(ErrInvalidVehicleID)
	}
	err = prices.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		p, err = prices.pricesrp.Conn(c).FindByVehicle(ctx, vehicleID)
		return err
	})
	if err != nil {
		p = nil
	}
	return
}

// Save use case creates p if its ID is zero, or updates the stored
// price having the same ID. Updating a missing price fails with
// a cerr.NotFound error. The currency is upper-cased and defaults to
// the configured currency when it is empty.
// Pricing a vehicle which has another price fails with a cerr.Conflict
// error.
func (prices *UseCase) Save(ctx context.Context, p *model.Price) (*model.Price, error) {
	if err := prices.normalize(p); err != nil {
		return nil, cerr.BadRequest(err)
	}
	var saved *model.Price
	err := prices.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		if p.ID == 0 {
			var err error
			saved, err = prices.pricesrp.Conn(c).Save(ctx, p)
			return err
		}
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := prices.pricesrp.Tx(tx)
			if _, err := q.Find(ctx, p.ID); err != nil {
				return err
			}
			var err error
			saved, err = q.Save(ctx, p)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "price is saved",
		log.VehicleID(saved.VehicleID), log.Money("price", saved.Money()),
	)
	return saved, nil
}

// Delete use case removes the id price. A missing price is reported
// by a cerr.NotFound error.
func (prices *UseCase) Delete(ctx context.Context, id int64) error {
	return prices.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := prices.pricesrp.Tx(tx)
			if _, err := q.Find(ctx, id); err != nil {
				return err
			}
			return q.Delete(ctx, id)
		})
	})
}

func (prices *UseCase) normalize(p *model.Price) error {
	if p.VehicleID <= 0 {
		return ErrInvalidVehicleID
	}
	if p.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	// amounts are stored as NUMERIC(14, 2) by postgres
	if !p.Amount.Equal(p.Amount.Truncate(2)) {
		return fmt.Errorf("%s: %w", p.Amount, ErrAmountPrecision)
	}
	if p.Currency == "" {
		p.Currency = prices.defaultCurrency
		return nil
	}
	c, err := NormalizeCurrency(p.Currency)
	if err != nil {
		return err
	}
	p.Currency = c
	return nil
}

// NormalizeCurrency upper-cases the c currency code and verifies that
// it consists of exactly three ASCII letters, like an ISO-4217 code.
func NormalizeCurrency(c string) (string, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if len(c) != 3 {
		return "", fmt.Errorf("%q: %w", c, ErrInvalidCurrency)
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%q: %w", c, ErrInvalidCurrency)
		}
	}
	return c, nil
}
