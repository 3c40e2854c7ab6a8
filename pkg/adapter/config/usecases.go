// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"

	"github.com/momeni/vehicles-api/pkg/adapter/config/settings"
	"github.com/momeni/vehicles-api/pkg/core/repo"
	"github.com/momeni/vehicles-api/pkg/core/usecase/carsuc"
	"github.com/momeni/vehicles-api/pkg/core/usecase/pricesuc"
)

// Acceptable range of the cars enrichment-workers setting.
const (
	minEnrichmentWorkers = 1
	maxEnrichmentWorkers = 64
)

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Cars   Cars   // cars use cases related settings
	Prices Prices // prices use cases related settings
}

// ValidateAndNormalize validates the use cases settings and fills their
// default values.
func (u *Usecases) ValidateAndNormalize() error {
	if err := settings.VerifyRange(
		&u.Cars.EnrichmentWorkers,
		minEnrichmentWorkers, maxEnrichmentWorkers,
	); err != nil {
		return fmt.Errorf("enrichment workers: %w", err)
	}
	p := &u.Prices
	if p.DefaultCurrency == "" {
		p.DefaultCurrency = "USD"
	}
	c, err := pricesuc.NormalizeCurrency(p.DefaultCurrency)
	if err != nil {
		return fmt.Errorf("default currency: %w", err)
	}
	p.DefaultCurrency = c
	n := 20
	settings.OverwriteNil(&p.SeedCount, &n)
	if *p.SeedCount < 0 {
		return fmt.Errorf("seed count (%d) is negative", *p.SeedCount)
	}
	return nil
}

// Cars contains the configuration settings for the cars use cases.
// A nil field indicates that it is left uninitialized, so the use
// cases layer may select a default value.
type Cars struct {
	// EnrichmentWorkers is the maximum number of cars which are
	// enriched concurrently while listing cars.
	EnrichmentWorkers *int `yaml:"enrichment-workers"`
}

// NewUseCase instantiates a new cars use case based on the settings
// in the `c` struct.
func (c Cars) NewUseCase(
	p repo.Pool, r repo.Cars, prices repo.PriceClient, maps repo.MapsClient,
) (*carsuc.UseCase, error) {
	opts := make([]carsuc.Option, 0, 1)
	if c.EnrichmentWorkers != nil {
		opts = append(opts, carsuc.WithEnrichmentWorkers(*c.EnrichmentWorkers))
	}
	return carsuc.New(p, r, prices, maps, opts...)
}

// Prices contains the configuration settings for the prices use cases
// and the pricing dev data.
type Prices struct {
	// DefaultCurrency is assigned to prices which are saved without
	// a currency (default: USD).
	DefaultCurrency string `yaml:"default-currency"`

	// SeedCount is the number of vehicles (starting from vehicle 1)
	// which are priced by the pricing dev data (default: 20).
	SeedCount *int `yaml:"seed-count"`
}

// NewUseCase instantiates a new prices use case based on the settings
// in the `p` struct.
func (p Prices) NewUseCase(
	pool repo.Pool, r repo.Prices,
) (*pricesuc.UseCase, error) {
	return pricesuc.New(
		pool, r, pricesuc.WithDefaultCurrency(p.DefaultCurrency),
	)
}
