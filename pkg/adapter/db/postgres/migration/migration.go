// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migration provides the reification of the
// repo.SchemaInitializer interface for the vehicles and pricing
// components. Each component has its own series of goose SQL migration
// files (per supported dialect) which are embedded in the binary and
// its own version table, so both components may share one database
// or use distinct databases.
package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand/v2"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"

	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/core/log"
	"github.com/momeni/vehicles-api/pkg/core/usecase/migrationuc"
	"github.com/momeni/vehicles-api/pkg/core/usecase/pricesuc"
)

//go:embed sql
var sqlFiles embed.FS

// Initializer applies the schema migrations of one component and may
// fill its tables with the development suitable data.
type Initializer struct {
	pool      *postgres.Pool
	component string

	seedCount int
	currency  string
	rnd       *rand.Rand
}

// Option is a functional option for the Initializer.
type Option func(i *Initializer) error

// WithPriceSeed option configures the number of vehicles which are
// priced by the pricing dev data (starting from vehicle 1) and their
// currency. By default, 20 vehicles are priced in USD.
func WithPriceSeed(count int, currency string) Option {
	return func(i *Initializer) error {
		if count < 0 {
			return fmt.Errorf("seed count (%d) is negative", count)
		}
		c, err := pricesuc.NormalizeCurrency(currency)
		if err != nil {
			return err
		}
		i.seedCount, i.currency = count, c
		return nil
	}
}

// WithRand option configures the random source of the generated
// dev prices, so they may be reproduced.
func WithRand(rnd *rand.Rand) Option {
	return func(i *Initializer) error {
		i.rnd = rnd
		return nil
	}
}

// New instantiates an Initializer for the given component, wrapping the
// p connection pool. The dialect of p selects the SQL files.
func New(p *postgres.Pool, component string, opts ...Option) (*Initializer, error) {
	switch component {
	case migrationuc.ComponentVehicles, migrationuc.ComponentPricing:
	default:
		return nil, fmt.Errorf("unknown component %q", component)
	}
	i := &Initializer{
		pool:      p,
		component: component,
		seedCount: 20,
		currency:  "USD",
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if i.rnd == nil {
		i.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return i, nil
}

// Migrate applies the pending migrations of the component.
func (i *Initializer) Migrate(ctx context.Context) error {
	p, err := i.provider()
	if err != nil {
		return err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		log.Info(ctx, "migration is applied",
			log.Component(i.component),
			log.Valuer("migration", resultValuer{r}),
		)
	}
	return nil
}

// Version returns the latest applied migration version of the
// component, or zero if no migration is applied yet.
func (i *Initializer) Version(ctx context.Context) (int64, error) {
	p, err := i.provider()
	if err != nil {
		return 0, err
	}
	v, err := p.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose version: %w", err)
	}
	return v, nil
}

func (i *Initializer) provider() (*goose.Provider, error) {
	var dialect database.Dialect
	switch d := i.pool.Dialect(); d {
	case postgres.DialectPostgres:
		dialect = database.DialectPostgres
	case postgres.DialectSQLite:
		dialect = database.DialectSQLite3
	default:
		return nil, fmt.Errorf("unsupported dialect %q", d)
	}
	fsys, err := fs.Sub(sqlFiles, "sql/"+i.pool.Dialect()+"/"+i.component)
	if err != nil {
		return nil, fmt.Errorf("sub-dir of %s migrations: %w", i.component, err)
	}
	store, err := database.NewStore(dialect, "goose_"+i.component+"_version")
	if err != nil {
		return nil, fmt.Errorf("creating goose store: %w", err)
	}
	db, err := i.pool.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("obtaining *sql.DB: %w", err)
	}
	p, err := goose.NewProvider("", db, fsys,
		goose.WithStore(store),
		goose.WithDisableGlobalRegistry(true),
	)
	if err != nil {
		return nil, fmt.Errorf("creating goose provider: %w", err)
	}
	return p, nil
}

type resultValuer struct {
	r *goose.MigrationResult
}

func (rv resultValuer) LogValue() slog.Value {
	return slog.StringValue(rv.r.String())
}
