// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the vehapi to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// The parsed and validated configurations are passed to their ultimate
// components as a series of individual params (for the mandatory items)
// and a series of functional options (for the optional items), so they
// may be validated again by the relevant end-component (such as
// a UseCase instance) which knows about their acceptable values.
package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/migration"
	"github.com/momeni/vehicles-api/pkg/adapter/observability"
	"github.com/momeni/vehicles-api/pkg/core/repo"
	"github.com/momeni/vehicles-api/pkg/core/usecase/carsuc"
	"github.com/momeni/vehicles-api/pkg/core/usecase/migrationuc"
	"github.com/momeni/vehicles-api/pkg/core/usecase/pricesuc"
)

// DatabaseURLEnv names the environment variable which overrides the
// database.url setting.
const DatabaseURLEnv = "DATABASE_URL"

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is preferred to
// implement Config with primitive fields or other structs which are
// defined locally, not models or structs which are defined in lower
// layers, so the configuration file format can be kept intact while
// other layers can change freely.
type Config struct {
	Database Database // Database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Logging  Logging  // Process-wide structured logging settings
	Clients  Clients  // Collaborator services of the vehicles service
	Usecases Usecases // Supported use cases configuration settings
}

var _ migrationuc.Settings = (*Config)(nil)

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return c, nil
}

// Parse unmarshals the data byte slice and loads a Config instance
// assuming that it contains the Config settings. Unknown items in the
// data are rejected and missing items will take their default values.
// The DATABASE_URL environment variable (if set) overrides the database
// URL. Thereafter, loaded Config will be validated and normalized in
// order to ensure that provided settings are acceptable.
func Parse(data []byte) (*Config, error) {
	n := &yaml.Node{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if l := len(n.Content); l != 1 {
		return nil, fmt.Errorf(
			"found %d children nodes, instead of 1 mapping child", l,
		)
	}
	c := &Config{}
	if err := n.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding yaml node: %w", err)
	}
	if u, ok := os.LookupEnv(DatabaseURLEnv); ok && u != "" {
		c.Database.URL = u
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values with
// their expected default values (if any).
func (c *Config) ValidateAndNormalize() error {
	if err := c.Database.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating database settings: %w", err)
	}
	c.Gin.normalize()
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("validating logging settings: %w", err)
	}
	if err := c.Clients.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating clients settings: %w", err)
	}
	if err := c.Usecases.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating use cases settings: %w", err)
	}
	return nil
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `c` settings.
func (c *Config) ConnectionPool(
	ctx context.Context, r repo.Role,
) (repo.Pool, error) {
	p, err := c.Database.ConnectionPool(ctx, r)
	if err != nil {
		return nil, fmt.Errorf(
			"%s.ConnectionPool(%s): %w", c.Database.Driver, r, err,
		)
	}
	return p, nil
}

// NewSchemaRepo instantiates a fresh Schema repository.
// Role names may be optionally suffixed based on the settings and
// in that case, repo.Role role names which are passed to the
// ConnectionPool method or RenewPasswords will be suffixed
// automatically.
func (c *Config) NewSchemaRepo() repo.Schema {
	return c.Database.NewSchemaRepo()
}

// SchemaInitializer creates a repo.SchemaInitializer instance which
// wraps the p connection pool and can be used to migrate the component
// schema and fill it with development suitable data. The pricing dev
// data follows the prices use case seed-count and default-currency.
// The p pool must be created by the ConnectionPool method.
func (c *Config) SchemaInitializer(p repo.Pool, component string) (
	repo.SchemaInitializer, error,
) {
	pp, ok := p.(*postgres.Pool)
	if !ok {
		return nil, fmt.Errorf("unsupported pool type: %T", p)
	}
	prices := c.Usecases.Prices
	return migration.New(
		pp, component,
		migration.WithPriceSeed(*prices.SeedCount, prices.DefaultCurrency),
	)
}

// RenewPasswords generates new secure passwords for the given roles
// and after recording them in the .pgpass.new file, will use the change
// function in order to update the passwords of those roles in the
// database too. The returned finalizer moves the .pgpass.new file over
// the main .pgpass file and must be called after the commitment of
// the transaction which was used by the change function.
func (c *Config) RenewPasswords(
	ctx context.Context,
	change func(
		ctx context.Context, roles []repo.Role, passwords []string,
	) error,
	roles ...repo.Role,
) (finalizer func() error, err error) {
	return c.Database.RenewPasswords(ctx, change, roles...)
}

// NewCarsUseCase instantiates a new cars use case based on the settings
// in the c struct. The pricing and maps clients are created from the
// c.Clients settings and report their metrics into m.
func (c *Config) NewCarsUseCase(
	p repo.Pool, r repo.Cars, m *observability.Metrics,
) (*carsuc.UseCase, error) {
	return c.Usecases.Cars.NewUseCase(
		p, r, c.Clients.NewPriceClient(m), c.Clients.NewMapsClient(m),
	)
}

// NewPricesUseCase instantiates a new prices use case based on the
// settings in the c struct.
func (c *Config) NewPricesUseCase(
	p repo.Pool, r repo.Prices,
) (*pricesuc.UseCase, error) {
	return c.Usecases.Prices.NewUseCase(p, r)
}
