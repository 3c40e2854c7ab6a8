// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationuc

import (
	"context"
	"fmt"

	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/log"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

// InitDBUseCase represents the database initialization use case. It may
// be used to initialize database with development or production
// suitable data as asked by the InitDev and InitProd methods.
type InitDBUseCase struct {
	settings   Settings
	schemaRepo repo.Schema
	component  string
}

// NewInitDB creates an InitDBUseCase instance for the given component,
// using the `s` settings in order to connect to the target database.
// Unknown components are reported as a cerr.BadRequest error.
func NewInitDB(s Settings, component string) (*InitDBUseCase, error) {
	switch component {
	case ComponentVehicles, ComponentPricing:
	default:
		return nil, cerr.BadRequest(
			fmt.Errorf("unknown component %q", component),
		)
	}
	return &InitDBUseCase{
		settings:   s,
		schemaRepo: s.NewSchemaRepo(),
		component:  component,
	}, nil
}

// InitProd applies all pending schema migrations of the component using
// the admin role and then grants the CRUD privileges on the migrated
// tables to the normal role, so the services may use them.
// Applied migrations are skipped, so InitProd may be repeated.
func (iduc *InitDBUseCase) InitProd(ctx context.Context) error {
	p, err := iduc.settings.ConnectionPool(ctx, repo.AdminRole)
	if err != nil {
		return fmt.Errorf("creating DB pool for admin: %w", err)
	}
	defer p.Close()
	si, err := iduc.settings.SchemaInitializer(p, iduc.component)
	if err != nil {
		return fmt.Errorf("creating SchemaInitializer: %w", err)
	}
	if err := si.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating %s schema: %w", iduc.component, err)
	}
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := iduc.schemaRepo.Conn(c)
		return q.GrantPrivileges(ctx, repo.NormalRole)
	})
	if err != nil {
		return fmt.Errorf("granting normal role privs: %w", err)
	}
	log.Info(ctx, "schema is initialized",
		log.Component(iduc.component),
	)
	return nil
}

// InitDev runs the InitProd use case and then fills the component
// tables with the development suitable data, using the normal role.
func (iduc *InitDBUseCase) InitDev(ctx context.Context) error {
	if err := iduc.InitProd(ctx); err != nil {
		return err
	}
	p, err := iduc.settings.ConnectionPool(ctx, repo.NormalRole)
	if err != nil {
		return fmt.Errorf("creating DB pool for normal role: %w", err)
	}
	defer p.Close()
	si, err := iduc.settings.SchemaInitializer(p, iduc.component)
	if err != nil {
		return fmt.Errorf("creating SchemaInitializer: %w", err)
	}
	if err := si.InitDevData(ctx); err != nil {
		return fmt.Errorf("filling %s dev data: %w", iduc.component, err)
	}
	log.Info(ctx, "dev data are inserted",
		log.Component(iduc.component),
	)
	return nil
}
