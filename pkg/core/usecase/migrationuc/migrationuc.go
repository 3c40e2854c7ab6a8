// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package migrationuc provides the database management use cases.
// It exposes the InitDBUseCase for initializing the database schema of
// a component (i.e., vehicles or pricing) with production or development
// suitable data, and the CreateRoleUseCase for creating the normal
// database role which is used by the services.
// This package also exposes the Settings interface which represents the
// expectations of these use cases from a configuration file.
package migrationuc

import (
	"context"

	"github.com/momeni/vehicles-api/pkg/core/repo"
)

// Components which own a database schema. Each one of them is migrated
// independently, so the vehicles and pricing services may use distinct
// databases.
const (
	ComponentVehicles = "vehicles"
	ComponentPricing  = "pricing"
)

// Settings represents the database-related settings which should be
// provided by a configuration file. It allows a database connection
// pool to be established for an asked role, may be used as a factory
// for the repo.Schema and repo.SchemaInitializer, and can renew the
// passwords of database roles while keeping them in a pass file.
type Settings interface {
	// ConnectionPool creates a database connection pool for the `r`
	// role. Passwords are taken from a pass file with lines like
	//
	//	host:port:dbname:role:password
	//
	// Embedded databases which have no roles ignore the `r` argument.
	ConnectionPool(ctx context.Context, r repo.Role) (repo.Pool, error)

	// NewSchemaRepo instantiates a fresh Schema repository, having the
	// same role name suffix as this Settings instance.
	NewSchemaRepo() repo.Schema

	// SchemaInitializer instantiates a repo.SchemaInitializer for the
	// given component, wrapping the `p` connection pool.
	SchemaInitializer(p repo.Pool, component string) (
		repo.SchemaInitializer, error,
	)

	// RenewPasswords generates new secure passwords for the given roles
	// and after recording them in a temporary file, will use the change
	// function in order to update the passwords of those roles in the
	// database too. The change function may run in a transaction which
	// is committed after RenewPasswords returns, so the temporary file
	// is moved over the main pass file by the returned finalizer which
	// must be called after the commitment.
	RenewPasswords(
		ctx context.Context,
		change func(
			ctx context.Context,
			roles []repo.Role,
			passwords []string,
		) error,
		roles ...repo.Role,
	) (finalizer func() error, err error)
}
