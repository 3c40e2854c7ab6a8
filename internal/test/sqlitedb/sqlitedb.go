// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sqlitedb is an internal helper for the test packages.
// It creates an in-memory SQLite database (having a random name, so
// parallel tests do not share tables) and migrates the asked components
// schema, so repositories and REST resources may be tested without
// a PostgreSQL server.
package sqlitedb

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/migration"
)

// New creates a migrated in-memory database for the given components
// and returns its connection pool. The pool is closed (and so the
// database is dropped) when the test finishes.
func New(t *testing.T, components ...string) *postgres.Pool {
	t.Helper()
	ctx := context.Background()
	dsn := postgres.MemoryDSN(uuid.NewString())
	pool, err := postgres.NewSQLitePool(ctx, dsn)
	require.NoError(t, err, "creating sqlite pool")
	t.Cleanup(func() {
		require.NoError(t, pool.Close(), "closing sqlite pool")
	})
	for _, c := range components {
		i, err := migration.New(pool, c)
		require.NoError(t, err, "creating %s initializer", c)
		require.NoError(t, i.Migrate(ctx), "migrating %s", c)
	}
	return pool
}
