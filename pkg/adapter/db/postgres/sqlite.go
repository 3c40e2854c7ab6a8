// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
)

// NewSQLitePool creates a connection pool for the dsn SQLite database.
// An in-memory database which is shared by all connections of a pool
// may be created by a dsn like "file:name?mode=memory&cache=shared".
// SQLite serializes the writers, so the pool keeps one connection.
func NewSQLitePool(ctx context.Context, dsn string) (*Pool, error) {
	p, err := newPool(ctx, sqlite.Open(dsn))
	if err != nil {
		return nil, err
	}
	db, err := p.DB.DB()
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("obtaining *sql.DB: %w", err)
	}
	db.SetMaxOpenConns(1)
	return p, nil
}

// MemoryDSN returns a dsn for an in-memory SQLite database which is
// named by name. Pools which are created with distinct names do not
// share their tables.
func MemoryDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}
