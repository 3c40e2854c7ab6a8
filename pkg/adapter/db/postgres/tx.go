// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"

	"github.com/momeni/vehicles-api/pkg/core/repo"
	"gorm.io/gorm"
)

// Tx represents a database transaction which is unsafe to be used
// concurrently. Tx embeds the *gorm.DB, hence, may be used like GORM
// from within the repository packages (which can depend on frameworks).
type Tx struct {
	*gorm.DB
}

// Exec runs the sql statement with args in the transaction and returns
// the number of affected rows. Placeholders may be given as ? or @name
// (as supported by GORM) in addition to the native $1, $2, etc.
func (tx *Tx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return exec(tx.DB.WithContext(ctx), sql, args...)
}

// Query runs the sql statement with args in the transaction and returns
// its result set. The Query or Exec may not be called again until the
// Rows is closed.
func (tx *Tx) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return query(tx.DB.WithContext(ctx), sql, args...)
}

// IsTx method prevents a non-Tx object (such as a Conn) to
// mistakenly implement the Tx interface.
func (tx *Tx) IsTx() {
}

// GORM returns the embedded *gorm.DB instance, configuring it
// to operate on the given ctx context (in a gorm.Session).
func (tx *Tx) GORM(ctx context.Context) *gorm.DB {
	return tx.DB.WithContext(ctx)
}
