// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres provides the GORM based reification of the repo.Pool,
// repo.Conn, and repo.Tx interfaces. Although PostgreSQL is the main
// supported DBMS, an embedded SQLite database may be used too (see the
// NewSQLitePool function) which is suitable for the development and
// test environments. Repository packages (such as carsrp) type assert
// the repo.Conn and repo.Tx instances to *Conn and *Tx in order to
// access the GORM instance.
package postgres

// Dialect names which are reported by the Pool.Dialect method.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)
