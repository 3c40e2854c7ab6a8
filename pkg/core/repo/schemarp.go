// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// SchemaInitializer is exposed by the schema migration implementation
// of each component (i.e., vehicles or pricing). It wraps the relevant
// database handle since its instantiation time, so its methods do not
// need to take any argument but a context.
type SchemaInitializer interface {
	// Migrate applies all pending schema migrations of the component.
	// Migrations which are already applied are skipped, so calling
	// Migrate multiple times is safe.
	Migrate(ctx context.Context) error

	// InitDevData fills the migrated tables with the development
	// suitable sample rows, such as random prices for a range of
	// vehicle ids.
	InitDevData(ctx context.Context) error
}

// Schema interface presents expectations from a repository which allows
// database roles management, so the services may connect with their
// unprivileged role instead of the administrator role.
type Schema interface {
	// Conn takes a Conn interface instance, unwraps it as required,
	// and returns a SchemaConnQueryer interface.
	Conn(Conn) SchemaConnQueryer

	// Tx takes a Tx interface instance, unwraps it as required,
	// and returns a SchemaTxQueryer interface which can change the
	// roles passwords in that transaction.
	Tx(Tx) SchemaTxQueryer
}

// SchemaConnQueryer lists the roles management operations which may
// run over a connection with auto-committed statements.
type SchemaConnQueryer interface {
	SchemaQueryer
}

// SchemaTxQueryer lists the roles management operations which must run
// in a transaction.
type SchemaTxQueryer interface {
	SchemaQueryer

	// ChangePasswords updates the passwords of the given roles
	// in the current transaction. The roles and passwords slices must
	// have the same number of entries, so they can be used in pair.
	// Passwords are hashed before being sent to the DBMS.
	ChangePasswords(
		ctx context.Context, roles []Role, passwords []string,
	) error
}

// SchemaQueryer lists the common roles management operations.
type SchemaQueryer interface {
	// CreateRoleIfNotExists creates the `role` role with the login
	// option if it does not exist right now. No password is set.
	// The role name may be suffixed based on the queryer settings.
	CreateRoleIfNotExists(ctx context.Context, role Role) error

	// GrantPrivileges grants the CRUD privileges on all tables (and
	// usage of sequences) of the current schema to the `role` role.
	GrantPrivileges(ctx context.Context, role Role) error
}
