// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemarp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres"
	"github.com/momeni/vehicles-api/pkg/core/repo"
	"github.com/momeni/vehicles-api/pkg/core/scram"
)

// ErrNoRoles indicates that roles management is requested from
// a database (such as SQLite) which has no roles.
var ErrNoRoles = errors.New("database has no roles")

// scramIterations is the PBKDF2 iterations count of the role passwords.
// RFC 7677 recommends 15000 or more.
const scramIterations = 15000

// roleIdent returns the `role` name, suffixed by `roleSuffix`, and
// quoted as a PostgreSQL identifier.
func roleIdent(roleSuffix, role repo.Role) string {
	return pgx.Identifier{string(role + roleSuffix)}.Sanitize()
}

func isSQLite[Q postgres.Queryer](ctx context.Context, q Q) bool {
	return q.GORM(ctx).Dialector.Name() == postgres.DialectSQLite
}

// CreateRoleIfNotExists creates the `role` role with the login option
// if it does not exist right now. No password is set for the created
// role, so the ChangePasswords function should be used too.
// SQLite databases have no roles, so nothing is done for them.
func CreateRoleIfNotExists[Q postgres.Queryer](
	ctx context.Context, q Q, roleSuffix repo.Role, role repo.Role,
) error {
	if isSQLite(ctx, q) {
		return nil
	}
	var n int64
	err := q.GORM(ctx).Raw(
		"SELECT count(*) FROM pg_roles WHERE rolname = ?",
		string(role+roleSuffix),
	).Scan(&n).Error
	if err != nil {
		return fmt.Errorf("querying pg_roles: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err = q.Exec(ctx, "CREATE ROLE "+roleIdent(roleSuffix, role)+" WITH LOGIN")
	if err != nil {
		return postgres.MapError("creating role", err)
	}
	return nil
}

// GrantPrivileges grants the CRUD privileges on all tables of the
// current schema (and usage of its sequences) to the `role` role.
// SQLite databases have no roles, so nothing is done for them.
func GrantPrivileges[Q postgres.Queryer](
	ctx context.Context, q Q, roleSuffix repo.Role, role repo.Role,
) error {
	if isSQLite(ctx, q) {
		return nil
	}
	var schema string
	err := q.GORM(ctx).Raw("SELECT current_schema()").Scan(&schema).Error
	if err != nil {
		return fmt.Errorf("querying current schema: %w", err)
	}
	s := pgx.Identifier{schema}.Sanitize()
	r := roleIdent(roleSuffix, role)
	_, err = q.Exec(ctx, fmt.Sprintf(`GRANT USAGE ON SCHEMA %[1]s TO %[2]s;
GRANT SELECT, INSERT, UPDATE, DELETE ON ALL TABLES IN SCHEMA %[1]s TO %[2]s;
GRANT USAGE, SELECT ON ALL SEQUENCES IN SCHEMA %[1]s TO %[2]s`, s, r))
	if err != nil {
		return fmt.Errorf("granting privileges on %s: %w", s, err)
	}
	return nil
}

// ChangePasswords updates the passwords of the given roles in the
// current transaction. The roles and passwords slices must have the
// same number of entries, so they can be used in pair.
// The `hasher` is used for hashing of the `passwords` before sending
// them to the DBMS (so they may not leak in plaintext).
func ChangePasswords(
	ctx context.Context,
	tx *postgres.Tx,
	roleSuffix repo.Role,
	hasher scram.Hasher,
	roles []repo.Role,
	passwords []string,
) error {
	if isSQLite(ctx, tx) {
		return ErrNoRoles
	}
	if len(roles) != len(passwords) {
		return fmt.Errorf(
			"%d roles do not match %d passwords",
			len(roles), len(passwords),
		)
	}
	for i, role := range roles {
		h, err := hasher.Hash(passwords[i], "", scramIterations)
		if err != nil {
			return fmt.Errorf("hashing password of %q: %w", role, err)
		}
		// hash strings consist of base64 letters and the $:= signs,
		// so they may be embedded in a string literal safely
		_, err = tx.Exec(ctx, fmt.Sprintf(
			"ALTER ROLE %s WITH PASSWORD '%s'",
			roleIdent(roleSuffix, role), h,
		))
		if err != nil {
			return fmt.Errorf("altering %q role: %w", role, err)
		}
	}
	return nil
}
