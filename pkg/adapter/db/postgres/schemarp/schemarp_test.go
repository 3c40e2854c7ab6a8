// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package schemarp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momeni/vehicles-api/internal/test/sqlitedb"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/schemarp"
	"github.com/momeni/vehicles-api/pkg/adapter/hash/scram"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

func TestSQLiteHasNoRoles(t *testing.T) {
	ctx := context.Background()
	pool := sqlitedb.New(t)
	r := schemarp.New("_test", scram.SHA256())
	err := pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := r.Conn(c)
		require.NoError(t, q.CreateRoleIfNotExists(ctx, repo.NormalRole))
		require.NoError(t, q.GrantPrivileges(ctx, repo.NormalRole))
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return r.Tx(tx).ChangePasswords(
				ctx, []repo.Role{repo.NormalRole}, []string{"secret"},
			)
		})
	})
	assert.ErrorIs(t, err, schemarp.ErrNoRoles)
}
