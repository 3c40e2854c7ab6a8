// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationuc_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momeni/vehicles-api/internal/test/fakerp"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/repo"
	"github.com/momeni/vehicles-api/pkg/core/usecase/migrationuc"
)

// recorder keeps the sequence of the performed operations, so the
// test cases can verify their order.
type recorder struct {
	ops []string
}

func (r *recorder) add(op string) {
	r.ops = append(r.ops, op)
}

type fakeSettings struct {
	*recorder
	migrateErr  error
	passwords   map[repo.Role]string
	finalized   bool
	initializer string
}

func (s *fakeSettings) ConnectionPool(_ context.Context, r repo.Role) (repo.Pool, error) {
	s.add("pool:" + string(r))
	return &fakerp.Pool{}, nil
}

func (s *fakeSettings) NewSchemaRepo() repo.Schema {
	return &fakeSchema{recorder: s.recorder}
}

func (s *fakeSettings) SchemaInitializer(_ repo.Pool, component string) (repo.SchemaInitializer, error) {
	s.initializer = component
	return &fakeInitializer{recorder: s.recorder, err: s.migrateErr}, nil
}

func (s *fakeSettings) RenewPasswords(
	ctx context.Context,
	change func(context.Context, []repo.Role, []string) error,
	roles ...repo.Role,
) (func() error, error) {
	passes := make([]string, len(roles))
	for i, r := range roles {
		passes[i] = "secret-" + string(r)
	}
	if err := change(ctx, roles, passes); err != nil {
		return nil, err
	}
	return func() error {
		s.add("finalize")
		s.finalized = true
		s.passwords = make(map[repo.Role]string)
		for i, r := range roles {
			s.passwords[r] = passes[i]
		}
		return nil
	}, nil
}

type fakeSchema struct {
	*recorder
	changeErr error
}

func (fs *fakeSchema) Conn(repo.Conn) repo.SchemaConnQueryer {
	return fs
}

func (fs *fakeSchema) Tx(repo.Tx) repo.SchemaTxQueryer {
	return fs
}

func (fs *fakeSchema) CreateRoleIfNotExists(_ context.Context, r repo.Role) error {
	fs.add("create-role:" + string(r))
	return nil
}

func (fs *fakeSchema) GrantPrivileges(_ context.Context, r repo.Role) error {
	fs.add("grant:" + string(r))
	return nil
}

func (fs *fakeSchema) ChangePasswords(_ context.Context, roles []repo.Role, _ []string) error {
	for _, r := range roles {
		fs.add("change-pass:" + string(r))
	}
	return fs.changeErr
}

type fakeInitializer struct {
	*recorder
	err error
}

func (fi *fakeInitializer) Migrate(context.Context) error {
	fi.add("migrate")
	return fi.err
}

func (fi *fakeInitializer) InitDevData(context.Context) error {
	fi.add("dev-data")
	return nil
}

func TestInitProd(t *testing.T) {
	s := &fakeSettings{recorder: &recorder{}}
	iduc, err := migrationuc.NewInitDB(s, migrationuc.ComponentPricing)
	require.NoError(t, err)
	require.NoError(t, iduc.InitProd(context.Background()))
	assert.Equal(t, []string{
		"pool:admin", "migrate", "grant:vehapi",
	}, s.ops)
	assert.Equal(t, migrationuc.ComponentPricing, s.initializer)
}

func TestInitDev(t *testing.T) {
	s := &fakeSettings{recorder: &recorder{}}
	iduc, err := migrationuc.NewInitDB(s, migrationuc.ComponentVehicles)
	require.NoError(t, err)
	require.NoError(t, iduc.InitDev(context.Background()))
	assert.Equal(t, []string{
		"pool:admin", "migrate", "grant:vehapi",
		"pool:vehapi", "dev-data",
	}, s.ops)
}

func TestInitDevStopsOnMigrationFailure(t *testing.T) {
	migErr := errors.New("bad migration")
	s := &fakeSettings{recorder: &recorder{}, migrateErr: migErr}
	iduc, err := migrationuc.NewInitDB(s, migrationuc.ComponentVehicles)
	require.NoError(t, err)
	err = iduc.InitDev(context.Background())
	assert.ErrorIs(t, err, migErr)
	assert.Equal(t, []string{"pool:admin", "migrate"}, s.ops)
}

func TestUnknownComponent(t *testing.T) {
	s := &fakeSettings{recorder: &recorder{}}
	_, err := migrationuc.NewInitDB(s, "billing")
	assert.True(t, cerr.HasStatus(err, http.StatusBadRequest), "err=%v", err)
}

func TestCreateRole(t *testing.T) {
	s := &fakeSettings{recorder: &recorder{}}
	cruc := migrationuc.NewCreateRole(s)
	require.NoError(t, cruc.CreateRole(context.Background()))
	assert.Equal(t, []string{
		"pool:admin", "create-role:vehapi", "change-pass:vehapi", "finalize",
	}, s.ops)
	assert.True(t, s.finalized)
	assert.Equal(t, "secret-vehapi", s.passwords[repo.NormalRole])
}
