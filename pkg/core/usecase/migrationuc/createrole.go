// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package migrationuc

import (
	"context"
	"fmt"

	"github.com/momeni/vehicles-api/pkg/core/log"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

// CreateRoleUseCase represents the normal role creation use case.
type CreateRoleUseCase struct {
	settings   Settings
	schemaRepo repo.Schema
}

// NewCreateRole creates a CreateRoleUseCase instance, using the `s`
// settings in order to connect to the target database as admin.
func NewCreateRole(s Settings) *CreateRoleUseCase {
	return &CreateRoleUseCase{settings: s, schemaRepo: s.NewSchemaRepo()}
}

// CreateRole creates the normal role (if it does not exist) and sets
// a new random password for it. These operations are performed using
// the admin role in a single transaction and the new password is moved
// to the main pass file only after that transaction is committed.
// If the process crashes in between, the temporary pass file keeps the
// new password and may be used by the next ConnectionPool call.
func (cruc *CreateRoleUseCase) CreateRole(ctx context.Context) error {
	p, err := cruc.settings.ConnectionPool(ctx, repo.AdminRole)
	if err != nil {
		return fmt.Errorf("creating DB pool for admin: %w", err)
	}
	defer p.Close()
	var finalizer func() error
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := cruc.schemaRepo.Tx(tx)
			if err := q.CreateRoleIfNotExists(
				ctx, repo.NormalRole,
			); err != nil {
				return fmt.Errorf("creating normal role: %w", err)
			}
			finalizer, err = cruc.settings.RenewPasswords(
				ctx, q.ChangePasswords, repo.NormalRole,
			)
			if err != nil {
				return fmt.Errorf("RenewPasswords: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("admin connection: %w", err)
	}
	if err := finalizer(); err != nil {
		return fmt.Errorf("finalizing passwords renewal: %w", err)
	}
	log.Info(ctx, "normal role is ready")
	return nil
}
