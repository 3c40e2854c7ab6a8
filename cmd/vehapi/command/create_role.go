// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/momeni/vehicles-api/pkg/core/usecase/migrationuc"
)

var createRoleCmd = &cobra.Command{
	Use:   "create-role",
	Short: "Create the normal database role with a fresh password",
	Long: `Create the normal database role (if it does not exist) using the
admin role and set a new random password for it. The new password is
written into the .pgpass.new file before being changed in the database
and replaces the .pgpass file after the transaction is committed.
It fails for SQLite and URL based database settings.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		uc := migrationuc.NewCreateRole(c)
		if err = uc.CreateRole(context.Background()); err != nil {
			return fmt.Errorf("creating normal role: %w", err)
		}
		return nil
	},
}

func init() {
	dbCmd.AddCommand(createRoleCmd)
}
