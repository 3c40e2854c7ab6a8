// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/momeni/vehicles-api/pkg/core/usecase/migrationuc"
)

const credsRenewalMessage = `
The database connection uses the admin role for migrations and the
normal role for the development data. Passwords are read from the
.pgpass file of the database.pass-dir folder (or the database.url and
DATABASE_URL settings are used as-is). The create-role sub-command
creates the normal role and renews its password.`

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For fresh installation in a development or production environment,
the init-dev or init-prod may be used. Both of them apply the pending
migrations of the vehicles or pricing component, so they may be used
for upgrading an existing installation too.`,
}

// componentArg validates that exactly one known component name is
// passed as the positional argument.
func componentArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	switch args[0] {
	case migrationuc.ComponentVehicles, migrationuc.ComponentPricing:
		return nil
	default:
		return fmt.Errorf(
			"component must be %s or %s, not %q",
			migrationuc.ComponentVehicles,
			migrationuc.ComponentPricing,
			args[0],
		)
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
