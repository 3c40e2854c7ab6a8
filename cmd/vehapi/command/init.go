// Copyright (c) 2024-2026 Behnam Momeni
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

var initProdCmd = &cobra.Command{
	Use:   "init-prod vehicles|pricing",
	Short: "Initialize database schema of a component",
	Long: `Initialize database schema of the vehicles or pricing component
by applying its pending migrations and granting the CRUD privileges on
its tables to the normal role. The database connection information
are read from the config file.
` + credsRenewalMessage,
	Args: componentArg,
	RunE: func(_ *cobra.Command, args []string) error {
		return initDB(args[0], (*migrationuc.InitDBUseCase).InitProd)
	},
}

var initDevCmd = &cobra.Command{
	Use:   "init-dev vehicles|pricing",
	Short: "Initialize database with development suitable data",
	Long: `Initialize database schema of the vehicles or pricing component
like the init-prod sub-command and then fill it with the development
suitable data. Vehicles get a few sample cars and pricing gets random
prices for the first usecases.prices.seed-count vehicle ids.
` + credsRenewalMessage,
	Args: componentArg,
	RunE: func(_ *cobra.Command, args []string) error {
		return initDB(args[0], (*migrationuc.InitDBUseCase).InitDev)
	},
}

func initDB(
	component string,
	run func(*migrationuc.InitDBUseCase, context.Context) error,
) error {
	ctx := context.Background()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	uc, err := migrationuc.NewInitDB(c, component)
	if err != nil {
		return fmt.Errorf("creating init use case: %w", err)
	}
	if err = run(uc, ctx); err != nil {
		return fmt.Errorf("initializing %s DB: %w", component, err)
	}
	return nil
}

func init() {
	dbCmd.AddCommand(initProdCmd, initDevCmd)
}
