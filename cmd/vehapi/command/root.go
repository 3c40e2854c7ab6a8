// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the vehapi
// project. Commands are organized using the cobra library.
// The "serve" sub-command starts one of the services and the "db"
// sub-command can be used for the database management actions.
//
//	./vehapi serve vehicles [-c /path/of/config.yaml]
//	./vehapi serve pricing [-c /path/of/config.yaml]
//	./vehapi serve maps [-c /path/of/config.yaml]
//	./vehapi db init-dev vehicles|pricing [-c /path/of/config.yaml]
//	./vehapi db init-prod vehicles|pricing [-c /path/of/config.yaml]
//	./vehapi db create-role [-c /path/of/config.yaml]
package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/momeni/vehicles-api/pkg/adapter/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "vehapi",
	Short: "Vehicles and pricing REST services",
	Long: `Vehicles and pricing REST services.
The vehicles service keeps a catalog of cars and reports each car along
with its current address (from a maps service) and its current price
(from the pricing service). The pricing service keeps the prices of
vehicles. A mock maps service is provided for development.
Each service is started by its own "serve" sub-command and the "db"
sub-commands create the database role and schema of each service.`,
	SilenceUsage: true,
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. A failed command
// exits the process with a non-zero exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/vehicles.yaml"
	}
}

// loadConfig loads the cfgPath config file and installs the default
// slog logger as configured by its logging section.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	if _, err = c.Logging.Setup(os.Stderr); err != nil {
		return nil, fmt.Errorf("setting up the logger: %w", err)
	}
	return c, nil
}
