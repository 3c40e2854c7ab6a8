// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// The vehapi serves the vehicles, pricing, or mock maps REST APIs and
// manages their databases. See the command package for its usage.
package main

import "github.com/momeni/vehicles-api/cmd/vehapi/command"

func main() {
	command.Execute()
}
