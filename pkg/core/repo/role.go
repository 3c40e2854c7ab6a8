// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

// Role is a string specifying a database connection role. Each role
// has a set of granted privileges which indicates which operations
// may be performed after using it for connecting to a database.
type Role string

// These constants specify the expected database roles. The AdminRole
// must exist beforehand (i.e., must be created manually) having super
// user privileges, so it can create the NormalRole and grant it the
// required privileges (see the "db create-role" command).
// The passwords of these roles are kept in a pass file as indicated in
// the configuration file.
const (
	// AdminRole is an administrator role which is used for creation of
	// other roles and running the schema migrations.
	AdminRole Role = "admin"

	// NormalRole is an unprivileged role which is used by the services
	// for all CRUD operations.
	NormalRole Role = "vehapi"
)
