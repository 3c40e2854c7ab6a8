// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scram exports the expected interface for computing Salted
// Challenge Response Authentication Mechanism (SCRAM) password hashes.
// For the corresponding implementation, check the adapter layer.
//
// The services never authenticate clients by SCRAM. It is only needed
// to produce a standard hash string (having a password, salt, and
// iteration count) which can be passed to a PostgreSQL server while
// creating the unprivileged database role, so plaintext passwords are
// not sent in the DDL statements (and cannot leak into the DBMS logs).
package scram

// Hasher computes SCRAM hash strings for a specific underlying hash
// function (e.g., SHA256).
type Hasher interface {
	// Hash computes a hash string for the pass password, following
	// the standard scram hash format as accepted by PostgreSQL:
	//
	//	SCRAM-{SHA-X}${iters}:{b64-salt}${b64-storedKey}:{b64-serverKey}
	//
	// The pass must be non-empty and is normalized by the SASLprep
	// profile. The salt must contain a base64 encoding of the desired
	// salt bytes, or be empty so a random salt is generated.
	// The iters must be at least 4096.
	Hash(pass, salt string, iters int) (string, error)
}
