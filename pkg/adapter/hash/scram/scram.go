// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scram implements the core scram.Hasher interface by the
// SCRAM-SHA-256 mechanism (and SCRAM-SHA-1 for older servers), relying
// on the github.com/xdg-go/scram module. Produced hash strings are
// accepted by PostgreSQL as role passwords.
package scram

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/xdg-go/scram"
)

// MinIterations is the least accepted PBKDF2 iterations count.
const MinIterations = 4096

// Mechanism provides a Salted Challenge Response Authentication
// Mechanism (SCRAM) having a fixed underlying hash algorithm.
type Mechanism struct {
	hashGenerator scram.HashGeneratorFcn
	saltLen       int // bytes
	name          string
}

// SHA1 returns a Mechanism using the SHA1 hash algorithm.
func SHA1() *Mechanism {
	return &Mechanism{
		hashGenerator: scram.SHA1,
		saltLen:       160 / 8,
		name:          "SCRAM-SHA-1",
	}
}

// SHA256 returns a Mechanism using the SHA256 hash algorithm.
func SHA256() *Mechanism {
	return &Mechanism{
		hashGenerator: scram.SHA256,
		saltLen:       256 / 8,
		name:          "SCRAM-SHA-256",
	}
}

// Name returns the mechanism name, such as SCRAM-SHA-256.
func (m *Mechanism) Name() string {
	return m.name
}

// Hash computes a hash string in the standard scram format:
//
//	SCRAM-{SHA-X}${iters}:{b64-salt}${b64-storedKey}:{b64-serverKey}
//
// An empty salt is replaced by random bytes. The pass is normalized by
// the SASLprep profile, so invalid unicode passwords are rejected.
func (m *Mechanism) Hash(pass, salt string, iters int) (string, error) {
	switch {
	case pass == "":
		return "", errors.New("password must be non-empty")
	case iters < MinIterations:
		return "", fmt.Errorf("iters (%d) is less than %d", iters, MinIterations)
	}
	if salt == "" {
		b := make([]byte, m.saltLen)
		if _, err := rand.Read(b); err != nil {
			return "", fmt.Errorf("creating random salt: %w", err)
		}
		salt = base64.StdEncoding.EncodeToString(b)
	}
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("decoding base64 salt: %w", err)
	}
	// user and authzID do not affect the stored credentials
	c, err := m.hashGenerator.NewClient("user", pass, "")
	if err != nil {
		return "", fmt.Errorf("creating SCRAM client: %w", err)
	}
	sc := c.GetStoredCredentials(scram.KeyFactors{
		Salt:  string(saltBytes),
		Iters: iters,
	})
	return fmt.Sprintf(
		"%s$%d:%s$%s:%s",
		m.name, iters, salt,
		base64.StdEncoding.EncodeToString(sc.StoredKey),
		base64.StdEncoding.EncodeToString(sc.ServerKey),
	), nil
}
