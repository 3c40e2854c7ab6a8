// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package scram_test

import (
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momeni/vehicles-api/pkg/adapter/hash/scram"
	corescram "github.com/momeni/vehicles-api/pkg/core/scram"
)

var _ corescram.Hasher = scram.SHA256()

func TestHashFormat(t *testing.T) {
	salt := base64.StdEncoding.EncodeToString([]byte("0123456789abcdef"))
	m := scram.SHA256()
	h1, err := m.Hash("pencil", salt, 4096)
	require.NoError(t, err)
	h2, err := m.Hash("pencil", salt, 4096)
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "same inputs give the same hash")
	assert.Regexp(t, regexp.MustCompile(
		`^SCRAM-SHA-256\$4096:`+regexp.QuoteMeta(salt)+
			`\$[A-Za-z0-9+/=]{44}:[A-Za-z0-9+/=]{44}$`,
	), h1)

	h3, err := m.Hash("pencil", "", 15000)
	require.NoError(t, err)
	h4, err := m.Hash("pencil", "", 15000)
	require.NoError(t, err)
	assert.NotEqual(t, h3, h4, "random salts differ")

	s1, err := scram.SHA1().Hash("pencil", salt, 4096)
	require.NoError(t, err)
	assert.Regexp(t, `^SCRAM-SHA-1\$4096:`, s1)
}

func TestHashRejectsBadInputs(t *testing.T) {
	m := scram.SHA256()
	_, err := m.Hash("", "", 4096)
	assert.Error(t, err)
	_, err = m.Hash("pencil", "", 100)
	assert.Error(t, err)
	_, err = m.Hash("pencil", "not base64!", 4096)
	assert.Error(t, err)
}
