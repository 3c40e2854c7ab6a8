// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundThroughWraps(t *testing.T) {
	base := errors.New("no car")
	err := fmt.Errorf("carsrp.Find(7): %w", cerr.NotFound(base))
	assert.True(t, cerr.IsNotFound(err))
	assert.ErrorIs(t, err, base)
	assert.False(t, cerr.IsNotFound(base))
	assert.False(t, cerr.IsNotFound(cerr.Conflict(base)))
}

func TestErrorString(t *testing.T) {
	err := cerr.BadGateway(errors.New("maps answered 503"))
	assert.Equal(t, "[502] maps answered 503", err.Error())
	assert.True(t, cerr.HasStatus(err, http.StatusBadGateway))
}
