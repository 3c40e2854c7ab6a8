// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/vehicles-api/pkg/core/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondition(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected model.Condition
		err      error
	}{
		{in: "used", expected: model.ConditionUsed},
		{in: "NEW", expected: model.ConditionNew},
		{in: "broken", expected: model.ConditionInvalid, err: model.ErrUnknownCondition},
	} {
		t.Run(tc.in, func(t *testing.T) {
			c, err := model.ParseCondition(tc.in)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.expected, c)
		})
	}
	assert.Error(t, model.Condition(9).Validate())
	assert.Equal(t, "invalid", model.Condition(9).String())
}

func TestConditionJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		C model.Condition `json:"c"`
	}{model.ConditionNew})
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":"new"}`, string(b))

	var v struct {
		C model.Condition `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"c":"used"}`), &v))
	assert.Equal(t, model.ConditionUsed, v.C)
	assert.Error(t, json.Unmarshal([]byte(`{"c":"old"}`), &v))
}

func TestCopyAddressKeepsCoordinates(t *testing.T) {
	loc := &model.Location{Lat: 40, Lon: -74, Address: "stale"}
	loc.CopyAddress(&model.Location{
		Lat: 1, Lon: 2,
		Address: "1 Main St", City: "NYC", State: "NY", Zip: "10001",
	})
	assert.Equal(t, model.Location{
		Lat: 40, Lon: -74,
		Address: "1 Main St", City: "NYC", State: "NY", Zip: "10001",
	}, *loc)
}

func TestMoneyString(t *testing.T) {
	m := model.Money{Currency: "USD", Amount: decimal.RequireFromString("22.5")}
	assert.Equal(t, "USD 22.50", m.String())
	p := &model.Price{ID: 3, VehicleID: 1, Currency: "EUR", Amount: decimal.NewFromInt(7)}
	assert.Equal(t, "EUR 7.00", p.Money().String())
}
