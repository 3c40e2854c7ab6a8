// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package pricecl_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momeni/vehicles-api/pkg/adapter/client/pricecl"
	"github.com/momeni/vehicles-api/pkg/adapter/observability"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
)

func TestClient_Price_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/price", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("vehicleId"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"vehicleId":7,"currency":"USD","price":"22.50"}`))
	}))
	defer srv.Close()

	m := observability.NewMetricsForTesting()
	c := pricecl.New(srv.URL+"/", 5*time.Second, m)
	money, err := c.Price(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "USD", money.Currency)
	assert.True(t, decimal.RequireFromString("22.5").Equal(money.Amount))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.ClientRequests.WithLabelValues(pricecl.Name, observability.OutcomeSuccess),
	))
}

func TestClient_Price_NumericAmount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"vehicleId":1,"currency":"EUR","price":1234.5}`))
	}))
	defer srv.Close()

	c := pricecl.New(srv.URL, 5*time.Second, observability.NewMetricsForTesting())
	money, err := c.Price(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "EUR 1234.50", money.String())
}

func TestClient_Price_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	m := observability.NewMetricsForTesting()
	c := pricecl.New(srv.URL, 5*time.Second, m)
	_, err := c.Price(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no price for vehicle 3")
	assert.False(t, cerr.IsNotFound(err), "a missing price is not a missing car")
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.ClientRequests.WithLabelValues(pricecl.Name, observability.OutcomeNotFound),
	))
}

func TestClient_Price_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"detail":"down"}`))
	}))
	defer srv.Close()

	c := pricecl.New(srv.URL, 5*time.Second, observability.NewMetricsForTesting())
	_, err := c.Price(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, cerr.HasStatus(err, http.StatusBadGateway))
	assert.Contains(t, err.Error(), "503")
}

func TestClient_Price_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"price":`))
	}))
	defer srv.Close()

	c := pricecl.New(srv.URL, 5*time.Second, observability.NewMetricsForTesting())
	_, err := c.Price(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, cerr.HasStatus(err, http.StatusBadGateway))
}

func TestClient_Price_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := observability.NewMetricsForTesting()
	c := pricecl.New(srv.URL, 50*time.Millisecond, m)
	_, err := c.Price(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.ClientRequests.WithLabelValues(pricecl.Name, observability.OutcomeError),
	))
}
