// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package pricecl implements the repo.PriceClient interface by calling
// the pricing service REST API. It is used by the vehicles service in
// order to attach the current price of each car to its responses.
package pricecl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/momeni/vehicles-api/pkg/adapter/observability"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/log"
	"github.com/momeni/vehicles-api/pkg/core/model"
)

// Name is the client label of the reported metrics.
const Name = "pricing"

// Client fetches vehicle prices from the pricing service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
}

// New creates a pricing service client which sends its requests to the
// baseURL (e.g., http://localhost:8082) and gives up after timeout.
func New(
	baseURL string, timeout time.Duration, m *observability.Metrics,
) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		metrics: m,
	}
}

// Price fetches the current price of the vehicleID vehicle.
// A missing price is reported as an unclassified error, so the caller
// fails with an internal server error instead of a 404 which could be
// mistaken for a missing car. Other non-2xx statuses are reported as
// cerr.BadGateway errors.
func (c *Client) Price(
	ctx context.Context, vehicleID int64,
) (*model.Money, error) {
	start := time.Now()
	params := url.Values{
		"vehicleId": {strconv.FormatInt(vehicleID, 10)},
	}
	u := c.baseURL + "/services/price?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveClient(Name, observability.OutcomeError, start)
		return nil, fmt.Errorf("price request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.metrics.ObserveClient(Name, observability.OutcomeNotFound, start)
		return nil, fmt.Errorf("no price for vehicle %d", vehicleID)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.metrics.ObserveClient(Name, observability.OutcomeError, start)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Warn(
			ctx, "pricing service failed",
			log.VehicleID(vehicleID),
			log.Err("err", fmt.Errorf("status %d", resp.StatusCode)),
		)
		return nil, cerr.BadGateway(fmt.Errorf(
			"pricing service: status %d: %s", resp.StatusCode, body,
		))
	}

	var pr response
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		c.metrics.ObserveClient(Name, observability.OutcomeError, start)
		return nil, cerr.BadGateway(fmt.Errorf("decode response: %w", err))
	}
	c.metrics.ObserveClient(Name, observability.OutcomeSuccess, start)
	return &model.Money{Currency: pr.Currency, Amount: pr.Price}, nil
}

// Pricing service response type, see the pricesrs package.
type response struct {
	VehicleID int64           `json:"vehicleId"`
	Currency  string          `json:"currency"`
	Price     decimal.Decimal `json:"price"`
}
