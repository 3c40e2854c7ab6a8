// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package mapscl implements the repo.MapsClient interface by calling
// a maps service which reverse geocodes coordinates into an address.
package mapscl

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

	"github.com/momeni/vehicles-api/pkg/adapter/observability"
	"github.com/momeni/vehicles-api/pkg/core/cerr"
	"github.com/momeni/vehicles-api/pkg/core/model"
)

// Name is the client label of the reported metrics.
const Name = "maps"

// Client resolves addresses using the maps service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
}

// New creates a maps service client which sends its requests to the
// baseURL (e.g., http://localhost:9191) and gives up after timeout.
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

// Address converts the loc coordinates to an address.
// The returned location carries the coordinates which are reported by
// the maps service, while callers only copy its address fields.
func (c *Client) Address(
	ctx context.Context, loc model.Location,
) (*model.Location, error) {
	start := time.Now()
	params := url.Values{
		"lat": {strconv.FormatFloat(loc.Lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(loc.Lon, 'f', -1, 64)},
	}
	u := c.baseURL + "/maps?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveClient(Name, observability.OutcomeError, start)
		return nil, fmt.Errorf("maps request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.ObserveClient(Name, observability.OutcomeError, start)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, cerr.BadGateway(fmt.Errorf(
			"maps service: status %d: %s", resp.StatusCode, body,
		))
	}

	addr := &model.Location{}
	if err := json.NewDecoder(resp.Body).Decode(addr); err != nil {
		c.metrics.ObserveClient(Name, observability.OutcomeError, start)
		return nil, cerr.BadGateway(fmt.Errorf("decode response: %w", err))
	}
	c.metrics.ObserveClient(Name, observability.OutcomeSuccess, start)
	return addr, nil
}
