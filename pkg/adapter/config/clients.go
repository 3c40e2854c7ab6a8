// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/momeni/vehicles-api/pkg/adapter/client/mapscl"
	"github.com/momeni/vehicles-api/pkg/adapter/client/pricecl"
	"github.com/momeni/vehicles-api/pkg/adapter/config/settings"
	"github.com/momeni/vehicles-api/pkg/adapter/observability"
)

// Default base URLs and timeout of the collaborator services.
const (
	DefaultPricingURL    = "http://localhost:8082"
	DefaultMapsURL       = "http://localhost:9191"
	DefaultClientTimeout = 5 * time.Second
)

// Clients contains the settings of the collaborator services which
// are called by the vehicles service.
type Clients struct {
	Pricing Client // pricing service settings
	Maps    Client // maps service settings
}

// Client contains the settings of one collaborator service.
type Client struct {
	URL     string             // base URL, like http://localhost:8082
	Timeout *settings.Duration // whole request timeout, like 5s
}

// ValidateAndNormalize fills the default URLs and timeouts and ensures
// that URLs are absolute http(s) URLs and timeouts are positive.
func (cs *Clients) ValidateAndNormalize() error {
	if err := cs.Pricing.validateAndNormalize(DefaultPricingURL); err != nil {
		return fmt.Errorf("pricing: %w", err)
	}
	if err := cs.Maps.validateAndNormalize(DefaultMapsURL); err != nil {
		return fmt.Errorf("maps: %w", err)
	}
	return nil
}

func (c *Client) validateAndNormalize(defaultURL string) error {
	if c.URL == "" {
		c.URL = defaultURL
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("parsing url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("url %q is not an absolute http(s) URL", c.URL)
	}
	d := settings.Duration(DefaultClientTimeout)
	settings.OverwriteNil(&c.Timeout, &d)
	if *c.Timeout <= 0 {
		return fmt.Errorf("timeout (%v) is not positive", time.Duration(*c.Timeout))
	}
	return nil
}

// NewPriceClient instantiates a pricing service client.
func (cs Clients) NewPriceClient(m *observability.Metrics) *pricecl.Client {
	return pricecl.New(cs.Pricing.URL, time.Duration(*cs.Pricing.Timeout), m)
}

// NewMapsClient instantiates a maps service client.
func (cs Clients) NewMapsClient(m *observability.Metrics) *mapscl.Client {
	return mapscl.New(cs.Maps.URL, time.Duration(*cs.Maps.Timeout), m)
}
