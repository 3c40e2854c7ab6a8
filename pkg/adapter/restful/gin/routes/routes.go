// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
// Each service (vehicles, pricing, and the maps mock) is registered
// by its own function, so every process serves one of them.
package routes

import (
	"fmt"
	"math/rand/v2"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/momeni/vehicles-api/pkg/adapter/config"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/carsrp"
	"github.com/momeni/vehicles-api/pkg/adapter/db/postgres/pricesrp"
	"github.com/momeni/vehicles-api/pkg/adapter/observability"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/carsrs"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/mapsrs"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/pricesrs"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

// RegisterVehicles instantiates the cars repository and use case and
// registers the cars resource under /api/vehicles/v1 in the e engine.
// The use case acquires connections from the p pool and enriches cars
// using the pricing and maps clients which are created by c, reporting
// their metrics into m.
func RegisterVehicles(
	e *gin.Engine, p repo.Pool, c *config.Config, m *observability.Metrics,
) error {
	carsUseCase, err := c.NewCarsUseCase(p, carsrp.New(), m)
	if err != nil {
		return fmt.Errorf("creating cars use case: %w", err)
	}
	r := e.Group("/api/vehicles/v1")
	carsrs.Register(r, carsUseCase)
	return nil
}

// RegisterPricing instantiates the prices repository and use case and
// registers the prices resource under /api/pricing/v1 and the price
// lookup endpoint under /services in the e engine.
func RegisterPricing(e *gin.Engine, p repo.Pool, c *config.Config) error {
	pricesUseCase, err := c.NewPricesUseCase(p, pricesrp.New())
	if err != nil {
		return fmt.Errorf("creating prices use case: %w", err)
	}
	pricesrs.Register(e.Group("/api/pricing/v1"), pricesUseCase)
	pricesrs.RegisterService(e, pricesUseCase)
	return nil
}

// RegisterMaps registers the mock maps service, taking its random
// addresses from rnd (or a randomly seeded source if rnd is nil).
func RegisterMaps(e *gin.Engine, rnd *rand.Rand) {
	mapsrs.Register(e, rnd)
}

// RegisterOps registers the /healthz liveness endpoint and the
// /metrics endpoint which exports the default Prometheus registry.
func RegisterOps(e *gin.Engine) {
	e.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
