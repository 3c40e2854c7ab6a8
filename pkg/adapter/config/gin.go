// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"github.com/momeni/vehicles-api/pkg/adapter/config/settings"
	"github.com/momeni/vehicles-api/pkg/adapter/observability"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin"
)

// DefaultAddress is the listening address of a service when the
// gin.address setting is missing.
const DefaultAddress = ":8080"

// Gin contains the gin-gonic related configuration settings.
// Boolean fields are defined as pointers, so it is possible to detect
// if they are or are not initialized, and missing items are filled by
// their default values.
type Gin struct {
	Logger   *bool  // Whether to log requests (default: true)
	Recovery *bool  // Whether to recover from panics (default: true)
	Address  string // host:port to listen on, like :8080
}

func (g *Gin) normalize() {
	t := true
	settings.OverwriteNil(&g.Logger, &t)
	settings.OverwriteNil(&g.Recovery, &t)
	if g.Address == "" {
		g.Address = DefaultAddress
	}
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings. Every request gets a request id. If m is not nil,
// requests are counted and timed in m.
func (g Gin) NewEngine(m *observability.Metrics) *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 4)
	middlewares = append(middlewares, gin.RequestID())
	if m != nil {
		middlewares = append(middlewares, gin.Metrics(m))
	}
	if g.Logger != nil && *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if g.Recovery != nil && *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}
