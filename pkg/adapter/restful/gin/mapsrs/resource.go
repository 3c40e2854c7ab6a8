// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package mapsrs realizes a mock maps service which answers reverse
// geocoding requests with an address which is picked randomly from
// a fixed list. It is used for development and tests, so the vehicles
// service may run without a real maps provider.
package mapsrs

import (
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/vehicles-api/pkg/core/model"
)

// Addresses lists the addresses which may be reported by the mock.
var Addresses = []model.Location{
	{Address: "777 Brockton Avenue", City: "Abington", State: "MA", Zip: "02351"},
	{Address: "30 Memorial Drive", City: "Avon", State: "MA", Zip: "02322"},
	{Address: "250 Hartford Avenue", City: "Bellingham", State: "MA", Zip: "02019"},
	{Address: "700 Oak Street", City: "Brockton", State: "MA", Zip: "02301"},
	{Address: "66-4 Parkhurst Rd", City: "Chelmsford", State: "MA", Zip: "01824"},
	{Address: "591 Memorial Dr", City: "Chicopee", State: "MA", Zip: "01020"},
	{Address: "55 Brooksby Village Way", City: "Danvers", State: "MA", Zip: "01923"},
	{Address: "137 Teaticket Hwy", City: "East Falmouth", State: "MA", Zip: "02536"},
	{Address: "42 Fairhaven Commons Way", City: "Fairhaven", State: "MA", Zip: "02719"},
	{Address: "374 William S Canning Blvd", City: "Fall River", State: "MA", Zip: "02721"},
}

type resource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

type rawAddressReq struct {
	Lat *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lon *float64 `form:"lon" binding:"required,min=-180,max=180"`
}

// Register adds the GET /maps?lat=..&lon=.. endpoint to the r routes.
// The rnd source picks the reported addresses. A nil rnd is replaced
// by a randomly seeded source.
func Register(r gin.IRoutes, rnd *rand.Rand) {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	rs := &resource{rnd: rnd}
	r.GET("maps", rs.Address)
}

// Address echoes the requested coordinates along with a random address.
func (rs *resource) Address(c *gin.Context) {
	req := &rawAddressReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return
	}
	rs.mu.Lock()
	loc := Addresses[rs.rnd.IntN(len(Addresses))]
	rs.mu.Unlock()
	loc.Lat, loc.Lon = *req.Lat, *req.Lon
	c.JSON(http.StatusOK, loc)
}
