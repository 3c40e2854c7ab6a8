// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package pricesrs realizes the prices resource of the pricing service
// and the price lookup service endpoint which is consumed by the
// vehicles service.
package pricesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/vehicles-api/pkg/core/usecase/pricesuc"
)

type resource struct {
	prices *pricesuc.UseCase
}

// Register instantiates a resource adapting the prices use case with
// the CRUD REST APIs of prices under the r router group (normally the
// /api/pricing/v1 group), including GET, POST, PUT, and DELETE requests
// on the /prices and /prices/:id paths.
func Register(r *gin.RouterGroup, prices *pricesuc.UseCase) {
	rs := &resource{prices: prices}
	r.GET("prices", rs.ListPrices)
	r.GET("prices/:id", rs.FindPrice)
	r.POST("prices", rs.CreatePrice)
	r.PUT("prices/:id", rs.UpdatePrice)
	r.DELETE("prices/:id", rs.DeletePrice)
}

// RegisterService registers the GET /services/price?vehicleId=N
// endpoint under the r router group, reporting the price of a vehicle.
func RegisterService(r gin.IRoutes, prices *pricesuc.UseCase) {
	rs := &resource{prices: prices}
	r.GET("services/price", rs.VehiclePrice)
}

func (rs *resource) ListPrices(c *gin.Context) {
	pp, err := rs.prices.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, pp)
}

func (rs *resource) FindPrice(c *gin.Context) {
	id, ok := serdser.BindID(c, "id")
	if !ok {
		return
	}
	p, err := rs.prices.Find(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (rs *resource) CreatePrice(c *gin.Context) {
	p := rs.DserPriceReq(c)
	if p == nil {
		return
	}
	p, err := rs.prices.Save(c, p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (rs *resource) UpdatePrice(c *gin.Context) {
	id, ok := serdser.BindID(c, "id")
	if !ok {
		return
	}
	p := rs.DserPriceReq(c)
	if p == nil {
		return
	}
	p.ID = id
	p, err := rs.prices.Save(c, p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (rs *resource) DeletePrice(c *gin.Context) {
	id, ok := serdser.BindID(c, "id")
	if !ok {
		return
	}
	if err := rs.prices.Delete(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) VehiclePrice(c *gin.Context) {
	vehicleID, ok := rs.DserVehiclePriceReq(c)
	if !ok {
		return
	}
	p, err := rs.prices.FindByVehicle(c, vehicleID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerVehiclePrice(p))
}
