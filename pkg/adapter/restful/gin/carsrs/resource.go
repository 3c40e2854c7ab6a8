// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrs realizes the cars resource, allowing the cars
// manipulation REST APIs to be accepted and delegated to the
// cars use cases respectively.
package carsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/vehicles-api/pkg/core/usecase/carsuc"
)

type resource struct {
	cars *carsuc.UseCase
}

// Register instantiates a resource adapting the cars use case instance
// with the relevant REST APIs including:
//  1. GET request to /cars for listing all cars,
//  2. GET request to /cars/:id for fetching one car,
//  3. POST request to /cars for creating a car,
//  4. PUT request to /cars/:id for updating an existing car, and
//  5. DELETE request to /cars/:id for deleting a car.
//
// Paths are relative to the r router group, which is normally the
// /api/vehicles/v1 group. Fetched cars carry their current address
// and price.
func Register(r *gin.RouterGroup, cars *carsuc.UseCase) {
	rs := &resource{cars: cars}
	r.GET("cars", rs.ListCars)
	r.GET("cars/:id", rs.FindCar)
	r.POST("cars", rs.CreateCar)
	r.PUT("cars/:id", rs.UpdateCar)
	r.DELETE("cars/:id", rs.DeleteCar)
}

func (rs *resource) ListCars(c *gin.Context) {
	cc, err := rs.cars.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cc)
}

func (rs *resource) FindCar(c *gin.Context) {
	id, ok := serdser.BindID(c, "id")
	if !ok {
		return
	}
	car, err := rs.cars.Find(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (rs *resource) CreateCar(c *gin.Context) {
	car := rs.DserCarReq(c)
	if car == nil {
		return
	}
	car, err := rs.cars.Save(c, car)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

func (rs *resource) UpdateCar(c *gin.Context) {
	id, ok := serdser.BindID(c, "id")
	if !ok {
		return
	}
	car := rs.DserCarReq(c)
	if car == nil {
		return
	}
	car.ID = &id
	car, err := rs.cars.Save(c, car)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (rs *resource) DeleteCar(c *gin.Context) {
	id, ok := serdser.BindID(c, "id")
	if !ok {
		return
	}
	if err := rs.cars.Delete(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
