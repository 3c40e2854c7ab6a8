// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// JSON tags since adding more tags does not complicate definition of
// a struct, but can prevent unnecessary structs duplication. Database
// specific structs are kept in the repository packages because their
// columns do not match one to one with these models.
package model

import "time"

// Car models a vehicle which is listed by the vehicles service.
// The ID is nil until the car is persisted for the first time and is
// assigned by the cars repository.
// The Price field is transient. It is never persisted and is filled
// from the pricing service whenever a car is read through the cars
// use case (see the carsuc package), so a stale price may never be
// reported to a client.
type Car struct {
	ID        *int64    `json:"id,omitempty"`
	Condition Condition `json:"condition"`
	Details   Details   `json:"details"`
	Location  Location  `json:"location"`
	Price     *Money    `json:"price,omitempty"`

	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// Details is a value object which describes a car. It is replaced as
// a whole when a car is updated.
type Details struct {
	Body           string       `json:"body"`
	Model          string       `json:"model"`
	Manufacturer   Manufacturer `json:"manufacturer"`
	NumberOfDoors  int          `json:"numberOfDoors"`
	FuelType       string       `json:"fuelType"`
	Engine         string       `json:"engine"`
	Mileage        int          `json:"mileage"`
	ModelYear      int          `json:"modelYear"`
	ProductionYear int          `json:"productionYear"`
	ExternalColor  string       `json:"externalColor"`
}

// Manufacturer identifies the car maker by a numeric code and a name.
type Manufacturer struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// HasID reports if c was persisted before, so it owns an identifier.
func (c *Car) HasID() bool {
	return c.ID != nil
}
