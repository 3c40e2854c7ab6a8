// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Location represents the geographical location of a car. The Lat and
// Lon coordinates are the source of truth and are persisted with a car,
// while the Address, City, State, and Zip fields are derived from them
// by a maps service (see the repo.MapsClient interface).
// A location enrichment may only fill the derived fields and must keep
// the coordinates untouched.
type Location struct {
	Lat float64 `json:"lat"` // latitude in decimal degrees
	Lon float64 `json:"lon"` // longitude in decimal degrees

	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// CopyAddress overwrites the derived address fields of loc by their
// counterparts from src. The loc coordinates are not changed, even if
// src reports other coordinates.
func (loc *Location) CopyAddress(src *Location) {
	loc.Address = src.Address
	loc.City = src.City
	loc.State = src.State
	loc.Zip = src.Zip
}
