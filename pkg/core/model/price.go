// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a stored price record which is owned by the pricing service.
// It is related to a car only by the VehicleID field and no foreign key
// is enforced between the pricing and vehicles databases.
// A zero ID indicates a price which is not persisted yet.
type Price struct {
	ID        int64           `json:"id"`
	VehicleID int64           `json:"vehicleId"`
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"price"`
}

// Money returns the currency and amount of p as a Money instance.
func (p *Price) Money() *Money {
	return &Money{Currency: p.Currency, Amount: p.Amount}
}

// Money is an amount of some currency. The Currency is an ISO-4217
// code such as USD.
type Money struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// String formats m like "USD 22.50", having two fractional digits.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(2))
}
