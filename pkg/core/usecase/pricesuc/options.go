// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package pricesuc

import "errors"

// Option is a functional option for the prices use case.
type Option func(uc *UseCase) error

// WithDefaultCurrency option configures a prices UseCase instance in
// order to use the given currency code for prices which are saved
// without a currency. The USD currency is used by default.
func WithDefaultCurrency(currency string) Option {
	return func(uc *UseCase) error {
		c, err := NormalizeCurrency(currency)
		if err != nil {
			return err
		}
		if uc.defaultCurrency != "" {
			return errors.New("default currency is already configured")
		}
		uc.defaultCurrency = c
		return nil
	}
}
