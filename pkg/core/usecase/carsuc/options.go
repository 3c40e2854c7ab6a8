// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsuc

import (
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
)

// Option is a functional option for the cars use case.
type Option func(uc *UseCase) error

// WithClock option configures a cars UseCase instance in order to use
// the given clock for the creation and modification timestamps.
// A real clock is used by default, while tests may pass a fake clock.
func WithClock(clock clockwork.Clock) Option {
	return func(uc *UseCase) error {
		if clock == nil {
			return errors.New("clock is nil")
		}
		if uc.clock != nil {
			return errors.New("clock is already configured")
		}
		uc.clock = clock
		return nil
	}
}

// WithEnrichmentWorkers option configures a cars UseCase instance in
// order to enrich at most n cars concurrently in the List use case.
// By default, cars are enriched sequentially (as if n was 1).
func WithEnrichmentWorkers(n int) Option {
	return func(uc *UseCase) error {
		if n <= 0 {
			return fmt.Errorf("workers count (%d) is not positive", n)
		}
		if uc.workers != 0 {
			return errors.New("workers count is already configured")
		}
		uc.workers = n
		return nil
	}
}
