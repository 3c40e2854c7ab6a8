// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/momeni/vehicles-api/pkg/core/log"
)

// Logging contains the process-wide structured logging settings.
type Logging struct {
	Format string // text (default) or json
	Level  string // debug, info (default), warn, or error
}

// Validate returns an error if the format or level are unknown.
func (l Logging) Validate() error {
	switch l.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", l.Format)
	}
	_, err := log.ParseLevel(l.Level)
	return err
}

// Setup installs the default slog logger which writes into w.
func (l Logging) Setup(w io.Writer) (*slog.Logger, error) {
	return log.Setup(w, l.Format, l.Level)
}
