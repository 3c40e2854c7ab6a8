// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/momeni/vehicles-api/pkg/core/cerr"
)

// PostgreSQL error codes which are classified by MapError.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// MapError classifies the err database error, wrapping it with the op
// operation description. Missing rows are classified as cerr.NotFound,
// unique and foreign key violations as cerr.Conflict, and check
// constraint violations as cerr.BadRequest. Other errors are only
// wrapped. A nil err is returned as nil.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	err = fmt.Errorf("%s: %w", op, err)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return cerr.NotFound(err)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return cerr.Conflict(err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return cerr.BadRequest(err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation, codeForeignKeyViolation:
			return cerr.Conflict(err)
		case codeCheckViolation:
			return cerr.BadRequest(err)
		}
	}
	return err
}
