// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr contains the classified errors of the core layer.
// An Error wraps another error and tags it with the HTTP status code
// which a REST adapter should report. Errors which are not classified
// are reported as internal server errors.
package cerr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a classified error, wrapping Err and carrying the HTTP
// status code which should be used to report it.
type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

// NotFound marks err as an error caused by an identifier which does
// not exist in a repository.
func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}

// BadGateway marks err as a failure of a collaborator service which
// has answered with an unexpected status or payload.
func BadGateway(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadGateway}
}

// IsNotFound reports if err (or an error in its chain) is classified
// by the NotFound function.
func IsNotFound(err error) bool {
	return HasStatus(err, http.StatusNotFound)
}

// HasStatus reports if err chain contains an *Error with the given
// HTTP status code.
func HasStatus(err error, status int) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.HTTPStatusCode == status
}
