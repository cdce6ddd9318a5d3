// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrRouteNotMatched is returned when a path parameter violates its
	// route constraint (id not a positive integer, status not a boolean).
	// The request is answered as if no route existed.
	ErrRouteNotMatched = errors.New("route not matched")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
