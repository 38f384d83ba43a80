// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned to callers by the authentication middleware and
// the request decoders.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrTokenExpired is returned when the bearer token is well formed but
	// its "exp" claim is in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrInvalidToken covers every other token verification failure.
	ErrInvalidToken = errors.New("token is invalid")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
