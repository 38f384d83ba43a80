// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the format rules for vault entries.
//
// A [Validator] checks a create request or an update patch before anything
// is encrypted or written. Rules are named by field, so a caller can run a
// subset (for example only the card number) by passing field names.
// Failures are the sentinel errors declared in errors.go; the service layer
// wraps them in its own validation error.
package validators

import "context"

// Validator checks one request or patch value.
type Validator interface {
	// Validate runs the rules for the given fields, or every rule of the
	// value's type when no field is named. It returns [ErrUnsupportedType]
	// for values it does not know and [ErrUnknownField] for unknown names.
	Validate(ctx context.Context, value any, fields ...string) error
}
