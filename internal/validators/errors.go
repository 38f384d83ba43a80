// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOwnerID   = errors.New("invalid owner ID")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrFieldTooLong     = errors.New("field value is too long")

	ErrEmptyTitle    = errors.New("title is required")
	ErrEmptyPassword = errors.New("password is required")

	ErrInvalidCardNumber   = errors.New("card number must contain 13 to 19 digits")
	ErrEmptyCardholderName = errors.New("cardholder name is required")
	ErrInvalidExpiryDate   = errors.New("expiry date must be in MM/YY format")
	ErrInvalidCVV          = errors.New("cvv must contain 3 or 4 digits")
)
