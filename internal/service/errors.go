// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrValidation wraps every input rule violation. It is returned before
	// any encryption or storage call is made.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a record does not exist or belongs to
	// another owner.
	ErrNotFound = errors.New("record not found")

	// ErrDecryptionFailure is returned by single-record reads when every
	// sensitive field present on the record failed to decrypt.
	ErrDecryptionFailure = errors.New("record could not be decrypted")
)
