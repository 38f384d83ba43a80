// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by this package. Callers match them with
// [errors.Is]; the wrapped detail never contains plaintext or key material.
var (
	// ErrConfiguration is returned when the encryption key is absent, is not
	// valid base64 or does not decode to exactly [KeySize] bytes.
	ErrConfiguration = errors.New("invalid encryption key configuration")

	// ErrMalformedInput is returned when an encrypted field is missing one of
	// its components or a component cannot be decoded.
	ErrMalformedInput = errors.New("malformed encrypted field")

	// ErrDecryption is returned when authenticated decryption fails: wrong
	// key, tampered ciphertext or tampered tag.
	ErrDecryption = errors.New("decryption failed")
)
