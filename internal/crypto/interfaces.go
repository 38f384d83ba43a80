// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements field-level authenticated encryption for
// sensitive vault data.
//
// A [KeyProvider] loads the process-wide symmetric key exactly once, and an
// [EncryptionEngine] encrypts or decrypts a single plaintext field with
// AES-256-GCM using that key. Neither type knows anything about records,
// storage or users.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// KeySize is the length in bytes of the symmetric key (AES-256).
const KeySize = 32

// SymmetricKey is the process-wide AES-256 key. It is an array, so every
// holder gets its own copy and nobody can mutate the cached key.
type SymmetricKey [KeySize]byte

// KeyProvider loads and validates the symmetric key once per process.
type KeyProvider interface {
	// GetKey returns the cached key. The first call reads and validates the
	// configuration string; later calls return the cached result.
	// Returns an error wrapping [ErrConfiguration] if the key is absent or
	// its decoded length is not [KeySize].
	GetKey() (SymmetricKey, error)
}

// EncryptionEngine encrypts and decrypts one plaintext field at a time.
// Implementations are stateless apart from the key and safe for concurrent use.
type EncryptionEngine interface {
	// Encrypt seals plaintext under a fresh random IV and returns the
	// hex-encoded IV, ciphertext and authentication tag.
	Encrypt(ctx context.Context, plaintext string) (models.EncryptedField, error)

	// Decrypt verifies and opens field. It returns [ErrMalformedInput] if a
	// component is missing or undecodable and [ErrDecryption] if the tag
	// does not verify.
	Decrypt(ctx context.Context, field models.EncryptedField) (string, error)
}
