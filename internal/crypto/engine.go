// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// IVSize is the length of the per-encryption initialization vector.
	IVSize = 16

	// TagSize is the length of the GCM authentication tag.
	TagSize = 16
)

// aesGCMEngine is the AES-256-GCM implementation of [EncryptionEngine].
type aesGCMEngine struct {
	keys   KeyProvider
	random io.Reader
}

// NewEncryptionEngine constructs an [EncryptionEngine] that takes its key
// from keys and its IVs from the OS CSPRNG.
func NewEncryptionEngine(keys KeyProvider) EncryptionEngine {
	return &aesGCMEngine{
		keys:   keys,
		random: rand.Reader,
	}
}

// Encrypt implements [EncryptionEngine]. The sealed output of GCM is split
// into ciphertext and the trailing 16-byte tag so each is stored separately.
//
// An empty plaintext is rejected with [ErrMalformedInput]: it would produce an
// empty ciphertext, and a stored field without ciphertext is not decryptable.
func (e *aesGCMEngine) Encrypt(ctx context.Context, plaintext string) (models.EncryptedField, error) {
	if plaintext == "" {
		return models.EncryptedField{}, fmt.Errorf("%w: empty plaintext", ErrMalformedInput)
	}

	gcm, err := e.newGCM()
	if err != nil {
		return models.EncryptedField{}, err
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(e.random, iv); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to generate iv")
		return models.EncryptedField{}, fmt.Errorf("generate iv: %w", err)
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	cipherText, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]

	return models.EncryptedField{
		IV:         hex.EncodeToString(iv),
		CipherText: hex.EncodeToString(cipherText),
		AuthTag:    hex.EncodeToString(tag),
	}, nil
}

// Decrypt implements [EncryptionEngine]. Tag verification is left entirely to
// GCM: if Open fails nothing but [ErrDecryption] is returned.
func (e *aesGCMEngine) Decrypt(ctx context.Context, field models.EncryptedField) (string, error) {
	log := logger.FromContext(ctx)

	if !field.IsComplete() {
		log.Warn().Msg("encrypted field is missing a component")
		return "", fmt.Errorf("%w: iv, cipher text and auth tag are all required", ErrMalformedInput)
	}

	iv, cipherText, tag, err := decodeField(field)
	if err != nil {
		log.Warn().Msg("encrypted field could not be decoded")
		return "", err
	}

	gcm, err := e.newGCM()
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(cipherText)+len(tag))
	sealed = append(sealed, cipherText...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		log.Warn().Msg("field decryption failed")
		return "", ErrDecryption
	}

	return string(plaintext), nil
}

// newGCM builds an AES-256-GCM AEAD with a 16-byte nonce from the current key.
func (e *aesGCMEngine) newGCM() (cipher.AEAD, error) {
	key, err := e.keys.GetKey()
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// decodeField hex-decodes the three components and checks the fixed lengths.
func decodeField(field models.EncryptedField) (iv, cipherText, tag []byte, err error) {
	if iv, err = hex.DecodeString(field.IV); err != nil || len(iv) != IVSize {
		return nil, nil, nil, fmt.Errorf("%w: bad iv", ErrMalformedInput)
	}
	if cipherText, err = hex.DecodeString(field.CipherText); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: bad cipher text", ErrMalformedInput)
	}
	if tag, err = hex.DecodeString(field.AuthTag); err != nil || len(tag) != TagSize {
		return nil, nil, nil, fmt.Errorf("%w: bad auth tag", ErrMalformedInput)
	}

	return iv, cipherText, tag, nil
}
