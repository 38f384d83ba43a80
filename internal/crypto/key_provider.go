// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
)

// KeySource returns the raw configuration string holding the base64-encoded
// key. It is called at most once per [KeyProvider].
type KeySource func() string

// keyProvider is the lazy, once-initialized implementation of [KeyProvider].
type keyProvider struct {
	load func() (SymmetricKey, error)
}

// NewKeyProvider constructs a [KeyProvider] that reads source on the first
// call to GetKey. Concurrent first calls block until the single validation
// pass finishes and all observe the same result. A failed load is cached as
// well: the key configuration is fixed for the process lifetime.
func NewKeyProvider(source KeySource) KeyProvider {
	return &keyProvider{
		load: sync.OnceValues(func() (SymmetricKey, error) {
			return parseKey(source())
		}),
	}
}

// NewStaticKeyProvider constructs a [KeyProvider] for a fixed encoded key.
func NewStaticKeyProvider(encodedKey string) KeyProvider {
	return NewKeyProvider(func() string { return encodedKey })
}

// GetKey implements [KeyProvider].
func (p *keyProvider) GetKey() (SymmetricKey, error) {
	return p.load()
}

// parseKey decodes a standard base64 string into a [SymmetricKey].
func parseKey(encoded string) (SymmetricKey, error) {
	var key SymmetricKey

	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return key, fmt.Errorf("%w: key is not set", ErrConfiguration)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return key, fmt.Errorf("%w: key is not valid base64", ErrConfiguration)
	}

	if len(raw) != KeySize {
		return key, fmt.Errorf("%w: decoded key length is %d bytes, want %d", ErrConfiguration, len(raw), KeySize)
	}

	copy(key[:], raw)
	clear(raw)

	return key, nil
}
