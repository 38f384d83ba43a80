// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedField is the stored form of one sensitive field: the AES-GCM
// initialization vector, the ciphertext and the authentication tag, each
// hex-encoded.
//
// The three components travel together. A field with all three empty is
// "not set"; any other combination with an empty component is malformed.
type EncryptedField struct {
	// IV is the hex-encoded 16-byte initialization vector.
	IV string `json:"iv"`

	// CipherText is the hex-encoded ciphertext without the tag.
	CipherText string `json:"cipherText"`

	// AuthTag is the hex-encoded 16-byte GCM authentication tag.
	AuthTag string `json:"authTag"`
}

// IsComplete reports whether all three components are present.
func (f EncryptedField) IsComplete() bool {
	return f.IV != "" && f.CipherText != "" && f.AuthTag != ""
}

// IsEmpty reports whether none of the components are present.
func (f EncryptedField) IsEmpty() bool {
	return f.IV == "" && f.CipherText == "" && f.AuthTag == ""
}
