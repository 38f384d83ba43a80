// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"strings"
	"unicode"
)

// FieldDescriptor maps a logical sensitive field onto the three storage
// attributes that hold its encrypted triplet.
type FieldDescriptor struct {
	// Name is the logical field name used by callers (e.g. "cardNumber").
	Name string

	// IVKey is the storage attribute holding the hex IV.
	IVKey string

	// CipherKey is the storage attribute holding the hex ciphertext.
	CipherKey string

	// TagKey is the storage attribute holding the hex authentication tag.
	TagKey string
}

// Field declares a field stored as iv<Name>, encrypted<Name>, authTag<Name>.
// Use it for entities with several sensitive fields.
//
//	Field("cardNumber") // ivCardNumber, encryptedCardNumber, authTagCardNumber
func Field(name string) FieldDescriptor {
	suffix := upperFirst(name)
	return FieldDescriptor{
		Name:      name,
		IVKey:     "iv" + suffix,
		CipherKey: "encrypted" + suffix,
		TagKey:    "authTag" + suffix,
	}
}

// SoleField declares the only sensitive field of an entity, stored as
// iv, encrypted<Name>, authTag.
//
//	SoleField("password") // iv, encryptedPassword, authTag
func SoleField(name string) FieldDescriptor {
	return FieldDescriptor{
		Name:      name,
		IVKey:     "iv",
		CipherKey: "encrypted" + upperFirst(name),
		TagKey:    "authTag",
	}
}

// storageKeys returns the three storage attributes of the descriptor.
func (d FieldDescriptor) storageKeys() [3]string {
	return [3]string{d.IVKey, d.CipherKey, d.TagKey}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// isBlank reports whether s is empty or only white space.
func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
