// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec translates between logical plaintext fields of a sensitive
// entity and the encrypted triplets stored in its record attributes.
//
// An entity declares its sensitive fields once as a list of
// [FieldDescriptor]s; adding a new entity means declaring names, not
// re-writing encode/decode logic.
package codec

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Codec encodes and decodes the sensitive fields of one entity type.
// It is immutable after construction and safe for concurrent use.
type Codec struct {
	engine crypto.EncryptionEngine
	fields []FieldDescriptor
	byName map[string]FieldDescriptor
}

// DecodeResult is the outcome of decoding one record.
type DecodeResult struct {
	// Fields maps every declared logical name to its plaintext, or to nil when
	// the field was never set or failed to decrypt.
	Fields map[string]*string

	// FieldErrors holds the names of fields that failed to decrypt.
	FieldErrors map[string]struct{}

	// HasError is true when FieldErrors is non-empty.
	HasError bool

	// Attempted counts fields whose storage attributes were at least
	// partially present.
	Attempted int
}

// New constructs a [Codec] for the given descriptors.
// Returns [ErrInvalidDescriptors] on an empty list, a blank name or a
// duplicated name or storage attribute.
func New(engine crypto.EncryptionEngine, fields ...FieldDescriptor) (*Codec, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields declared", ErrInvalidDescriptors)
	}

	byName := make(map[string]FieldDescriptor, len(fields))
	keys := make(map[string]struct{}, len(fields)*3)
	for _, f := range fields {
		if isBlank(f.Name) {
			return nil, fmt.Errorf("%w: blank field name", ErrInvalidDescriptors)
		}
		if _, ok := byName[f.Name]; ok {
			return nil, fmt.Errorf("%w: duplicated field %q", ErrInvalidDescriptors, f.Name)
		}
		for _, k := range f.storageKeys() {
			if isBlank(k) {
				return nil, fmt.Errorf("%w: blank storage key for field %q", ErrInvalidDescriptors, f.Name)
			}
			if _, ok := keys[k]; ok {
				return nil, fmt.Errorf("%w: storage key %q used twice", ErrInvalidDescriptors, k)
			}
			keys[k] = struct{}{}
		}
		byName[f.Name] = f
	}

	return &Codec{
		engine: engine,
		fields: slices.Clone(fields),
		byName: byName,
	}, nil
}

// FieldNames returns the declared logical names in declaration order.
func (c *Codec) FieldNames() []string {
	names := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		names = append(names, f.Name)
	}
	return names
}

// EncodePatch encrypts every logical field present in plain and returns the
// storage attributes to write. Fields absent from plain are absent from the
// patch. Every call produces fresh IVs, so re-encoding the same plaintext
// never reuses a stored triplet.
//
// On any failure no patch is returned.
func (c *Codec) EncodePatch(ctx context.Context, plain map[string]string) (map[string]string, error) {
	for name := range plain {
		if _, ok := c.byName[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}

	patch := make(map[string]string, len(plain)*3)
	for _, f := range c.fields {
		value, ok := plain[f.Name]
		if !ok {
			continue
		}

		fieldCtx := logger.ContextWithFields(ctx, "field", f.Name)
		encrypted, err := c.engine.Encrypt(fieldCtx, value)
		if err != nil {
			logger.FromContext(fieldCtx).Error().Msg("failed to encrypt field")
			return nil, fmt.Errorf("%w %q: %w", ErrEncodingField, f.Name, err)
		}

		patch[f.IVKey] = encrypted.IV
		patch[f.CipherKey] = encrypted.CipherText
		patch[f.TagKey] = encrypted.AuthTag
	}

	return patch, nil
}

// DecodeRecord decrypts every declared field of record independently.
//
// A field whose triplet is entirely absent decodes to nil without error. A
// field that is partially present or fails verification decodes to nil and
// is added to FieldErrors; decoding continues with the remaining fields.
func (c *Codec) DecodeRecord(ctx context.Context, record models.Record) DecodeResult {
	result := DecodeResult{
		Fields:      make(map[string]*string, len(c.fields)),
		FieldErrors: make(map[string]struct{}),
	}

	for _, f := range c.fields {
		result.Fields[f.Name] = nil

		stored := models.EncryptedField{
			IV:         record.Attributes[f.IVKey],
			CipherText: record.Attributes[f.CipherKey],
			AuthTag:    record.Attributes[f.TagKey],
		}
		if stored.IsEmpty() {
			continue
		}
		result.Attempted++

		fieldCtx := logger.ContextWithFields(ctx, "field", f.Name, "record_id", record.ID)
		plaintext, err := c.engine.Decrypt(fieldCtx, stored)
		if err != nil {
			logger.FromContext(fieldCtx).Warn().Msg("sensitive field left undecrypted")
			result.FieldErrors[f.Name] = struct{}{}
			continue
		}

		result.Fields[f.Name] = &plaintext
	}

	result.HasError = len(result.FieldErrors) > 0

	return result
}

// FieldErrorNames returns the failed field names in a stable order.
func (r DecodeResult) FieldErrorNames() []string {
	if len(r.FieldErrors) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.FieldErrors))
	for name := range r.FieldErrors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// AllFailed reports whether at least one field was present and every
// present field failed to decode.
func (r DecodeResult) AllFailed() bool {
	return r.Attempted > 0 && len(r.FieldErrors) == r.Attempted
}
