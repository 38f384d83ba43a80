// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Record is the persistence model shared by every sensitive entity.
//
// Attributes is a flat key-value map that holds both the stored triplets of
// encrypted fields (e.g. "ivCardNumber", "encryptedCardNumber",
// "authTagCardNumber") and plaintext, non-sensitive metadata such as
// "category" or "last4Digits". The store never interprets attribute values.
type Record struct {
	// ID is the unique identifier of the record (UUIDv7).
	ID string `json:"id"`

	// OwnerID is the principal the record belongs to.
	OwnerID int64 `json:"ownerId"`

	// Kind selects the entity type and therefore the field descriptors.
	Kind RecordKind `json:"kind"`

	// Attributes holds the stored triplets and plaintext metadata.
	Attributes map[string]string `json:"attributes"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordPatch describes a partial update of a stored record. Only the keys
// present in Attributes are overwritten; every other attribute is left as is.
type RecordPatch struct {
	// Attributes contains the attributes to overwrite.
	Attributes map[string]string

	// UpdatedAt is stamped onto the record.
	UpdatedAt time.Time
}
