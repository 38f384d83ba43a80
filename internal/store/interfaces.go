// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists encrypted records. It knows nothing about
// encryption: a record's attributes are an opaque string map holding
// hex triplets and plaintext metadata side by side.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// RecordStore is the persistence contract for sensitive records.
//
// Get, Update and Delete return ErrRecordNotFound when no record has the
// given id. Update merges patch.Attributes into the stored attributes, keys
// absent from the patch keep their stored values, and returns the merged
// record.
type RecordStore interface {
	Put(ctx context.Context, record models.Record) error
	Get(ctx context.Context, id string) (models.Record, error)
	Update(ctx context.Context, id string, patch models.RecordPatch) (models.Record, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID int64, kind models.RecordKind) ([]models.Record, error)
}

// ErrorClassificator decides whether a failed database call is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
