// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// sqlRecordStore is the SQL-backed implementation of [RecordStore]. The same
// code serves PostgreSQL and SQLite; the dialect differences live in [DB].
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database failures are traced with the request's fields.
type sqlRecordStore struct {
	*DB
}

// NewSQLRecordStore constructs a [RecordStore] backed by db.
func NewSQLRecordStore(db *DB) RecordStore {
	return &sqlRecordStore{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var (
		record models.Record
		kind   string
		attrs  []byte
	)

	if err := row.Scan(&record.ID, &record.OwnerID, &kind, &attrs, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return models.Record{}, err
	}

	decoded, err := decodeAttributes(attrs)
	if err != nil {
		return models.Record{}, err
	}
	record.Kind = models.RecordKind(kind)
	record.Attributes = decoded

	return record, nil
}

// Put inserts a new record. A duplicate id yields ErrRecordExists.
func (s *sqlRecordStore) Put(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	query, args, err := s.buildInsertRecordQuery(record)
	if err != nil {
		log.Err(err).Str("func", "sqlRecordStore.Put").Msg("failed to create query")
		return err
	}

	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrRecordExists
		}
		log.Err(err).
			Str("func", "sqlRecordStore.Put").
			Str("record_id", record.ID).
			Stringer("classification", s.errorClassificator.Classify(err)).
			Msg("failed to insert record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrRecordNotSaved
	}

	return nil
}

// Get loads a single record by id.
func (s *sqlRecordStore) Get(ctx context.Context, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.buildGetRecordQuery(id)
	if err != nil {
		log.Err(err).Str("func", "sqlRecordStore.Get").Msg("failed to create query")
		return models.Record{}, err
	}

	record, err := scanRecord(s.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || isInvalidRecordID(err) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlRecordStore.Get").
			Str("record_id", id).
			Stringer("classification", s.errorClassificator.Classify(err)).
			Msg("failed to load record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// Update merges patch into the stored attributes in a single statement and
// returns the merged row.
func (s *sqlRecordStore) Update(ctx context.Context, id string, patch models.RecordPatch) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.buildUpdateRecordQuery(id, patch)
	if err != nil {
		log.Err(err).Str("func", "sqlRecordStore.Update").Msg("failed to create query")
		return models.Record{}, err
	}

	record, err := scanRecord(s.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || isInvalidRecordID(err) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlRecordStore.Update").
			Str("record_id", id).
			Int("patched_keys", len(patch.Attributes)).
			Stringer("classification", s.errorClassificator.Classify(err)).
			Msg("failed to update record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

// Delete removes the record with the given id.
func (s *sqlRecordStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.buildDeleteRecordQuery(id)
	if err != nil {
		log.Err(err).Str("func", "sqlRecordStore.Delete").Msg("failed to create query")
		return err
	}

	result, err := s.DB.ExecContext(ctx, query, args...)
	if isInvalidRecordID(err) {
		return ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlRecordStore.Delete").
			Str("record_id", id).
			Stringer("classification", s.errorClassificator.Classify(err)).
			Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// ListByOwner returns every record of kind owned by ownerID, oldest first.
// An owner without records gets an empty, non-nil slice.
func (s *sqlRecordStore) ListByOwner(ctx context.Context, ownerID int64, kind models.RecordKind) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.buildListRecordsQuery(ownerID, kind)
	if err != nil {
		log.Err(err).Str("func", "sqlRecordStore.ListByOwner").Msg("failed to create query")
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlRecordStore.ListByOwner").
			Int64("owner_id", ownerID).
			Str("kind", kind.String()).
			Stringer("classification", s.errorClassificator.Classify(err)).
			Msg("failed to execute query for listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 16)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "sqlRecordStore.ListByOwner").
				Int64("owner_id", ownerID).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "sqlRecordStore.ListByOwner").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}
