// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
	sq "github.com/Masterminds/squirrel"
)

const recordsTable = "sensitive_records"

var recordColumns = []string{"id", "owner_id", "kind", "attributes", "created_at", "updated_at"}

func encodeAttributes(attrs map[string]string) (string, error) {
	if attrs == nil {
		attrs = map[string]string{}
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingAttributes, err)
	}
	return string(b), nil
}

func decodeAttributes(raw []byte) (map[string]string, error) {
	attrs := make(map[string]string)
	if len(raw) == 0 {
		return attrs, nil
	}
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingAttributes, err)
	}
	return attrs, nil
}

func (db *DB) buildInsertRecordQuery(record models.Record) (string, []any, error) {
	attrs, err := encodeAttributes(record.Attributes)
	if err != nil {
		return "", nil, err
	}

	query, args, err := db.builder.
		Insert(recordsTable).
		Columns(recordColumns...).
		Values(record.ID, record.OwnerID, string(record.Kind), attrs, record.CreatedAt.UTC(), record.UpdatedAt.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildGetRecordQuery(id string) (string, []any, error) {
	query, args, err := db.builder.
		Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildUpdateRecordQuery(id string, patch models.RecordPatch) (string, []any, error) {
	attrs, err := encodeAttributes(patch.Attributes)
	if err != nil {
		return "", nil, err
	}

	query, args, err := db.builder.
		Update(recordsTable).
		Set("attributes", db.attributesMerge(attrs)).
		Set("updated_at", patch.UpdatedAt.UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, owner_id, kind, attributes, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildDeleteRecordQuery(id string) (string, []any, error) {
	query, args, err := db.builder.
		Delete(recordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildListRecordsQuery(ownerID int64, kind models.RecordKind) (string, []any, error) {
	query, args, err := db.builder.
		Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"owner_id": ownerID, "kind": string(kind)}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
