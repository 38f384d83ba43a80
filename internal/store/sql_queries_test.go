// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertRecordQuery(t *testing.T) {
	db := NewDB(nil, migrations.Postgres, logger.Nop())
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := db.buildInsertRecordQuery(models.Record{
		ID:         "rec-1",
		OwnerID:    42,
		Kind:       models.KindCredential,
		Attributes: map[string]string{"title": "GitHub", "iv": "00"},
		CreatedAt:  ts,
		UpdatedAt:  ts,
	})

	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO sensitive_records (id,owner_id,kind,attributes,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6)",
		query)
	require.Len(t, args, 6)
	assert.Equal(t, "rec-1", args[0])
	assert.Equal(t, int64(42), args[1])
	assert.Equal(t, "credential", args[2])
	assert.JSONEq(t, `{"title":"GitHub","iv":"00"}`, args[3].(string))
}

func TestBuildInsertRecordQuery_NilAttributes(t *testing.T) {
	db := NewDB(nil, migrations.SQLite, logger.Nop())

	query, args, err := db.buildInsertRecordQuery(models.Record{ID: "rec-1", OwnerID: 1, Kind: models.KindPaymentCard})

	require.NoError(t, err)
	assert.Contains(t, query, "VALUES (?,?,?,?,?,?)")
	assert.Equal(t, "{}", args[3])
}

func TestBuildUpdateRecordQuery(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	patch := models.RecordPatch{Attributes: map[string]string{"notes": "hi"}, UpdatedAt: ts}

	t.Run("postgres merges jsonb", func(t *testing.T) {
		db := NewDB(nil, migrations.Postgres, logger.Nop())

		query, args, err := db.buildUpdateRecordQuery("rec-1", patch)

		require.NoError(t, err)
		assert.Contains(t, query, "UPDATE sensitive_records SET attributes = attributes || $1::jsonb, updated_at = $2 WHERE id = $3")
		assert.Contains(t, query, "RETURNING id, owner_id, kind, attributes, created_at, updated_at")
		assert.Equal(t, []any{`{"notes":"hi"}`, ts, "rec-1"}, args)
	})

	t.Run("sqlite uses json_patch", func(t *testing.T) {
		db := NewDB(nil, migrations.SQLite, logger.Nop())

		query, args, err := db.buildUpdateRecordQuery("rec-1", patch)

		require.NoError(t, err)
		assert.Contains(t, query, "SET attributes = json_patch(attributes, ?), updated_at = ? WHERE id = ?")
		assert.Len(t, args, 3)
	})
}

func TestBuildListRecordsQuery(t *testing.T) {
	db := NewDB(nil, migrations.Postgres, logger.Nop())

	query, args, err := db.buildListRecordsQuery(42, models.KindPaymentCard)

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, owner_id, kind, attributes, created_at, updated_at FROM sensitive_records WHERE kind = $1 AND owner_id = $2 ORDER BY created_at, id",
		query)
	assert.Equal(t, []any{"payment_card", int64(42)}, args)
}

func TestBuildGetAndDeleteRecordQuery(t *testing.T) {
	db := NewDB(nil, migrations.Postgres, logger.Nop())

	query, args, err := db.buildGetRecordQuery("rec-1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, owner_id, kind, attributes, created_at, updated_at FROM sensitive_records WHERE id = $1", query)
	assert.Equal(t, []any{"rec-1"}, args)

	query, args, err = db.buildDeleteRecordQuery("rec-1")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sensitive_records WHERE id = $1", query)
	assert.Equal(t, []any{"rec-1"}, args)
}

func TestDecodeAttributes(t *testing.T) {
	attrs, err := decodeAttributes(nil)
	require.NoError(t, err)
	assert.Empty(t, attrs)

	_, err = decodeAttributes([]byte(`[1,2]`))
	require.ErrorIs(t, err, ErrEncodingAttributes)
}
