// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a *sql.DB together with the dialect-specific pieces the SQL
// record store needs: the placeholder style, the JSON merge expression and
// a driver error classifier.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open connection for dialect. Connections opened by
// NewConnect are wrapped the same way.
func NewDB(conn *sql.DB, dialect migrations.Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.Postgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = nopClassifier{}
	}

	return db
}

// NewConnect opens the SQL backend selected by cfg.DSN. It returns an error
// for the in-memory DSN, which has no SQL connection.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	kind, err := cfg.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case config.StoragePostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.StorageSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %s storage has no sql connection", ErrConnectingDB, kind)
	}
}

// Migrate applies the embedded schema migrations for this connection's dialect.
func (db *DB) Migrate() error {
	db.logger.Info().Str("func", "DB.Migrate").Str("dialect", string(db.dialect)).Msg("applying migrations")
	return migrations.Migrate(db.DB, db.dialect)
}

// attributesMerge renders the SQL expression that merges a JSON object
// argument into the stored attributes column.
func (db *DB) attributesMerge(patchJSON string) sq.Sqlizer {
	if db.dialect == migrations.Postgres {
		return sq.Expr("attributes || ?::jsonb", patchJSON)
	}
	return sq.Expr("json_patch(attributes, ?)", patchJSON)
}

type nopClassifier struct{}

func (nopClassifier) Classify(error) ErrorClassification { return NonRetryable }
