// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages bundles the persistence dependencies injected into the service layer.
type Storages struct {
	RecordStore RecordStore

	db *DB
}

// NewStorages opens the backend selected by cfg.DB.DSN. SQL backends are
// migrated before the store is returned.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	kind, err := cfg.DB.Kind()
	if err != nil {
		return nil, err
	}

	if kind == config.StorageMemory {
		log.Info().Str("func", "NewStorages").Msg("using in-memory record store")
		return &Storages{RecordStore: NewMemoryRecordStore()}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("failed to migrate database")
		return nil, fmt.Errorf("error migrating %s database: %w", kind, err)
	}
	log.Info().Str("func", "NewStorages").Str("storage", string(kind)).Msg("database is migrated")

	return &Storages{
		RecordStore: NewSQLRecordStore(db),
		db:          db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
