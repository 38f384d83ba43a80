// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// StorageKind names the record store backend selected by a DSN.
type StorageKind string

const (
	StorageMemory   StorageKind = "memory"
	StoragePostgres StorageKind = "postgres"
	StorageSQLite   StorageKind = "sqlite"
)

// Kind resolves the backend the DSN points at. Unknown schemes return an
// error wrapping ErrInvalidStorageConfigs.
func (db DB) Kind() (StorageKind, error) {
	dsn := strings.TrimSpace(db.DSN)
	switch {
	case dsn == "" || dsn == "memory":
		return StorageMemory, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return StoragePostgres, nil
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"):
		return StorageSQLite, nil
	default:
		return "", fmt.Errorf("%w: unsupported dsn scheme", ErrInvalidStorageConfigs)
	}
}

// SQLitePath strips the sqlite:// prefix go-sqlite3 does not understand.
func (db DB) SQLitePath() string {
	return strings.TrimPrefix(strings.TrimSpace(db.DSN), "sqlite://")
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.DecryptConcurrency == 0 {
		cfg.Workers.DecryptConcurrency = DefaultDecryptConcurrency
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. The encryption key is deliberately not checked here:
// it is parsed by the key provider, which reports its own configuration error.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if _, err := cfg.Storage.DB.Kind(); err != nil {
		return err
	}

	if cfg.Workers.DecryptConcurrency < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// String renders the configuration for startup logs with secrets masked.
func (cfg *StructuredConfig) String() string {
	return fmt.Sprintf(
		"address=%s request_timeout=%s storage=%s token_issuer=%q token_sign_key=%s encryption_key=%s decrypt_concurrency=%d log_level=%q",
		cfg.Server.HTTPAddress,
		cfg.Server.RequestTimeout,
		redactDSN(cfg.Storage.DB.DSN),
		cfg.App.TokenIssuer,
		redact(cfg.App.TokenSignKey),
		redact(cfg.App.EncryptionKey),
		cfg.Workers.DecryptConcurrency,
		cfg.App.LogLevel,
	)
}

func redact(secret string) string {
	if secret == "" {
		return "<unset>"
	}
	return "<redacted>"
}

// redactDSN hides the userinfo part of URL-style DSNs.
func redactDSN(dsn string) string {
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		return dsn
	}
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		return scheme + "://<redacted>@" + rest[at+1:]
	}
	return dsn
}
