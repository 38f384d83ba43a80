// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"runtime"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"golang.org/x/sync/errgroup"
)

// recordCore holds the entity-independent half of a record service: ownership
// checks, encoding through the codec, persistence and decoding. Entity
// services translate their request types into sensitive and plaintext
// attribute maps and build projections from the decoded result.
type recordCore struct {
	records     store.RecordStore
	codec       *codec.Codec
	kind        models.RecordKind
	ids         utils.IDGenerator
	now         func() time.Time
	concurrency int
}

func newRecordCore(records store.RecordStore, c *codec.Codec, kind models.RecordKind, concurrency int) *recordCore {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	return &recordCore{
		records:     records,
		codec:       c,
		kind:        kind,
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		concurrency: concurrency,
	}
}

// create encrypts sensitive, merges it with plain and stores a new record.
func (c *recordCore) create(ctx context.Context, ownerID int64, sensitive, plain map[string]string) (models.Record, error) {
	log := logger.FromContext(ctx)

	encrypted, err := c.codec.EncodePatch(ctx, sensitive)
	if err != nil {
		log.Err(err).Str("func", "recordCore.create").Str("kind", c.kind.String()).Msg("failed to encrypt record fields")
		return models.Record{}, err
	}

	now := c.now().UTC()
	record := models.Record{
		ID:         c.ids.Generate(),
		OwnerID:    ownerID,
		Kind:       c.kind,
		Attributes: mergeAttributes(plain, encrypted),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.records.Put(ctx, record); err != nil {
		log.Err(err).Str("func", "recordCore.create").Str("record_id", record.ID).Msg("failed to save record")
		return models.Record{}, fmt.Errorf("error saving %s: %w", c.kind, err)
	}

	return record, nil
}

// fetchOwned loads id and checks that it belongs to ownerID and is of this
// core's kind. Every failed check yields ErrNotFound.
func (c *recordCore) fetchOwned(ctx context.Context, ownerID int64, id string) (models.Record, error) {
	record, err := c.records.Get(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.Record{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recordCore.fetchOwned").Str("record_id", id).Msg("failed to load record")
		return models.Record{}, fmt.Errorf("error loading %s: %w", c.kind, err)
	}

	if record.OwnerID != ownerID || record.Kind != c.kind {
		return models.Record{}, ErrNotFound
	}

	return record, nil
}

// decodeSingle decodes one record and escalates to ErrDecryptionFailure when
// nothing on it could be decrypted.
func (c *recordCore) decodeSingle(ctx context.Context, record models.Record) (codec.DecodeResult, error) {
	result := c.codec.DecodeRecord(ctx, record)
	if result.AllFailed() {
		logger.FromContext(ctx).Error().
			Str("func", "recordCore.decodeSingle").
			Str("record_id", record.ID).
			Strs("fields", result.FieldErrorNames()).
			Msg("every sensitive field failed to decrypt")
		return result, ErrDecryptionFailure
	}

	return result, nil
}

func (c *recordCore) get(ctx context.Context, ownerID int64, id string) (models.Record, codec.DecodeResult, error) {
	record, err := c.fetchOwned(ctx, ownerID, id)
	if err != nil {
		return models.Record{}, codec.DecodeResult{}, err
	}

	result, err := c.decodeSingle(ctx, record)
	if err != nil {
		return models.Record{}, codec.DecodeResult{}, err
	}

	return record, result, nil
}

// list decodes every record of the owner. Records are decoded concurrently,
// bounded by c.concurrency; per-field failures stay on the individual result.
func (c *recordCore) list(ctx context.Context, ownerID int64) ([]models.Record, []codec.DecodeResult, error) {
	records, err := c.records.ListByOwner(ctx, ownerID, c.kind)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recordCore.list").Int64("owner_id", ownerID).Msg("failed to list records")
		return nil, nil, fmt.Errorf("error listing %s records: %w", c.kind, err)
	}

	results := make([]codec.DecodeResult, len(records))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, record := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.codec.DecodeRecord(ctx, record)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return records, results, nil
}

// update re-encrypts only the sensitive fields present in the patch and
// merges them, together with plain, over the stored attributes.
func (c *recordCore) update(ctx context.Context, ownerID int64, id string, sensitive, plain map[string]string) (models.Record, codec.DecodeResult, error) {
	log := logger.FromContext(ctx)

	if _, err := c.fetchOwned(ctx, ownerID, id); err != nil {
		return models.Record{}, codec.DecodeResult{}, err
	}

	encrypted, err := c.codec.EncodePatch(ctx, sensitive)
	if err != nil {
		log.Err(err).Str("func", "recordCore.update").Str("record_id", id).Msg("failed to encrypt record fields")
		return models.Record{}, codec.DecodeResult{}, err
	}

	updated, err := c.records.Update(ctx, id, models.RecordPatch{
		Attributes: mergeAttributes(plain, encrypted),
		UpdatedAt:  c.now().UTC(),
	})
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.Record{}, codec.DecodeResult{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "recordCore.update").Str("record_id", id).Msg("failed to update record")
		return models.Record{}, codec.DecodeResult{}, fmt.Errorf("error updating %s: %w", c.kind, err)
	}

	result, err := c.decodeSingle(ctx, updated)
	if err != nil {
		return models.Record{}, codec.DecodeResult{}, err
	}

	return updated, result, nil
}

func (c *recordCore) delete(ctx context.Context, ownerID int64, id string) error {
	if _, err := c.fetchOwned(ctx, ownerID, id); err != nil {
		return err
	}

	err := c.records.Delete(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recordCore.delete").Str("record_id", id).Msg("failed to delete record")
		return fmt.Errorf("error deleting %s: %w", c.kind, err)
	}

	return nil
}

func mergeAttributes(plain, encrypted map[string]string) map[string]string {
	attrs := make(map[string]string, len(plain)+len(encrypted))
	maps.Copy(attrs, plain)
	maps.Copy(attrs, encrypted)
	return attrs
}

// setIfNotEmpty and setIfPresent build plaintext attribute maps from create
// requests and patches respectively.
func setIfNotEmpty(attrs map[string]string, key, value string) {
	if value != "" {
		attrs[key] = value
	}
}

func setIfPresent(attrs map[string]string, key string, value *string) {
	if value != nil {
		attrs[key] = *value
	}
}
