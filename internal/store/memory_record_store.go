// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-pass-vault/models"
)

// memoryRecordStore keeps records in process memory. Records are copied on
// the way in and out so callers can never alias stored attribute maps.
type memoryRecordStore struct {
	mu      sync.RWMutex
	records map[string]models.Record
}

// NewMemoryRecordStore constructs an empty in-memory [RecordStore].
func NewMemoryRecordStore() RecordStore {
	return &memoryRecordStore{
		records: make(map[string]models.Record),
	}
}

func cloneRecord(r models.Record) models.Record {
	r.Attributes = maps.Clone(r.Attributes)
	if r.Attributes == nil {
		r.Attributes = map[string]string{}
	}
	return r
}

func (m *memoryRecordStore) Put(ctx context.Context, record models.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; ok {
		return ErrRecordExists
	}
	m.records[record.ID] = cloneRecord(record)

	return nil
}

func (m *memoryRecordStore) Get(ctx context.Context, id string) (models.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return models.Record{}, ErrRecordNotFound
	}

	return cloneRecord(record), nil
}

func (m *memoryRecordStore) Update(ctx context.Context, id string, patch models.RecordPatch) (models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[id]
	if !ok {
		return models.Record{}, ErrRecordNotFound
	}

	record = cloneRecord(record)
	maps.Copy(record.Attributes, patch.Attributes)
	record.UpdatedAt = patch.UpdatedAt
	m.records[id] = record

	return cloneRecord(record), nil
}

func (m *memoryRecordStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return ErrRecordNotFound
	}
	delete(m.records, id)

	return nil
}

func (m *memoryRecordStore) ListByOwner(ctx context.Context, ownerID int64, kind models.RecordKind) ([]models.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]models.Record, 0)
	for _, r := range m.records {
		if r.OwnerID == ownerID && r.Kind == kind {
			records = append(records, cloneRecord(r))
		}
	}

	slices.SortFunc(records, func(a, b models.Record) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	return records, nil
}
