// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	testKey  = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="
	otherKey = "ZmVkY2JhOTg3NjU0MzIxMGZlZGNiYTk4NzY1NDMyMTA="
)

var baseTime = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newEngine(key string) crypto.EncryptionEngine {
	return crypto.NewEncryptionEngine(crypto.NewStaticKeyProvider(key))
}

type sequentialIDs struct {
	n atomic.Int64
}

func (s *sequentialIDs) Generate() string {
	return fmt.Sprintf("rec-%03d", s.n.Add(1))
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func wireCore(core *recordCore, clock *testClock) {
	core.ids = &sequentialIDs{}
	core.now = clock.Now
}

func newTestCredentialService(t *testing.T, records store.RecordStore, key string, clock *testClock) *credentialService {
	t.Helper()
	svc, err := NewCredentialService(records, newEngine(key), 4)
	require.NoError(t, err)
	s := svc.(*credentialService)
	wireCore(s.core, clock)
	return s
}

func newTestPaymentCardService(t *testing.T, records store.RecordStore, key string, clock *testClock) *paymentCardService {
	t.Helper()
	svc, err := NewPaymentCardService(records, newEngine(key), 4)
	require.NoError(t, err)
	s := svc.(*paymentCardService)
	wireCore(s.core, clock)
	return s
}

func ptr(s string) *string { return &s }
