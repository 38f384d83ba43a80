// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCredential(t *testing.T, s CredentialService, owner int64, title, password string) models.Credential {
	t.Helper()
	c, err := s.Create(testContext(), owner, models.CreateCredentialRequest{
		Title:    title,
		Username: "octocat",
		Password: password,
		URL:      "https://example.com",
		Notes:    "initial",
	})
	require.NoError(t, err)
	return c
}

func TestCredentialService_CreateAndGet(t *testing.T) {
	// Arrange
	ctx := testContext()
	records := store.NewMemoryRecordStore()
	s := newTestCredentialService(t, records, testKey, &testClock{now: baseTime})

	// Act
	created := createCredential(t, s, 7, "GitHub", "hunter2")
	got, err := s.Get(ctx, 7, created.ID)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created.Password)
	assert.Equal(t, "hunter2", *created.Password)
	require.NotNil(t, got.Password)
	assert.Equal(t, "hunter2", *got.Password)
	assert.Equal(t, "GitHub", got.Title)
	assert.Equal(t, "octocat", got.Username)
	assert.Equal(t, "initial", got.Notes)
	assert.False(t, got.HasError)
	assert.Empty(t, got.FieldErrors)
	assert.Equal(t, baseTime, got.CreatedAt)

	stored, err := records.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.KindCredential, stored.Kind)
	assert.Len(t, stored.Attributes["iv"], 32)
	assert.Len(t, stored.Attributes["authTag"], 32)
	assert.NotEmpty(t, stored.Attributes["encryptedPassword"])
	for key, value := range stored.Attributes {
		assert.NotContains(t, value, "hunter2", "attribute %s leaks plaintext", key)
	}
}

func TestCredentialService_Ownership(t *testing.T) {
	ctx := testContext()
	records := store.NewMemoryRecordStore()
	s := newTestCredentialService(t, records, testKey, &testClock{now: baseTime})
	created := createCredential(t, s, 7, "GitHub", "hunter2")

	_, missingErr := s.Get(ctx, 7, "does-not-exist")
	_, foreignErr := s.Get(ctx, 8, created.ID)

	require.ErrorIs(t, missingErr, ErrNotFound)
	require.ErrorIs(t, foreignErr, ErrNotFound)
	assert.Equal(t, missingErr.Error(), foreignErr.Error())

	_, err := s.Update(ctx, 8, created.ID, models.CredentialPatch{Notes: ptr("stolen")})
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, 8, created.ID), ErrNotFound)

	still, err := s.Get(ctx, 7, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "initial", still.Notes)
}

func TestCredentialService_KindIsPartOfOwnership(t *testing.T) {
	ctx := testContext()
	records := store.NewMemoryRecordStore()
	clock := &testClock{now: baseTime}
	cards := newTestPaymentCardService(t, records, testKey, clock)
	credentials := newTestCredentialService(t, records, testKey, clock)

	card, err := cards.Create(ctx, 7, validCardRequest())
	require.NoError(t, err)

	_, err = credentials.Get(ctx, 7, card.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCredentialService_UpdateNonSensitiveLeavesTripletUntouched(t *testing.T) {
	// Arrange
	ctx := testContext()
	records := store.NewMemoryRecordStore()
	clock := &testClock{now: baseTime}
	s := newTestCredentialService(t, records, testKey, clock)
	created := createCredential(t, s, 7, "GitHub", "hunter2")
	before, err := records.Get(ctx, created.ID)
	require.NoError(t, err)
	clock.Advance(time.Hour)

	// Act
	updated, err := s.Update(ctx, 7, created.ID, models.CredentialPatch{Notes: ptr("rotated soon")})

	// Assert
	require.NoError(t, err)
	after, err := records.Get(ctx, created.ID)
	require.NoError(t, err)

	for _, key := range []string{"iv", "encryptedPassword", "authTag"} {
		assert.Equal(t, before.Attributes[key], after.Attributes[key], key)
	}
	assert.Equal(t, "rotated soon", after.Attributes[AttrNotes])
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.Equal(t, baseTime.Add(time.Hour), after.UpdatedAt)

	require.NotNil(t, updated.Password)
	assert.Equal(t, "hunter2", *updated.Password)
	assert.Equal(t, "rotated soon", updated.Notes)
}

func TestCredentialService_UpdatePasswordReencrypts(t *testing.T) {
	ctx := testContext()
	records := store.NewMemoryRecordStore()
	s := newTestCredentialService(t, records, testKey, &testClock{now: baseTime})
	created := createCredential(t, s, 7, "GitHub", "hunter2")
	before, err := records.Get(ctx, created.ID)
	require.NoError(t, err)

	updated, err := s.Update(ctx, 7, created.ID, models.CredentialPatch{Password: ptr("hunter2")})

	require.NoError(t, err)
	after, err := records.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, before.Attributes["iv"], after.Attributes["iv"])
	assert.NotEqual(t, before.Attributes["authTag"], after.Attributes["authTag"])
	assert.Equal(t, before.Attributes[AttrTitle], after.Attributes[AttrTitle])
	require.NotNil(t, updated.Password)
	assert.Equal(t, "hunter2", *updated.Password)
}

func TestCredentialService_Delete(t *testing.T) {
	ctx := testContext()
	s := newTestCredentialService(t, store.NewMemoryRecordStore(), testKey, &testClock{now: baseTime})
	created := createCredential(t, s, 7, "GitHub", "hunter2")

	require.NoError(t, s.Delete(ctx, 7, created.ID))

	_, err := s.Get(ctx, 7, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, 7, created.ID), ErrNotFound)
}

func TestCredentialService_GetWithWrongKeyIsDecryptionFailure(t *testing.T) {
	ctx := testContext()
	records := store.NewMemoryRecordStore()
	writer := newTestCredentialService(t, records, otherKey, &testClock{now: baseTime})
	reader := newTestCredentialService(t, records, testKey, &testClock{now: baseTime})
	created := createCredential(t, writer, 7, "GitHub", "hunter2")

	_, err := reader.Get(ctx, 7, created.ID)

	require.ErrorIs(t, err, ErrDecryptionFailure)
}

func TestCredentialService_ListIsolatesCorruptedRecords(t *testing.T) {
	// Arrange
	ctx := testContext()
	records := store.NewMemoryRecordStore()
	clock := &testClock{now: baseTime}
	s := newTestCredentialService(t, records, testKey, clock)

	ids := make([]string, 0, 5)
	for i := range 5 {
		clock.Advance(time.Second)
		ids = append(ids, createCredential(t, s, 7, fmt.Sprintf("site-%d", i), fmt.Sprintf("pw-%d", i)).ID)
	}
	createCredential(t, s, 9, "someone else", "theirs")

	_, err := records.Update(ctx, ids[2], models.RecordPatch{
		Attributes: map[string]string{"authTag": "00000000000000000000000000000000"},
		UpdatedAt:  clock.now,
	})
	require.NoError(t, err)

	// Act
	list, err := s.List(ctx, 7)

	// Assert
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i, c := range list {
		assert.Equal(t, ids[i], c.ID)
		if i == 2 {
			assert.True(t, c.HasError)
			assert.Equal(t, []string{FieldPassword}, c.FieldErrors)
			assert.Nil(t, c.Password)
			assert.Equal(t, "site-2", c.Title)
			continue
		}
		assert.False(t, c.HasError)
		require.NotNil(t, c.Password)
		assert.Equal(t, fmt.Sprintf("pw-%d", i), *c.Password)
	}
}

func TestCredentialService_ListEmpty(t *testing.T) {
	s := newTestCredentialService(t, store.NewMemoryRecordStore(), testKey, &testClock{now: baseTime})

	list, err := s.List(testContext(), 7)

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCredentialService_ListHonoursCancellation(t *testing.T) {
	records := store.NewMemoryRecordStore()
	s := newTestCredentialService(t, records, testKey, &testClock{now: baseTime})
	createCredential(t, s, 7, "GitHub", "hunter2")

	ctx, cancel := context.WithCancel(testContext())
	cancel()

	_, err := s.List(ctx, 7)

	require.ErrorIs(t, err, context.Canceled)
}
