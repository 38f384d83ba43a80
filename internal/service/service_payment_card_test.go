// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCardRequest() models.CreatePaymentCardRequest {
	return models.CreatePaymentCardRequest{
		CardNumber:     "4111111111111111",
		CardholderName: "Jane Doe",
		ExpiryDate:     "12/29",
		CVV:            "123",
		BankName:       "ACME Bank",
		Category:       "personal",
	}
}

func TestPaymentCardService_CreateAndGet(t *testing.T) {
	ctx := testContext()
	records := store.NewMemoryRecordStore()
	s := newTestPaymentCardService(t, records, testKey, &testClock{now: baseTime})

	created, err := s.Create(ctx, 7, validCardRequest())
	require.NoError(t, err)
	got, err := s.Get(ctx, 7, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "1111", created.Last4Digits)
	assert.Equal(t, "1111", got.Last4Digits)
	assert.Equal(t, "4111111111111111", *got.CardNumber)
	assert.Equal(t, "Jane Doe", *got.CardholderName)
	assert.Equal(t, "12/29", *got.ExpiryDate)
	assert.Equal(t, "123", *got.CVV)
	assert.Equal(t, "ACME Bank", got.BankName)
	assert.Equal(t, "personal", got.Category)
	assert.False(t, got.HasError)

	stored, err := records.Get(ctx, created.ID)
	require.NoError(t, err)
	for _, field := range []string{"CardNumber", "CardholderName", "ExpiryDate", "Cvv"} {
		assert.NotEmpty(t, stored.Attributes["iv"+field], field)
		assert.NotEmpty(t, stored.Attributes["encrypted"+field], field)
		assert.NotEmpty(t, stored.Attributes["authTag"+field], field)
	}
	assert.NotContains(t, stored.Attributes, FieldCardNumber)
	assert.NotContains(t, stored.Attributes, FieldCVV)
}

func TestPaymentCardService_NormalizesCardNumber(t *testing.T) {
	ctx := testContext()
	s := newTestPaymentCardService(t, store.NewMemoryRecordStore(), testKey, &testClock{now: baseTime})
	req := validCardRequest()
	req.CardNumber = "5500 0000-0000 0004"

	created, err := s.Create(ctx, 7, req)
	require.NoError(t, err)
	got, err := s.Get(ctx, 7, created.ID)

	require.NoError(t, err)
	assert.Equal(t, "5500000000000004", *got.CardNumber)
	assert.Equal(t, "0004", got.Last4Digits)
}

func TestPaymentCardService_UpdateCardNumberRecomputesLast4(t *testing.T) {
	// Arrange
	ctx := testContext()
	records := store.NewMemoryRecordStore()
	clock := &testClock{now: baseTime}
	s := newTestPaymentCardService(t, records, testKey, clock)
	created, err := s.Create(ctx, 7, validCardRequest())
	require.NoError(t, err)
	require.Equal(t, "1111", created.Last4Digits)
	before, err := records.Get(ctx, created.ID)
	require.NoError(t, err)
	clock.Advance(time.Minute)

	// Act
	updated, err := s.Update(ctx, 7, created.ID, models.PaymentCardPatch{CardNumber: ptr("5500000000000004")})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "0004", updated.Last4Digits)
	assert.Equal(t, "5500000000000004", *updated.CardNumber)
	assert.Equal(t, "123", *updated.CVV)

	after, err := records.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "0004", after.Attributes[AttrLast4Digits])
	assert.NotEqual(t, before.Attributes["ivCardNumber"], after.Attributes["ivCardNumber"])
	assert.NotEqual(t, before.Attributes["authTagCardNumber"], after.Attributes["authTagCardNumber"])
	for _, key := range []string{"ivCvv", "encryptedCvv", "authTagCvv", "ivExpiryDate", "encryptedExpiryDate", "authTagExpiryDate"} {
		assert.Equal(t, before.Attributes[key], after.Attributes[key], key)
	}
	assert.Equal(t, baseTime.Add(time.Minute), after.UpdatedAt)
}

func TestPaymentCardService_UpdateWithoutNumberKeepsLast4(t *testing.T) {
	ctx := testContext()
	s := newTestPaymentCardService(t, store.NewMemoryRecordStore(), testKey, &testClock{now: baseTime})
	created, err := s.Create(ctx, 7, validCardRequest())
	require.NoError(t, err)

	updated, err := s.Update(ctx, 7, created.ID, models.PaymentCardPatch{BankName: ptr("Other Bank"), ExpiryDate: ptr("01/30")})

	require.NoError(t, err)
	assert.Equal(t, "1111", updated.Last4Digits)
	assert.Equal(t, "Other Bank", updated.BankName)
	assert.Equal(t, "01/30", *updated.ExpiryDate)
}

func TestPaymentCardService_FieldIsolation(t *testing.T) {
	// Arrange
	ctx := testContext()
	records := store.NewMemoryRecordStore()
	s := newTestPaymentCardService(t, records, testKey, &testClock{now: baseTime})
	created, err := s.Create(ctx, 7, validCardRequest())
	require.NoError(t, err)

	stored, err := records.Get(ctx, created.ID)
	require.NoError(t, err)
	tag := []byte(stored.Attributes["authTagExpiryDate"])
	if tag[0] == '0' {
		tag[0] = '1'
	} else {
		tag[0] = '0'
	}
	_, err = records.Update(ctx, created.ID, models.RecordPatch{
		Attributes: map[string]string{"authTagExpiryDate": string(tag)},
		UpdatedAt:  baseTime,
	})
	require.NoError(t, err)

	// Act
	got, err := s.Get(ctx, 7, created.ID)

	// Assert
	require.NoError(t, err)
	assert.True(t, got.HasError)
	assert.Equal(t, []string{FieldExpiryDate}, got.FieldErrors)
	assert.Nil(t, got.ExpiryDate)
	assert.Equal(t, "4111111111111111", *got.CardNumber)
	assert.Equal(t, "Jane Doe", *got.CardholderName)
	assert.Equal(t, "123", *got.CVV)
}

func TestPaymentCardService_AllFieldsCorruptedIsFatal(t *testing.T) {
	ctx := testContext()
	records := store.NewMemoryRecordStore()
	writer := newTestPaymentCardService(t, records, otherKey, &testClock{now: baseTime})
	reader := newTestPaymentCardService(t, records, testKey, &testClock{now: baseTime})
	created, err := writer.Create(ctx, 7, validCardRequest())
	require.NoError(t, err)

	_, err = reader.Get(ctx, 7, created.ID)
	require.ErrorIs(t, err, ErrDecryptionFailure)

	list, err := reader.List(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].HasError)
	assert.Len(t, list[0].FieldErrors, 4)
	assert.Equal(t, "1111", list[0].Last4Digits)
}

func TestPaymentCardService_OwnershipAndDelete(t *testing.T) {
	ctx := testContext()
	s := newTestPaymentCardService(t, store.NewMemoryRecordStore(), testKey, &testClock{now: baseTime})
	created, err := s.Create(ctx, 7, validCardRequest())
	require.NoError(t, err)

	_, err = s.Get(ctx, 8, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, 8, created.ID), ErrNotFound)

	require.NoError(t, s.Delete(ctx, 7, created.ID))
	_, err = s.Get(ctx, 7, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
