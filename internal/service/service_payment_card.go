// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Payment card attribute names. The four sensitive fields are stored as
// iv<Field> / encrypted<Field> / authTag<Field>.
const (
	FieldCardNumber     = "cardNumber"
	FieldCardholderName = "cardholderName"
	FieldExpiryDate     = "expiryDate"
	FieldCVV            = "cvv"

	AttrBankName    = "bankName"
	AttrLast4Digits = "last4Digits"
)

// PaymentCardFields declares the encrypted fields of a payment card record.
func PaymentCardFields() []codec.FieldDescriptor {
	return []codec.FieldDescriptor{
		codec.Field(FieldCardNumber),
		codec.Field(FieldCardholderName),
		codec.Field(FieldExpiryDate),
		codec.Field(FieldCVV),
	}
}

type paymentCardService struct {
	core *recordCore
}

// NewPaymentCardService constructs a [PaymentCardService] persisting into
// records and encrypting with engine. concurrency bounds list decoding.
func NewPaymentCardService(records store.RecordStore, engine crypto.EncryptionEngine, concurrency int) (PaymentCardService, error) {
	c, err := codec.New(engine, PaymentCardFields()...)
	if err != nil {
		return nil, err
	}

	return &paymentCardService{
		core: newRecordCore(records, c, models.KindPaymentCard, concurrency),
	}, nil
}

// Create stores the card number in normalized digits-only form and derives
// last4Digits from it before encryption.
func (s *paymentCardService) Create(ctx context.Context, ownerID int64, req models.CreatePaymentCardRequest) (models.PaymentCard, error) {
	number := validators.NormalizeCardNumber(req.CardNumber)
	expiry := strings.TrimSpace(req.ExpiryDate)

	sensitive := map[string]string{
		FieldCardNumber:     number,
		FieldCardholderName: req.CardholderName,
		FieldExpiryDate:     expiry,
		FieldCVV:            req.CVV,
	}

	plain := make(map[string]string, 4)
	plain[AttrLast4Digits] = validators.Last4Digits(number)
	setIfNotEmpty(plain, AttrBankName, req.BankName)
	setIfNotEmpty(plain, AttrCategory, req.Category)
	setIfNotEmpty(plain, AttrNotes, req.Notes)

	record, err := s.core.create(ctx, ownerID, sensitive, plain)
	if err != nil {
		return models.PaymentCard{}, err
	}

	holder, cvv := req.CardholderName, req.CVV
	return paymentCardProjection(record, codec.DecodeResult{
		Fields: map[string]*string{
			FieldCardNumber:     &number,
			FieldCardholderName: &holder,
			FieldExpiryDate:     &expiry,
			FieldCVV:            &cvv,
		},
	}), nil
}

func (s *paymentCardService) Get(ctx context.Context, ownerID int64, id string) (models.PaymentCard, error) {
	record, result, err := s.core.get(ctx, ownerID, id)
	if err != nil {
		return models.PaymentCard{}, err
	}

	return paymentCardProjection(record, result), nil
}

func (s *paymentCardService) List(ctx context.Context, ownerID int64) ([]models.PaymentCard, error) {
	records, results, err := s.core.list(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	cards := make([]models.PaymentCard, len(records))
	for i := range records {
		cards[i] = paymentCardProjection(records[i], results[i])
	}

	return cards, nil
}

// Update recomputes last4Digits whenever the patch carries a card number.
func (s *paymentCardService) Update(ctx context.Context, ownerID int64, id string, patch models.PaymentCardPatch) (models.PaymentCard, error) {
	sensitive := make(map[string]string, 4)
	plain := make(map[string]string, 4)

	if patch.CardNumber != nil {
		number := validators.NormalizeCardNumber(*patch.CardNumber)
		sensitive[FieldCardNumber] = number
		plain[AttrLast4Digits] = validators.Last4Digits(number)
	}
	if patch.ExpiryDate != nil {
		sensitive[FieldExpiryDate] = strings.TrimSpace(*patch.ExpiryDate)
	}
	setIfPresent(sensitive, FieldCardholderName, patch.CardholderName)
	setIfPresent(sensitive, FieldCVV, patch.CVV)

	setIfPresent(plain, AttrBankName, patch.BankName)
	setIfPresent(plain, AttrCategory, patch.Category)
	setIfPresent(plain, AttrNotes, patch.Notes)

	record, result, err := s.core.update(ctx, ownerID, id, sensitive, plain)
	if err != nil {
		return models.PaymentCard{}, err
	}

	return paymentCardProjection(record, result), nil
}

func (s *paymentCardService) Delete(ctx context.Context, ownerID int64, id string) error {
	return s.core.delete(ctx, ownerID, id)
}

func paymentCardProjection(record models.Record, result codec.DecodeResult) models.PaymentCard {
	return models.PaymentCard{
		ID:             record.ID,
		OwnerID:        record.OwnerID,
		CardNumber:     result.Fields[FieldCardNumber],
		CardholderName: result.Fields[FieldCardholderName],
		ExpiryDate:     result.Fields[FieldExpiryDate],
		CVV:            result.Fields[FieldCVV],
		Last4Digits:    record.Attributes[AttrLast4Digits],
		BankName:       record.Attributes[AttrBankName],
		Category:       record.Attributes[AttrCategory],
		Notes:          record.Attributes[AttrNotes],
		FieldErrors:    result.FieldErrorNames(),
		HasError:       result.HasError,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}
