// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldOwnerID        = "owner_id"
	FieldTitle          = "title"
	FieldPassword       = "password"
	FieldCardNumber     = "card_number"
	FieldCardholderName = "cardholder_name"
	FieldExpiryDate     = "expiry_date"
	FieldCVV            = "cvv"
	FieldPlainText      = "plain_text"
	FieldNotEmptyPatch  = "not_empty_patch"
)

// maxPlainTextLength bounds free-form plaintext metadata (titles, notes, ...).
const maxPlainTextLength = 4096

// RecordValidator implements [Validator] for the create requests and update
// patches of credentials and payment cards.
//
// Sensitive fields in a patch are only checked when present: a nil pointer
// means "leave the stored value untouched".
type RecordValidator struct{}

// NewRecordValidator constructs a [RecordValidator] as a [Validator].
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// CreateCredentialRequest, CredentialPatch, CreatePaymentCardRequest and
// PaymentCardPatch are supported; anything else yields ErrUnsupportedType.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateCredentialRequest:
		return v.validateCreateCredential(value, fields...)
	case *models.CreateCredentialRequest:
		return v.validateCreateCredential(*value, fields...)

	case models.CredentialPatch:
		return v.validateCredentialPatch(value, fields...)
	case *models.CredentialPatch:
		return v.validateCredentialPatch(*value, fields...)

	case models.CreatePaymentCardRequest:
		return v.validateCreatePaymentCard(value, fields...)
	case *models.CreatePaymentCardRequest:
		return v.validateCreatePaymentCard(*value, fields...)

	case models.PaymentCardPatch:
		return v.validatePaymentCardPatch(value, fields...)
	case *models.PaymentCardPatch:
		return v.validatePaymentCardPatch(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateCreateCredential(req models.CreateCredentialRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldTitle, FieldPassword, FieldPlainText}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if req.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPlainText:
			if !withinLimit(req.Title, req.Username, req.URL, req.Category, req.Notes, req.Password) {
				return ErrFieldTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateCredentialPatch(patch models.CredentialPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmptyPatch, FieldTitle, FieldPassword, FieldPlainText}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmptyPatch:
			if patch.Title == nil && patch.Username == nil && patch.Password == nil &&
				patch.URL == nil && patch.Category == nil && patch.Notes == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldPassword:
			if patch.Password != nil && *patch.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPlainText:
			if !withinLimit(deref(patch.Title), deref(patch.Username), deref(patch.URL),
				deref(patch.Category), deref(patch.Notes), deref(patch.Password)) {
				return ErrFieldTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateCreatePaymentCard(req models.CreatePaymentCardRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldCardNumber, FieldCardholderName, FieldExpiryDate, FieldCVV, FieldPlainText}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if req.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldCardNumber:
			if !isValidCardNumber(req.CardNumber) {
				return ErrInvalidCardNumber
			}
		case FieldCardholderName:
			if strings.TrimSpace(req.CardholderName) == "" {
				return ErrEmptyCardholderName
			}
		case FieldExpiryDate:
			if !isValidExpiryDate(req.ExpiryDate) {
				return ErrInvalidExpiryDate
			}
		case FieldCVV:
			if !isValidCVV(req.CVV) {
				return ErrInvalidCVV
			}
		case FieldPlainText:
			if !withinLimit(req.CardholderName, req.BankName, req.Category, req.Notes) {
				return ErrFieldTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validatePaymentCardPatch(patch models.PaymentCardPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmptyPatch, FieldCardNumber, FieldCardholderName, FieldExpiryDate, FieldCVV, FieldPlainText}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmptyPatch:
			if patch.CardNumber == nil && patch.CardholderName == nil && patch.ExpiryDate == nil &&
				patch.CVV == nil && patch.BankName == nil && patch.Category == nil && patch.Notes == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldCardNumber:
			if patch.CardNumber != nil && !isValidCardNumber(*patch.CardNumber) {
				return ErrInvalidCardNumber
			}
		case FieldCardholderName:
			if patch.CardholderName != nil && strings.TrimSpace(*patch.CardholderName) == "" {
				return ErrEmptyCardholderName
			}
		case FieldExpiryDate:
			if patch.ExpiryDate != nil && !isValidExpiryDate(*patch.ExpiryDate) {
				return ErrInvalidExpiryDate
			}
		case FieldCVV:
			if patch.CVV != nil && !isValidCVV(*patch.CVV) {
				return ErrInvalidCVV
			}
		case FieldPlainText:
			if !withinLimit(deref(patch.CardholderName), deref(patch.BankName), deref(patch.Category), deref(patch.Notes)) {
				return ErrFieldTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func withinLimit(values ...string) bool {
	for _, s := range values {
		if utf8.RuneCountInString(s) > maxPlainTextLength {
			return false
		}
	}
	return true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
