// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// CredentialValidationService rejects malformed input before the wrapped
// service does any encryption or storage work.
type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *CredentialValidationService) Wrap(inner CredentialService) CredentialService {
	v.inner = inner
	return v
}

func (v *CredentialValidationService) Create(ctx context.Context, ownerID int64, req models.CreateCredentialRequest) (models.Credential, error) {
	req.OwnerID = ownerID
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Credential{}, validationError(err)
	}

	return v.inner.Create(ctx, ownerID, req)
}

func (v *CredentialValidationService) Get(ctx context.Context, ownerID int64, id string) (models.Credential, error) {
	if err := validateAddress(ownerID, id); err != nil {
		return models.Credential{}, err
	}

	return v.inner.Get(ctx, ownerID, id)
}

func (v *CredentialValidationService) List(ctx context.Context, ownerID int64) ([]models.Credential, error) {
	if ownerID <= 0 {
		return nil, validationError(validators.ErrInvalidOwnerID)
	}

	return v.inner.List(ctx, ownerID)
}

func (v *CredentialValidationService) Update(ctx context.Context, ownerID int64, id string, patch models.CredentialPatch) (models.Credential, error) {
	if err := validateAddress(ownerID, id); err != nil {
		return models.Credential{}, err
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Credential{}, validationError(err)
	}

	return v.inner.Update(ctx, ownerID, id, patch)
}

func (v *CredentialValidationService) Delete(ctx context.Context, ownerID int64, id string) error {
	if err := validateAddress(ownerID, id); err != nil {
		return err
	}

	return v.inner.Delete(ctx, ownerID, id)
}

// PaymentCardValidationService is the payment card counterpart of
// [CredentialValidationService].
type PaymentCardValidationService struct {
	inner     PaymentCardService
	validator validators.Validator
}

func NewPaymentCardValidationService() PaymentCardServiceWrapper {
	return &PaymentCardValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *PaymentCardValidationService) Wrap(inner PaymentCardService) PaymentCardService {
	v.inner = inner
	return v
}

func (v *PaymentCardValidationService) Create(ctx context.Context, ownerID int64, req models.CreatePaymentCardRequest) (models.PaymentCard, error) {
	req.OwnerID = ownerID
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PaymentCard{}, validationError(err)
	}

	return v.inner.Create(ctx, ownerID, req)
}

func (v *PaymentCardValidationService) Get(ctx context.Context, ownerID int64, id string) (models.PaymentCard, error) {
	if err := validateAddress(ownerID, id); err != nil {
		return models.PaymentCard{}, err
	}

	return v.inner.Get(ctx, ownerID, id)
}

func (v *PaymentCardValidationService) List(ctx context.Context, ownerID int64) ([]models.PaymentCard, error) {
	if ownerID <= 0 {
		return nil, validationError(validators.ErrInvalidOwnerID)
	}

	return v.inner.List(ctx, ownerID)
}

func (v *PaymentCardValidationService) Update(ctx context.Context, ownerID int64, id string, patch models.PaymentCardPatch) (models.PaymentCard, error) {
	if err := validateAddress(ownerID, id); err != nil {
		return models.PaymentCard{}, err
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.PaymentCard{}, validationError(err)
	}

	return v.inner.Update(ctx, ownerID, id, patch)
}

func (v *PaymentCardValidationService) Delete(ctx context.Context, ownerID int64, id string) error {
	if err := validateAddress(ownerID, id); err != nil {
		return err
	}

	return v.inner.Delete(ctx, ownerID, id)
}

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// validateAddress checks the owner id and treats an empty record id as a
// record that does not exist.
func validateAddress(ownerID int64, id string) error {
	if ownerID <= 0 {
		return validationError(validators.ErrInvalidOwnerID)
	}
	if id == "" {
		return ErrNotFound
	}
	return nil
}
