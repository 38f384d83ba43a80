// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the record services: owner-scoped CRUD over
// credentials and payment cards whose sensitive fields are encrypted at rest.
//
// Every operation takes the caller's owner id. A record owned by someone
// else is reported exactly like a record that does not exist.
package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

type CredentialService interface {
	Create(ctx context.Context, ownerID int64, req models.CreateCredentialRequest) (models.Credential, error)
	Get(ctx context.Context, ownerID int64, id string) (models.Credential, error)
	List(ctx context.Context, ownerID int64) ([]models.Credential, error)
	Update(ctx context.Context, ownerID int64, id string, patch models.CredentialPatch) (models.Credential, error)
	Delete(ctx context.Context, ownerID int64, id string) error
}

type PaymentCardService interface {
	Create(ctx context.Context, ownerID int64, req models.CreatePaymentCardRequest) (models.PaymentCard, error)
	Get(ctx context.Context, ownerID int64, id string) (models.PaymentCard, error)
	List(ctx context.Context, ownerID int64) ([]models.PaymentCard, error)
	Update(ctx context.Context, ownerID int64, id string, patch models.PaymentCardPatch) (models.PaymentCard, error)
	Delete(ctx context.Context, ownerID int64, id string) error
}

// CredentialServiceWrapper defines middleware composition for CredentialService.
// Implementations wrap an existing CredentialService to add behavior such as
// validation.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}

// PaymentCardServiceWrapper defines middleware composition for PaymentCardService.
type PaymentCardServiceWrapper interface {
	Wrap(PaymentCardService) PaymentCardService
}
