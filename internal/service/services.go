// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type Services struct {
	CredentialService  CredentialService
	PaymentCardService PaymentCardService
}

// NewServices builds the record services over storages, each wrapped in its
// validation decorator.
func NewServices(storages *store.Storages, engine crypto.EncryptionEngine, cfg config.Workers, log *logger.Logger) (*Services, error) {
	credentials, err := NewCredentialService(storages.RecordStore, engine, cfg.DecryptConcurrency)
	if err != nil {
		return nil, err
	}

	cards, err := NewPaymentCardService(storages.RecordStore, engine, cfg.DecryptConcurrency)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("func", "NewServices").Int("decrypt_concurrency", cfg.DecryptConcurrency).Msg("services are created")

	return &Services{
		CredentialService:  NewCredentialValidationService().Wrap(credentials),
		PaymentCardService: NewPaymentCardValidationService().Wrap(cards),
	}, nil
}
