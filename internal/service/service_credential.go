// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/codec"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Credential attribute names. The password is the only sensitive field and
// is stored as iv / encryptedPassword / authTag.
const (
	FieldPassword = "password"

	AttrTitle    = "title"
	AttrUsername = "username"
	AttrURL      = "url"
	AttrCategory = "category"
	AttrNotes    = "notes"
)

// CredentialFields declares the encrypted fields of a credential record.
func CredentialFields() []codec.FieldDescriptor {
	return []codec.FieldDescriptor{codec.SoleField(FieldPassword)}
}

type credentialService struct {
	core *recordCore
}

// NewCredentialService constructs a [CredentialService] persisting into
// records and encrypting with engine. concurrency bounds list decoding.
func NewCredentialService(records store.RecordStore, engine crypto.EncryptionEngine, concurrency int) (CredentialService, error) {
	c, err := codec.New(engine, CredentialFields()...)
	if err != nil {
		return nil, err
	}

	return &credentialService{
		core: newRecordCore(records, c, models.KindCredential, concurrency),
	}, nil
}

func (s *credentialService) Create(ctx context.Context, ownerID int64, req models.CreateCredentialRequest) (models.Credential, error) {
	plain := make(map[string]string, 5)
	setIfNotEmpty(plain, AttrTitle, req.Title)
	setIfNotEmpty(plain, AttrUsername, req.Username)
	setIfNotEmpty(plain, AttrURL, req.URL)
	setIfNotEmpty(plain, AttrCategory, req.Category)
	setIfNotEmpty(plain, AttrNotes, req.Notes)

	record, err := s.core.create(ctx, ownerID, map[string]string{FieldPassword: req.Password}, plain)
	if err != nil {
		return models.Credential{}, err
	}

	password := req.Password
	return credentialProjection(record, codec.DecodeResult{
		Fields: map[string]*string{FieldPassword: &password},
	}), nil
}

func (s *credentialService) Get(ctx context.Context, ownerID int64, id string) (models.Credential, error) {
	record, result, err := s.core.get(ctx, ownerID, id)
	if err != nil {
		return models.Credential{}, err
	}

	return credentialProjection(record, result), nil
}

func (s *credentialService) List(ctx context.Context, ownerID int64) ([]models.Credential, error) {
	records, results, err := s.core.list(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	credentials := make([]models.Credential, len(records))
	for i := range records {
		credentials[i] = credentialProjection(records[i], results[i])
	}

	return credentials, nil
}

func (s *credentialService) Update(ctx context.Context, ownerID int64, id string, patch models.CredentialPatch) (models.Credential, error) {
	sensitive := make(map[string]string, 1)
	setIfPresent(sensitive, FieldPassword, patch.Password)

	plain := make(map[string]string, 5)
	setIfPresent(plain, AttrTitle, patch.Title)
	setIfPresent(plain, AttrUsername, patch.Username)
	setIfPresent(plain, AttrURL, patch.URL)
	setIfPresent(plain, AttrCategory, patch.Category)
	setIfPresent(plain, AttrNotes, patch.Notes)

	record, result, err := s.core.update(ctx, ownerID, id, sensitive, plain)
	if err != nil {
		return models.Credential{}, err
	}

	return credentialProjection(record, result), nil
}

func (s *credentialService) Delete(ctx context.Context, ownerID int64, id string) error {
	return s.core.delete(ctx, ownerID, id)
}

func credentialProjection(record models.Record, result codec.DecodeResult) models.Credential {
	return models.Credential{
		ID:          record.ID,
		OwnerID:     record.OwnerID,
		Title:       record.Attributes[AttrTitle],
		Username:    record.Attributes[AttrUsername],
		Password:    result.Fields[FieldPassword],
		URL:         record.Attributes[AttrURL],
		Category:    record.Attributes[AttrCategory],
		Notes:       record.Attributes[AttrNotes],
		FieldErrors: result.FieldErrorNames(),
		HasError:    result.HasError,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}
