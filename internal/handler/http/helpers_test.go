// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/require"
)

const (
	testEncryptionKey = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="
	testSignKey       = "handler-test-sign-key"
	testIssuer        = "go-pass-vault"
)

var testApp = config.App{
	EncryptionKey: testEncryptionKey,
	TokenSignKey:  testSignKey,
	TokenIssuer:   testIssuer,
}

func newTestHandler() *Handler {
	return &Handler{
		tokenSignKey: testSignKey,
		tokenIssuer:  testIssuer,
		logger:       logger.Nop(),
	}
}

// newTestRouter wires real services over the in-memory store.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := logger.Nop()
	storages, err := store.NewStorages(context.Background(), config.Storage{}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	engine := crypto.NewEncryptionEngine(crypto.NewStaticKeyProvider(testEncryptionKey))
	services, err := service.NewServices(storages, engine, config.Workers{DecryptConcurrency: 2}, log)
	require.NoError(t, err)

	return NewHandler(services, testApp, log).Init()
}

func newStubRouter(services *service.Services) http.Handler {
	return NewHandler(services, testApp, logger.Nop()).Init()
}

func bearer(t *testing.T, ownerID int64) string {
	t.Helper()

	token, err := utils.GenerateJWTToken(testIssuer, ownerID, time.Hour, testSignKey)
	require.NoError(t, err)

	return "Bearer " + token.String()
}

func doRequest(t *testing.T, router http.Handler, method, path string, ownerID int64, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if ownerID != 0 {
		req.Header.Set("Authorization", bearer(t, ownerID))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func ptr(s string) *string { return &s }

// stubCredentialService returns err from every call.
type stubCredentialService struct {
	err error
}

func (s stubCredentialService) Create(context.Context, int64, models.CreateCredentialRequest) (models.Credential, error) {
	return models.Credential{}, s.err
}

func (s stubCredentialService) Get(context.Context, int64, string) (models.Credential, error) {
	return models.Credential{}, s.err
}

func (s stubCredentialService) List(context.Context, int64) ([]models.Credential, error) {
	return nil, s.err
}

func (s stubCredentialService) Update(context.Context, int64, string, models.CredentialPatch) (models.Credential, error) {
	return models.Credential{}, s.err
}

func (s stubCredentialService) Delete(context.Context, int64, string) error {
	return s.err
}
