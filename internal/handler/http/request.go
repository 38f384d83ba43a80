// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/go-chi/chi/v5"
)

const maxRequestBodyBytes = 1 << 20

// ownerIDFromRequest returns the owner id placed in the context by auth.
// It answers 401 itself when the id is missing.
func ownerIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("owner id is missing from request context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return ownerID, true
}

func recordIDFromRequest(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// decodeJSONBody decodes the request body into dst and answers 400 on
// failure. The body is capped at maxRequestBodyBytes.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any, funcName string) bool {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int, funcName string) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}
