// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.createCredential"

	ownerID, ok := ownerIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateCredentialRequest
	if !decodeJSONBody(w, r, &req, funcName) {
		return
	}

	credential, err := h.services.CredentialService.Create(r.Context(), ownerID, req)
	if err != nil {
		writeServiceError(w, r, err, funcName)
		return
	}

	writeJSON(w, r, credential, http.StatusCreated, funcName)
}

func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.getCredential"

	ownerID, ok := ownerIDFromRequest(w, r)
	if !ok {
		return
	}

	credential, err := h.services.CredentialService.Get(r.Context(), ownerID, recordIDFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err, funcName)
		return
	}

	writeJSON(w, r, credential, http.StatusOK, funcName)
}

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.listCredentials"

	ownerID, ok := ownerIDFromRequest(w, r)
	if !ok {
		return
	}

	credentials, err := h.services.CredentialService.List(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, err, funcName)
		return
	}
	if credentials == nil {
		credentials = []models.Credential{}
	}

	writeJSON(w, r, credentials, http.StatusOK, funcName)
}

func (h *Handler) updateCredential(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.updateCredential"

	ownerID, ok := ownerIDFromRequest(w, r)
	if !ok {
		return
	}

	var patch models.CredentialPatch
	if !decodeJSONBody(w, r, &patch, funcName) {
		return
	}

	credential, err := h.services.CredentialService.Update(r.Context(), ownerID, recordIDFromRequest(r), patch)
	if err != nil {
		writeServiceError(w, r, err, funcName)
		return
	}

	writeJSON(w, r, credential, http.StatusOK, funcName)
}

func (h *Handler) deleteCredential(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.CredentialService.Delete(r.Context(), ownerID, recordIDFromRequest(r)); err != nil {
		writeServiceError(w, r, err, "*Handler.deleteCredential")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
