// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) createPaymentCard(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.createPaymentCard"

	ownerID, ok := ownerIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreatePaymentCardRequest
	if !decodeJSONBody(w, r, &req, funcName) {
		return
	}

	card, err := h.services.PaymentCardService.Create(r.Context(), ownerID, req)
	if err != nil {
		writeServiceError(w, r, err, funcName)
		return
	}

	writeJSON(w, r, card, http.StatusCreated, funcName)
}

func (h *Handler) getPaymentCard(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.getPaymentCard"

	ownerID, ok := ownerIDFromRequest(w, r)
	if !ok {
		return
	}

	card, err := h.services.PaymentCardService.Get(r.Context(), ownerID, recordIDFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err, funcName)
		return
	}

	writeJSON(w, r, card, http.StatusOK, funcName)
}

func (h *Handler) listPaymentCards(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.listPaymentCards"

	ownerID, ok := ownerIDFromRequest(w, r)
	if !ok {
		return
	}

	cards, err := h.services.PaymentCardService.List(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, err, funcName)
		return
	}
	if cards == nil {
		cards = []models.PaymentCard{}
	}

	writeJSON(w, r, cards, http.StatusOK, funcName)
}

func (h *Handler) updatePaymentCard(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.updatePaymentCard"

	ownerID, ok := ownerIDFromRequest(w, r)
	if !ok {
		return
	}

	var patch models.PaymentCardPatch
	if !decodeJSONBody(w, r, &patch, funcName) {
		return
	}

	card, err := h.services.PaymentCardService.Update(r.Context(), ownerID, recordIDFromRequest(r), patch)
	if err != nil {
		writeServiceError(w, r, err, funcName)
		return
	}

	writeJSON(w, r, card, http.StatusOK, funcName)
}

func (h *Handler) deletePaymentCard(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.PaymentCardService.Delete(r.Context(), ownerID, recordIDFromRequest(r)); err != nil {
		writeServiceError(w, r, err, "*Handler.deletePaymentCard")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
