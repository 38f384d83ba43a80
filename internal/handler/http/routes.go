// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every vault route and middleware attached.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(withGZipRequest, middleware.Compress(5, "application/json"))

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/credentials", func(r chi.Router) {
			r.Post("/", h.createCredential)
			r.Get("/", h.listCredentials)
			r.Get("/{id}", h.getCredential)
			r.Patch("/{id}", h.updateCredential)
			r.Delete("/{id}", h.deleteCredential)
		})

		r.Route("/api/cards", func(r chi.Router) {
			r.Post("/", h.createPaymentCard)
			r.Get("/", h.listPaymentCards)
			r.Get("/{id}", h.getPaymentCard)
			r.Patch("/{id}", h.updatePaymentCard)
			r.Delete("/{id}", h.deletePaymentCard)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
