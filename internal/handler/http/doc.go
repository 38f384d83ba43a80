// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the vault server.
//
// It exposes credential and payment card endpoints on top of the service
// layer. Bearer token authentication, request tracing, access logging and
// gzip handling are applied as middleware before a request reaches a
// handler. Service errors are translated to status codes by a single
// mapper so that no handler inspects error values itself.
package http
