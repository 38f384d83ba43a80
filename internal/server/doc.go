// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the vault's HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling, per-request
// timeouts and graceful shutdown.
package server
