// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the vault server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a termination
	// signal arrives, then shuts down gracefully. It returns the first
	// error that stopped the listener.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting at most until ctx is
	// done for in-flight requests.
	Shutdown(ctx context.Context) error
}
