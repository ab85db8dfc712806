package server

import "context"

// Server defines the lifecycle contract for transport servers managed by this
// package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled, a
	// termination signal arrives or the listener fails.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
