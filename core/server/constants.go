package server

import "time"

const (
	// DefaultReadTimeout bounds reading one full request.
	DefaultReadTimeout = 30 * time.Second
	// DefaultWriteTimeout bounds writing one full response. It must stay
	// above the router's per-request timeout or slow handlers get cut off
	// without a response.
	DefaultWriteTimeout = 30 * time.Second
	// DefaultIdleTimeout bounds keep-alive connections between requests.
	DefaultIdleTimeout = 60 * time.Second
	// DefaultShutdownTimeout is the drain deadline for in-flight requests.
	DefaultShutdownTimeout = 10 * time.Second
	// DefaultMaxHeaderBytes caps request headers at 1 MiB.
	DefaultMaxHeaderBytes = 1 << 20
)
