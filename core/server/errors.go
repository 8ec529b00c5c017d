package server

import "errors"

var (
	// ErrServerAlreadyRunning is returned by Start on a server that is
	// already serving.
	ErrServerAlreadyRunning = errors.New("server already running")
	// ErrMissingAddress is returned when no listen address is configured.
	ErrMissingAddress = errors.New("server address is required")
)
