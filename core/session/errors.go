package session

import "errors"

var (
	// ErrNoSession is returned when a record cannot be found in the store,
	// or when a record's pinned IP does not match the caller's.
	ErrNoSession = errors.New("session not found")
	// ErrExpired is returned when a record has passed its expiry or its
	// inactivity window.
	ErrExpired = errors.New("session has expired")
	// ErrIDGeneration is returned when the system entropy source fails.
	ErrIDGeneration = errors.New("failed to generate session id")
)
