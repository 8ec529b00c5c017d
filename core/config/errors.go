package config

import "errors"

// ErrNilConfig is returned when Load receives a nil destination.
var ErrNilConfig = errors.New("config: nil destination")
