package session

import "time"

// Config bounds every session's lifetime. Process-wide, immutable after
// startup.
type Config struct {
	// SessionTimeout is the absolute lifetime of a session from login.
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT" envDefault:"6h"`
	// InactivityTimeout is the maximum gap between successful validations.
	InactivityTimeout time.Duration `env:"INACTIVITY_TIMEOUT" envDefault:"30m"`
}
