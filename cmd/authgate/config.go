package main

import (
	"github.com/dmitrymomot/authgate/core/secret"
	"github.com/dmitrymomot/authgate/core/server"
	"github.com/dmitrymomot/authgate/core/session"
)

// Config is the whole environment surface of the gateway. Nested structs
// keep each concern's variables next to the package that consumes them.
type Config struct {
	Server  server.Config
	Session session.Config

	// SampleUsers feeds the static verifier; empty disables it.
	SampleUsers string `env:"SAMPLE_USERS" envDefault:"admin:admin;user:user"`

	// RedisURL selects the session store; empty means in-memory.
	RedisURL string `env:"REDIS_URL" envDefault:""`
	// EncryptionKey protects session keys and records at rest in Redis.
	EncryptionKey secret.Secret `env:"ENCRYPTION_KEY,required"`

	// IPIndex picks the client address out of x-forwarded-for: -1 is the
	// last entry, -2 the one the proxy in front of us appended.
	IPIndex int `env:"IP_INDEX" envDefault:"-2"`

	// Remote verifier; enabled when AuthWSURL is non-empty.
	AuthWSURL   string        `env:"AUTH_WS_URL" envDefault:""`
	AuthWSUser  string        `env:"AUTH_WS_USER" envDefault:""`
	AuthWSPass  secret.Secret `env:"AUTH_WS_PASS" envDefault:""`
	AuthAppCode string        `env:"AUTH_APP_CODE" envDefault:""`
}
