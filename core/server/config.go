package server

import (
	"fmt"
	"time"
)

// Config is the environment-backed server configuration. Host doubles as
// the SAN of the self-signed certificate the server mints at startup.
type Config struct {
	Port int    `env:"PORT" envDefault:"8000"`
	Host string `env:"HOST" envDefault:"localhost"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// NewFromConfig builds a TLS server from cfg: it mints a self-signed
// certificate for cfg.Host and applies the configured timeouts. Options
// given here override the configuration.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Port <= 0 {
		return nil, ErrMissingAddress
	}

	tlsConfig, err := SelfSignedTLSConfig(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("server: mint certificate: %w", err)
	}

	configOpts := []Option{WithTLS(tlsConfig)}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	configOpts = append(configOpts, opts...)

	return New(fmt.Sprintf(":%d", cfg.Port), configOpts...), nil
}
