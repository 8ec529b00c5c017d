package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authgate/core/config"
)

type serverConfig struct {
	Port int    `env:"TEST_CFG_PORT" envDefault:"8000"`
	Host string `env:"TEST_CFG_HOST" envDefault:"localhost"`
}

type timeoutConfig struct {
	Session    time.Duration `env:"TEST_CFG_SESSION" envDefault:"6h"`
	Inactivity time.Duration `env:"TEST_CFG_INACTIVITY" envDefault:"30m"`
}

type requiredConfig struct {
	Key string `env:"TEST_CFG_REQUIRED_KEY,required"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "localhost", cfg.Host)
}

func TestLoadDurations(t *testing.T) {
	t.Setenv("TEST_CFG_SESSION", "2h")

	var cfg timeoutConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 2*time.Hour, cfg.Session)
	assert.Equal(t, 30*time.Minute, cfg.Inactivity)
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("TEST_CFG_SESSION", "2h")

	var first timeoutConfig
	require.NoError(t, config.Load(&first))

	// A later change to the environment must not affect the cached value.
	t.Setenv("TEST_CFG_SESSION", "15m")

	var second timeoutConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoadRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_CFG_REQUIRED_KEY")
}

func TestLoadNil(t *testing.T) {
	t.Parallel()
	var cfg *serverConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
}

func TestMustLoadPanics(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
