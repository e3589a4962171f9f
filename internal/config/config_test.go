package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Zero(t, cfg.RateLimit.RPS)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

func TestLoadConfigInvalidEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "many")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	v := viper.New()
	v.Set("server.port", "7000")
	v.Set("log.level", "debug")
	v.Set("rate_limit.rps", 10)

	ApplyOverrides(cfg, v)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "unset keys keep their value")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10.0, cfg.RateLimit.RPS)
}
