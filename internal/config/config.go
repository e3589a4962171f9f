package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8000"`
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	RequestTimeout  time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// RateLimitConfig configures the global request limiter. An RPS of zero disables it.
type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"0"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Debug("configuration loaded successfully")
	return &cfg, nil
}

// ApplyOverrides copies every key that is set in v (flag, config file or
// PROMPTGEN_* variable) over the environment-derived values.
func ApplyOverrides(cfg *Config, v *viper.Viper) {
	if v.IsSet("server.host") {
		cfg.Server.Host = v.GetString("server.host")
	}
	if v.IsSet("server.port") {
		cfg.Server.Port = v.GetString("server.port")
	}
	if v.IsSet("server.request_timeout") {
		cfg.Server.RequestTimeout = v.GetDuration("server.request_timeout")
	}
	if v.IsSet("rate_limit.rps") {
		cfg.RateLimit.RPS = v.GetFloat64("rate_limit.rps")
	}
	if v.IsSet("rate_limit.burst") {
		cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	}
	if v.IsSet("log.level") {
		cfg.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.format") {
		cfg.Log.Format = v.GetString("log.format")
	}
}
