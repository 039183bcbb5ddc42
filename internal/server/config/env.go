package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the subset of Config that may be supplied through the
// environment. Empty values mean "not set" and leave the current layer alone.
type envConfig struct {
	EndpointAddr                string        `env:"SERVER_ADDRESS"`
	DatabaseDSN                 string        `env:"DATABASE_DSN"`
	SecretKey                   string        `env:"JWT_SECRET"`
	AccessTokenValidityDuration time.Duration `env:"ACCESS_TOKEN_TTL"`
}

// parseEnv overlays environment variables onto config. The environment is
// the last layer, so it wins over defaults, the JSON file, and flags.
func parseEnv(config *Config) error {
	e := envConfig{}
	if err := env.Parse(&e); err != nil {
		return err
	}

	if e.EndpointAddr != "" {
		config.EndpointAddr = e.EndpointAddr
	}
	if e.DatabaseDSN != "" {
		config.DatabaseDSN = e.DatabaseDSN
	}
	if e.SecretKey != "" {
		config.SecretKey = e.SecretKey
	}
	if e.AccessTokenValidityDuration != 0 {
		config.AccessTokenValidityDuration = e.AccessTokenValidityDuration
	}

	return nil
}
