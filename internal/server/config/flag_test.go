package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_OverridesConfig(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", ":7070", "-d", "postgres://flag", "-s", "flag-secret", "-t", "5"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, cfg.EndpointAddr, ":7070")
	assert.Equal(t, cfg.DatabaseDSN, "postgres://flag")
	assert.Equal(t, cfg.SecretKey, "flag-secret")
	assert.Equal(t, cfg.AccessTokenValidityDuration, 5*time.Minute)
}

func Test_parseFlags_KeepsDefaultsWhenAbsent(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, cfg.EndpointAddr, ":8080")
	assert.Equal(t, cfg.AccessTokenValidityDuration, 15*time.Minute)
}
