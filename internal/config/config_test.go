package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GATEWAY_VALHALLA_URL", "http://localhost:8002")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "http://localhost:8002", cfg.ValhallaURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, uint64(2), cfg.MaxRetries)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GATEWAY_VALHALLA_URL", "https://valhalla.example.com")
	t.Setenv("GATEWAY_VALHALLA_API_KEY", "secret")
	t.Setenv("GATEWAY_PORT", "9090")
	t.Setenv("GATEWAY_APP_ENV", "production")
	t.Setenv("GATEWAY_REQUEST_TIMEOUT", "3s")
	t.Setenv("GATEWAY_MAX_RETRIES", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Port, "bare port numbers are normalized to listen addresses")
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "secret", cfg.ValhallaAPIKey)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, uint64(5), cfg.MaxRetries)
}

func TestLoad_MissingUpstreamURL(t *testing.T) {
	t.Setenv("GATEWAY_VALHALLA_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GATEWAY_VALHALLA_URL")
}
