package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// GatewayConfig holds all configuration for the routing gateway.
type GatewayConfig struct {
	Port           string
	AppEnv         string
	ValhallaURL    string
	ValhallaAPIKey string
	RequestTimeout time.Duration
	MaxRetries     uint64
}

// Load reads configuration from GATEWAY_-prefixed environment variables.
func Load() (*GatewayConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("GATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("MAX_RETRIES", 2)

	cfg := &GatewayConfig{
		Port:           normalizePort(v.GetString("PORT")),
		AppEnv:         v.GetString("APP_ENV"),
		ValhallaURL:    v.GetString("VALHALLA_URL"),
		ValhallaAPIKey: v.GetString("VALHALLA_API_KEY"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		MaxRetries:     v.GetUint64("MAX_RETRIES"),
	}

	if cfg.ValhallaURL == "" {
		return nil, fmt.Errorf("GATEWAY_VALHALLA_URL is required")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("GATEWAY_REQUEST_TIMEOUT must be positive")
	}

	return cfg, nil
}

// normalizePort accepts "8080" or ":8080" and returns a listen address.
func normalizePort(port string) string {
	if port == "" || strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
