package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	HTTPAddr     string
	LogLevel     string
	PostgresDSN  string
	ProviderHost string
	SendTimeout  time.Duration
}

// Load reads the process configuration from the environment. Provider
// credentials are not part of it: they arrive with each event.
func Load() (*Config, error) {
	var invalid []string

	get := func(key, def string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		HTTPAddr:     get("HTTP_ADDR", ":8080"),
		LogLevel:     get("LOG_LEVEL", "info"),
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		ProviderHost: get("CAPI_PROVIDER_HOST", "tr.snapchat.com"),
	}

	timeout, err := time.ParseDuration(get("CAPI_SEND_TIMEOUT", "5s"))
	if err != nil || timeout <= 0 {
		invalid = append(invalid, "CAPI_SEND_TIMEOUT")
	}
	cfg.SendTimeout = timeout

	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid environment variables: %v", invalid)
	}

	return cfg, nil
}

// RecordOutcomes reports whether a database is configured for outcome
// recording and statistics.
func (c *Config) RecordOutcomes() bool {
	return c.PostgresDSN != ""
}
