package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("CAPI_PROVIDER_HOST", "")
	t.Setenv("CAPI_SEND_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "tr.snapchat.com", cfg.ProviderHost)
	assert.Equal(t, 5*time.Second, cfg.SendTimeout)
	assert.False(t, cfg.RecordOutcomes())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/capi?sslmode=disable")
	t.Setenv("CAPI_PROVIDER_HOST", "capi.example.test")
	t.Setenv("CAPI_SEND_TIMEOUT", "750ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "capi.example.test", cfg.ProviderHost)
	assert.Equal(t, 750*time.Millisecond, cfg.SendTimeout)
	assert.True(t, cfg.RecordOutcomes())
}

func TestLoad_InvalidTimeout(t *testing.T) {
	for _, v := range []string{"soon", "-1s", "0s"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("CAPI_SEND_TIMEOUT", v)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "CAPI_SEND_TIMEOUT")
		})
	}
}
