package translator_test

import (
	"testing"

	"conversions-adapter/internal/conversions/core/domain"
	"conversions-adapter/internal/conversions/core/translator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_Success(t *testing.T) {
	cfg, err := translator.ResolveConfig(sampleSettings())
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.AccessToken)
	assert.Equal(t, "pixel-1", cfg.DestinationID)
	assert.Nil(t, cfg.TestEventCode)
}

func TestResolveConfig_WithTestEventCode(t *testing.T) {
	cfg, err := translator.ResolveConfig(sampleSettingsWithTestCode())
	require.NoError(t, err)

	require.NotNil(t, cfg.TestEventCode)
	assert.Equal(t, "abcd", *cfg.TestEventCode)
}

func TestResolveConfig_MissingCredential(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.Dict
		missing  string
	}{
		{
			name:     "empty settings",
			settings: domain.Dict{},
			missing:  "access-token",
		},
		{
			name:     "only access token",
			settings: domain.Dict{{"access-token", "abc"}},
			missing:  "destination-id",
		},
		{
			name:     "only destination id",
			settings: domain.Dict{{"destination-id", "pixel-1"}, {"test-event-code", "x"}},
			missing:  "access-token",
		},
		{
			name:     "keys are case sensitive",
			settings: domain.Dict{{"Access-Token", "abc"}, {"destination-id", "pixel-1"}},
			missing:  "access-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := translator.ResolveConfig(tt.settings)
			require.ErrorIs(t, err, translator.ErrMissingCredential)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestResolveConfig_EmptyValuesAccepted(t *testing.T) {
	cfg, err := translator.ResolveConfig(domain.Dict{{"access-token", ""}, {"destination-id", ""}})
	require.NoError(t, err)
	assert.Empty(t, cfg.AccessToken)
	assert.Empty(t, cfg.DestinationID)
}

func TestResolveConfig_LastDuplicateWins(t *testing.T) {
	cfg, err := translator.ResolveConfig(domain.Dict{
		{"access-token", "old"},
		{"destination-id", "pixel-1"},
		{"access-token", "new"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new", cfg.AccessToken)
}
