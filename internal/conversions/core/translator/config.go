package translator

import (
	"fmt"

	"conversions-adapter/internal/conversions/core/domain"

	"github.com/samber/lo"
)

// Settings keys understood by ResolveConfig.
const (
	SettingAccessToken   = "access-token"
	SettingDestinationID = "destination-id"
	SettingTestEventCode = "test-event-code"
)

// ResolveConfig extracts provider credentials from settings. Values are
// taken as-is; only the presence of the required keys is checked.
func ResolveConfig(settings domain.Dict) (domain.ProviderConfig, error) {
	accessToken, ok := settings.Get(SettingAccessToken)
	if !ok {
		return domain.ProviderConfig{}, fmt.Errorf("%w: %s", ErrMissingCredential, SettingAccessToken)
	}

	destinationID, ok := settings.Get(SettingDestinationID)
	if !ok {
		return domain.ProviderConfig{}, fmt.Errorf("%w: %s", ErrMissingCredential, SettingDestinationID)
	}

	cfg := domain.ProviderConfig{
		AccessToken:   accessToken,
		DestinationID: destinationID,
	}
	if code, ok := settings.Get(SettingTestEventCode); ok {
		cfg.TestEventCode = lo.ToPtr(code)
	}

	return cfg, nil
}

func newPayload(cfg domain.ProviderConfig) *domain.OutboundPayload {
	return &domain.OutboundPayload{
		Data:          []domain.OutboundEvent{},
		AccessToken:   cfg.AccessToken,
		DestinationID: cfg.DestinationID,
		TestEventCode: cfg.TestEventCode,
	}
}
