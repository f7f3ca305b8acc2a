package translator

import (
	"encoding/json"
	"fmt"

	"conversions-adapter/internal/conversions/core/domain"
)

const DefaultProviderHost = "tr.snapchat.com"

// BuildRequest assembles the outbound HTTP request for payload. Credentials
// travel in the query string only; the body holds just the events.
func BuildRequest(host string, payload *domain.OutboundPayload) (*domain.RequestDescriptor, error) {
	url := fmt.Sprintf("https://%s/v3/%s/events?access_token=%s",
		host,
		payload.DestinationID,
		payload.AccessToken,
	)
	if payload.TestEventCode != nil {
		url = fmt.Sprintf("%s&test_event_code=%s", url, *payload.TestEventCode)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	return &domain.RequestDescriptor{
		Method: "POST",
		URL:    url,
		Headers: []domain.Header{
			{Name: "content-type", Value: "application/json"},
		},
		Body:                 string(body),
		ForwardClientHeaders: true,
	}, nil
}
