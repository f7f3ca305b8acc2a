package translator_test

import (
	"conversions-adapter/internal/conversions/core/domain"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

func sampleUserData() domain.UserData {
	return domain.UserData{
		UserID:      "123",
		AnonymousID: "456",
		Properties: domain.Dict{
			{"email", "test@test.com"},
			{"phone_number", "+39 1231231231"},
			{"first_name", "John"},
			{"last_name", "Doe"},
			{"gender", "Male"},
			{"date_of_birth", "1979-12-31"},
			{"city", "Las Vegas"},
			{"state", "Nevada"},
			{"zip_code", "11111"},
			{"country", "USA"},
			{"random_property", "abc"},
		},
	}
}

func samplePageData() domain.PageData {
	return domain.PageData{
		Name:     "page name",
		Category: "category",
		Keywords: []string{"value1", "value2"},
		Title:    "page title",
		URL:      "https://example.com/full-url",
		Path:     "/full-path",
		Search:   "?test=1",
		Referrer: "https://example.com/another-page",
		Properties: domain.Dict{
			{"prop1", "value1"},
			{"prop2", "10"},
			{"prop3", "true"},
			{"prop4", "false"},
			{"currency", "USD"},
		},
	}
}

func sampleContext() domain.Context {
	return domain.Context{
		Page: samplePageData(),
		User: sampleUserData(),
		Client: domain.Client{
			IP:        "192.168.0.1",
			Locale:    "fr",
			Timezone:  "CET",
			UserAgent: "Chrome",
		},
	}
}

func consent(c domain.Consent) *domain.Consent {
	return lo.ToPtr(c)
}

func samplePageEvent(c *domain.Consent) *domain.Event {
	page := samplePageData()
	return &domain.Event{
		UUID:      uuid.NewString(),
		Timestamp: 123,
		Type:      domain.EventTypePage,
		Data:      domain.Data{Page: &page},
		Context:   sampleContext(),
		Consent:   c,
	}
}

func sampleTrackEvent(name string, c *domain.Consent) *domain.Event {
	return &domain.Event{
		UUID:      uuid.NewString(),
		Timestamp: 123,
		Type:      domain.EventTypeTrack,
		Data: domain.Data{Track: &domain.TrackData{
			Name: name,
			Properties: domain.Dict{
				{"prop1", "value1"},
				{"prop2", "10"},
				{"currency", "USD"},
			},
		}},
		Context: sampleContext(),
		Consent: c,
	}
}

func sampleUserEvent(c *domain.Consent) *domain.Event {
	user := sampleUserData()
	return &domain.Event{
		UUID:      uuid.NewString(),
		Timestamp: 123,
		Type:      domain.EventTypeUser,
		Data:      domain.Data{User: &user},
		Context:   sampleContext(),
		Consent:   c,
	}
}

func sampleSettings() domain.Dict {
	return domain.Dict{
		{"access-token", "abc"},
		{"destination-id", "pixel-1"},
	}
}

func sampleSettingsWithTestCode() domain.Dict {
	return append(sampleSettings(), [2]string{"test-event-code", "abcd"})
}
