package domain

import "time"

const ActionSourceWeb = "WEB"

// ProviderConfig holds the credentials resolved from an event's settings.
type ProviderConfig struct {
	AccessToken   string
	DestinationID string
	TestEventCode *string
}

type OutboundPayload struct {
	Data []OutboundEvent `json:"data"`

	AccessToken   string  `json:"-"`
	DestinationID string  `json:"-"`
	TestEventCode *string `json:"-"`
}

type OutboundEvent struct {
	EventName      string         `json:"event_name"`
	EventTime      int64          `json:"event_time"`
	UserData       UserRecord     `json:"user_data"`
	CustomData     map[string]any `json:"custom_data"`
	EventSourceURL *string        `json:"event_source_url,omitempty"`
	EventID        string         `json:"event_id"`
	ActionSource   string         `json:"action_source"`
}

// UserRecord is the provider's user_data block. PII fields carry SHA-256
// hex digests, never clear text.
type UserRecord struct {
	Email       *string `json:"em,omitempty"`
	PhoneNumber *string `json:"ph,omitempty"`
	FirstName   *string `json:"fn,omitempty"`
	LastName    *string `json:"ln,omitempty"`
	DateOfBirth *string `json:"db,omitempty"`
	Gender      *string `json:"ge,omitempty"`
	City        *string `json:"ct,omitempty"`
	State       *string `json:"st,omitempty"`
	ZipCode     *string `json:"zp,omitempty"`
	Country     *string `json:"country,omitempty"`

	ExternalID      *string `json:"external_id,omitempty"`
	ClientIPAddress *string `json:"client_ip_address,omitempty"`
	ClientUserAgent *string `json:"client_user_agent,omitempty"`
	ClickID         *string `json:"sc_click_id,omitempty"`
	CookieID        *string `json:"sc_cookie1,omitempty"`
}

// HasIdentity reports whether the record can be matched by the provider.
func (u UserRecord) HasIdentity() bool {
	return u.Email != nil || u.PhoneNumber != nil
}

type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type RequestDescriptor struct {
	Method               string   `json:"method"`
	URL                  string   `json:"url"`
	Headers              []Header `json:"headers"`
	Body                 string   `json:"body"`
	ForwardClientHeaders bool     `json:"forward_client_headers"`
}

// DeliveryResult is the provider's answer to a single sent request.
type DeliveryResult struct {
	StatusCode int
	Body       string
}

type OutcomeStatus string

const (
	OutcomeTranslated OutcomeStatus = "translated"
	OutcomeRejected   OutcomeStatus = "rejected"
)

// Outcome records how one translation attempt ended. It carries no PII
// and no credentials.
type Outcome struct {
	EventID       string
	Kind          EventType
	EventName     string
	DestinationID string
	Status        OutcomeStatus
	Reason        string
	CustomKeys    []string
	EventTime     time.Time
}
