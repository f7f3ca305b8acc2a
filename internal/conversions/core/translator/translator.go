// Package translator turns host analytics events into Conversions API
// requests. Everything here is pure: no I/O, no shared state, safe for
// concurrent use.
package translator

import (
	"fmt"

	"conversions-adapter/internal/conversions/core/domain"
)

// PageViewEventName is the provider event name used for page events.
const PageViewEventName = "PAGE_VIEW"

type Translator struct {
	host string
}

// New returns a Translator targeting host. An empty host selects
// DefaultProviderHost.
func New(host string) *Translator {
	if host == "" {
		host = DefaultProviderHost
	}
	return &Translator{host: host}
}

func (t *Translator) Host() string {
	return t.host
}

func (t *Translator) Page(ev *domain.Event, settings domain.Dict) (*domain.RequestDescriptor, error) {
	page := ev.Data.Page
	if page == nil {
		return nil, fmt.Errorf("%w: page", ErrMissingPayload)
	}

	cfg, err := ResolveConfig(settings)
	if err != nil {
		return nil, err
	}

	out, err := NewOutboundEvent(ev, PageViewEventName)
	if err != nil {
		return nil, err
	}
	out.CustomData = pageCustomData(page)

	payload := newPayload(cfg)
	payload.Data = append(payload.Data, *out)

	return BuildRequest(t.host, payload)
}

func (t *Translator) Track(ev *domain.Event, settings domain.Dict) (*domain.RequestDescriptor, error) {
	track := ev.Data.Track
	if track == nil {
		return nil, fmt.Errorf("%w: track", ErrMissingPayload)
	}
	if track.Name == "" {
		return nil, ErrEmptyEventName
	}

	cfg, err := ResolveConfig(settings)
	if err != nil {
		return nil, err
	}

	out, err := NewOutboundEvent(ev, track.Name)
	if err != nil {
		return nil, err
	}
	out.CustomData = customData(track.Properties)

	payload := newPayload(cfg)
	payload.Data = append(payload.Data, *out)

	return BuildRequest(t.host, payload)
}

// User always fails: identity events are not forwarded to the provider.
func (t *Translator) User(_ *domain.Event, _ domain.Dict) (*domain.RequestDescriptor, error) {
	return nil, ErrUnimplemented
}

var defaultTranslator = New("")

func TranslatePage(ev *domain.Event, settings domain.Dict) (*domain.RequestDescriptor, error) {
	return defaultTranslator.Page(ev, settings)
}

func TranslateTrack(ev *domain.Event, settings domain.Dict) (*domain.RequestDescriptor, error) {
	return defaultTranslator.Track(ev, settings)
}

func TranslateUser(ev *domain.Event, settings domain.Dict) (*domain.RequestDescriptor, error) {
	return defaultTranslator.User(ev, settings)
}
