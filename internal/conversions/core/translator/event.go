package translator

import (
	"conversions-adapter/internal/conversions/core/domain"

	"github.com/samber/lo"
)

// userPropertySetters maps recognised user property keys onto the user
// record. Keys are matched exactly; anything not listed is dropped.
var userPropertySetters = map[string]func(u *domain.UserRecord, value string){
	"email":         func(u *domain.UserRecord, v string) { u.Email = hashed(v) },
	"phone_number":  func(u *domain.UserRecord, v string) { u.PhoneNumber = hashed(v) },
	"first_name":    func(u *domain.UserRecord, v string) { u.FirstName = hashed(v) },
	"last_name":     func(u *domain.UserRecord, v string) { u.LastName = hashed(v) },
	"gender":        func(u *domain.UserRecord, v string) { u.Gender = hashed(v) },
	"date_of_birth": func(u *domain.UserRecord, v string) { u.DateOfBirth = hashed(v) },
	"city":          func(u *domain.UserRecord, v string) { u.City = hashed(v) },
	"state":         func(u *domain.UserRecord, v string) { u.State = hashed(v) },
	"zip_code":      func(u *domain.UserRecord, v string) { u.ZipCode = hashed(v) },
	"country":       func(u *domain.UserRecord, v string) { u.Country = hashed(v) },
	"sc_click_id":   func(u *domain.UserRecord, v string) { u.ClickID = lo.ToPtr(v) },
	"sc_cookie1":    func(u *domain.UserRecord, v string) { u.CookieID = lo.ToPtr(v) },
}

func hashed(v string) *string {
	return lo.ToPtr(HashValue(v))
}

// NewOutboundEvent builds the provider event for ev under eventName. It
// runs the consent, user property and identity gates and leaves
// CustomData empty for the caller to fill.
func NewOutboundEvent(ev *domain.Event, eventName string) (*domain.OutboundEvent, error) {
	out := &domain.OutboundEvent{
		EventName:    eventName,
		EventTime:    ev.Timestamp,
		EventID:      ev.UUID,
		ActionSource: domain.ActionSourceWeb,
		CustomData:   map[string]any{},
	}

	if page := ev.Context.Page; page.URL != "" {
		out.EventSourceURL = lo.ToPtr(page.URL + page.Search)
	}

	user := domain.UserRecord{
		ClientIPAddress: lo.ToPtr(ev.Context.Client.IP),
		ClientUserAgent: lo.ToPtr(ev.Context.Client.UserAgent),
	}
	if id := ev.Context.User.UserID; id != "" {
		user.ExternalID = hashed(id)
	}

	props := ev.Context.User.Properties
	if ev.Data.User != nil {
		props = ev.Data.User.Properties
	}

	if ev.Consent != nil && *ev.Consent != domain.ConsentGranted {
		return nil, ErrConsentNotGranted
	}

	if len(props) == 0 {
		return nil, ErrMissingUserProperties
	}

	for _, p := range props {
		if set, ok := userPropertySetters[p[0]]; ok {
			set(&user, p[1])
		}
	}

	if !user.HasIdentity() {
		return nil, ErrInsufficientIdentity
	}

	out.UserData = user
	return out, nil
}

func pageCustomData(page *domain.PageData) map[string]any {
	out := map[string]any{}
	if page.Name != "" {
		out["page_name"] = ParseValue(page.Name)
	}
	if page.Category != "" {
		out["page_category"] = ParseValue(page.Category)
	}
	if page.Title != "" {
		out["page_title"] = ParseValue(page.Title)
	}
	// page properties win over the well-known keys on collision
	for k, v := range customData(page.Properties) {
		out[k] = v
	}
	return out
}
