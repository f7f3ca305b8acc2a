package domain

// EventType tags the kind of data a host event carries.
type EventType string

const (
	EventTypePage  EventType = "page"
	EventTypeTrack EventType = "track"
	EventTypeUser  EventType = "user"
)

// Consent is the visitor's data-processing consent as recorded by the host.
// A nil *Consent on an Event means the host did not record any consent.
type Consent string

const (
	ConsentPending Consent = "pending"
	ConsentGranted Consent = "granted"
	ConsentDenied  Consent = "denied"
)

// Dict is an ordered list of key/value pairs. Keys may repeat; lookups
// return the last occurrence.
type Dict [][2]string

// Get returns the value of the last pair whose key equals key.
func (d Dict) Get(key string) (string, bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i][0] == key {
			return d[i][1], true
		}
	}
	return "", false
}

type Event struct {
	UUID      string    `json:"uuid"`
	Timestamp int64     `json:"timestamp"`
	Type      EventType `json:"event_type"`
	Data      Data      `json:"data"`
	Context   Context   `json:"context"`
	Consent   *Consent  `json:"consent,omitempty"`
}

// Data holds exactly one of Page, Track or User.
type Data struct {
	Page  *PageData  `json:"page,omitempty"`
	Track *TrackData `json:"track,omitempty"`
	User  *UserData  `json:"user,omitempty"`
}

type PageData struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Keywords   []string `json:"keywords,omitempty"`
	Title      string   `json:"title"`
	URL        string   `json:"url"`
	Path       string   `json:"path"`
	Search     string   `json:"search"`
	Referrer   string   `json:"referrer"`
	Properties Dict     `json:"properties,omitempty"`
}

type TrackData struct {
	Name       string `json:"name"`
	Properties Dict   `json:"properties,omitempty"`
}

type UserData struct {
	UserID      string `json:"user_id"`
	AnonymousID string `json:"anonymous_id"`
	Properties  Dict   `json:"properties,omitempty"`
}

type Client struct {
	IP        string `json:"ip"`
	Locale    string `json:"locale"`
	Timezone  string `json:"timezone"`
	UserAgent string `json:"user_agent"`
}

type Context struct {
	Page   PageData `json:"page"`
	User   UserData `json:"user"`
	Client Client   `json:"client"`
}
