package translator

import "errors"

var (
	ErrMissingCredential     = errors.New("missing credential")
	ErrMissingPayload        = errors.New("missing event data")
	ErrEmptyEventName        = errors.New("track name is not set")
	ErrConsentNotGranted     = errors.New("consent is not granted")
	ErrMissingUserProperties = errors.New("user properties are empty")
	ErrInsufficientIdentity  = errors.New("user properties must contain email or phone_number")
	ErrUnimplemented         = errors.New("user event not implemented for this component")
)

// Reason returns a stable snake_case code for err, suitable for metric
// labels and API error bodies.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, ErrMissingPayload):
		return "missing_payload"
	case errors.Is(err, ErrEmptyEventName):
		return "empty_event_name"
	case errors.Is(err, ErrConsentNotGranted):
		return "consent_not_granted"
	case errors.Is(err, ErrMissingUserProperties):
		return "missing_user_properties"
	case errors.Is(err, ErrInsufficientIdentity):
		return "insufficient_identity"
	case errors.Is(err, ErrUnimplemented):
		return "unimplemented"
	default:
		return "unknown"
	}
}

// IsRejection reports whether err is one of the translation gate failures
// as opposed to an unexpected error.
func IsRejection(err error) bool {
	r := Reason(err)
	return r != "" && r != "unknown"
}
