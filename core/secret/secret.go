package secret

import (
	"encoding/json"
	"log/slog"
)

// placeholder is what every diagnostic rendering of a Secret produces.
const placeholder = "[REDACTED]"

// Secret holds one sensitive string. The zero value is an empty secret.
type Secret struct {
	payload string
}

// New wraps a plain string in a Secret.
func New(s string) Secret {
	return Secret{payload: s}
}

// Reveal returns the wrapped payload. This is the only accessor.
func (s Secret) Reveal() string {
	return s.payload
}

// String implements fmt.Stringer and hides the payload from %s and %v.
func (s Secret) String() string {
	return placeholder
}

// GoString implements fmt.GoStringer and hides the payload from %#v.
func (s Secret) GoString() string {
	return placeholder
}

// LogValue implements slog.LogValuer so structured logs never carry the
// payload.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(placeholder)
}

// MarshalJSON renders the placeholder instead of the payload.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(placeholder)
}

// UnmarshalJSON accepts a JSON string and stores it as the payload, allowing
// Secret fields in request bodies.
func (s *Secret) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.payload = v
	return nil
}

// MarshalText renders the placeholder instead of the payload.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(placeholder), nil
}

// UnmarshalText stores the raw text as the payload, allowing Secret fields in
// env-tagged configuration structs.
func (s *Secret) UnmarshalText(text []byte) error {
	s.payload = string(text)
	return nil
}
