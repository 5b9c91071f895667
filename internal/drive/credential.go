package drive

import (
	"fmt"
	"log/slog"
)

// redacted replaces secret material in every formatted representation.
const redacted = "[redacted]"

// Secret is an opaque credential secret. It renders as "[redacted]" through
// every printing path (fmt verbs, %#v, slog attributes), so a secret cannot
// reach a log line or error message by accident. The raw value is only
// reachable through Reveal, at the point a provider call needs it.
type Secret struct {
	value string
}

// NewSecret wraps a raw secret value.
func NewSecret(raw string) Secret {
	return Secret{value: raw}
}

// String implements fmt.Stringer with a redaction marker.
func (s Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer so %#v does not expose the value.
func (s Secret) GoString() string {
	return redacted
}

// LogValue implements slog.LogValuer so a Secret logged as an attribute
// renders redacted.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// Reveal returns the raw secret for handoff to the OS mapping facility.
func (s Secret) Reveal() string {
	return s.value
}

// IsZero reports whether the secret is empty. Empty secrets are legal (some
// service shares accept a blank password), so this is informational rather
// than a validity check.
func (s Secret) IsZero() bool {
	return s.value == ""
}

// Credential is an authenticated principal for provider bind calls.
// Principal is in down-level "DOMAIN\user" form with exactly one separator;
// it is assembled by the credential package, never taken verbatim from raw
// input.
type Credential struct {
	Principal string
	Secret    Secret
}

// Compile-time interface assertions.
var (
	_ fmt.Stringer   = Secret{}
	_ fmt.GoStringer = Secret{}
	_ slog.LogValuer = Secret{}
)
