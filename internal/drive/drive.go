// Package drive defines the typed domain values for drive mappings: drive
// letters, UNC target paths, the desired Mapping pair, and credential
// material. It consolidates input validation and normalization in one place
// and provides compile-time safety over raw string usage.
//
// Three concerns live here:
//   - Letter / UNCPath: validated, normalized value types for the two halves
//     of a mapping
//   - Mapping: the desired letter-to-target pair consumed by reconciliation
//   - Credential / Secret: principal plus an opaque secret that cannot leak
//     through logging or formatting
//
// This is a leaf package with zero dependencies beyond stdlib.
package drive

import (
	"encoding"
	"fmt"
	"strings"
)

// Letter is a normalized drive letter: exactly one ASCII alphabetic
// character, uppercase. The zero value (Letter{}) represents an absent
// letter.
type Letter struct {
	value byte
}

// ParseLetter creates a Letter from raw CLI or config input. Case is
// normalized to uppercase and a single trailing colon is accepted and
// stripped, so "h:" parses to H. Anything but one alphabetic character is
// rejected with a *ValidationError wrapping ErrInvalidLetter.
func ParseLetter(raw string) (Letter, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ":")

	if s == "" {
		return Letter{}, invalidLetter(raw, "empty")
	}
	if len(s) != 1 {
		return Letter{}, invalidLetter(raw, "must be a single character")
	}

	c := s[0]
	switch {
	case c >= 'a' && c <= 'z':
		c -= 'a' - 'A'
	case c >= 'A' && c <= 'Z':
		// already normalized
	default:
		return Letter{}, invalidLetter(raw, "must be alphabetic")
	}

	return Letter{value: c}, nil
}

// String returns the bare letter, e.g. "H".
func (l Letter) String() string {
	if l.IsZero() {
		return ""
	}

	return string(l.value)
}

// WithColon returns the letter in device form, e.g. "H:". This is the form
// the OS mapping facility expects for a local device name.
func (l Letter) WithColon() string {
	if l.IsZero() {
		return ""
	}

	return string(l.value) + ":"
}

// IsZero reports whether this is the zero-value Letter.
func (l Letter) IsZero() bool {
	return l.value == 0
}

// MarshalText implements encoding.TextMarshaler.
func (l Letter) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is validated
// and normalized just like ParseLetter, so a malformed config value fails at
// decode time.
func (l *Letter) UnmarshalText(text []byte) error {
	parsed, err := ParseLetter(string(text))
	if err != nil {
		return err
	}

	*l = parsed
	return nil
}

// Compile-time interface assertions.
var (
	_ encoding.TextMarshaler   = Letter{}
	_ encoding.TextUnmarshaler = (*Letter)(nil)
	_ fmt.Stringer             = Letter{}
)
