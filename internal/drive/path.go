package drive

import (
	"encoding"
	"fmt"
	"strings"
)

// uncPrefix is the leading separator pair every UNC path carries.
const uncPrefix = `\\`

// uncMinRest is the minimum number of characters required after the prefix.
// `\\x\y` is the shortest server/share form that names a real resource.
const uncMinRest = 3

// UNCPath is a validated network share address of the form
// \\server\share[\path]. The zero value (UNCPath{}) represents an absent
// path.
type UNCPath struct {
	value string
}

// ParseUNC creates a UNCPath from raw CLI or config input. The path must
// carry the \\ prefix followed by at least three characters; trailing
// backslashes are stripped so equivalent spellings compare equal.
// Forward-slash input ("//server/share") is rejected with a hint since it is
// the most common typo. Rejections are *ValidationError wrapping
// ErrInvalidPath.
func ParseUNC(raw string) (UNCPath, error) {
	s := strings.TrimSpace(raw)

	if s == "" {
		return UNCPath{}, invalidPath(raw, "empty")
	}
	if strings.HasPrefix(s, "//") {
		return UNCPath{}, invalidPath(raw, `UNC paths use backslashes (\\server\share)`)
	}
	if !strings.HasPrefix(s, uncPrefix) {
		return UNCPath{}, invalidPath(raw, `must start with \\`)
	}

	rest := strings.TrimRight(s[len(uncPrefix):], `\`)
	if strings.HasPrefix(rest, `\`) {
		return UNCPath{}, invalidPath(raw, "server name is empty")
	}
	if len(rest) < uncMinRest {
		return UNCPath{}, invalidPath(raw, "server and share name required")
	}

	return UNCPath{value: uncPrefix + rest}, nil
}

// String returns the normalized path, e.g. `\\filer01\home`.
func (p UNCPath) String() string {
	return p.value
}

// IsZero reports whether this is the zero-value UNCPath.
func (p UNCPath) IsZero() bool {
	return p.value == ""
}

// Equal reports whether two paths name the same share. Comparison is
// case-insensitive: SMB treats \\FILER\Home and \\filer\home as the same
// resource, and the OS may report a different casing than the config spells.
func (p UNCPath) Equal(other UNCPath) bool {
	return strings.EqualFold(p.value, other.value)
}

// Server returns the host segment of the path.
func (p UNCPath) Server() string {
	rest := strings.TrimPrefix(p.value, uncPrefix)
	if i := strings.IndexByte(rest, '\\'); i >= 0 {
		return rest[:i]
	}

	return rest
}

// Share returns the share segment after the server, or "" when the path
// names only a host.
func (p UNCPath) Share() string {
	rest := strings.TrimPrefix(p.value, uncPrefix)
	parts := strings.SplitN(rest, `\`, 3)
	if len(parts) < 2 {
		return ""
	}

	return parts[1]
}

// MarshalText implements encoding.TextMarshaler.
func (p UNCPath) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is validated
// and normalized just like ParseUNC.
func (p *UNCPath) UnmarshalText(text []byte) error {
	parsed, err := ParseUNC(string(text))
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// Compile-time interface assertions.
var (
	_ encoding.TextMarshaler   = UNCPath{}
	_ encoding.TextUnmarshaler = (*UNCPath)(nil)
	_ fmt.Stringer             = UNCPath{}
)
