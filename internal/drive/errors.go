package drive

import (
	"errors"
	"fmt"
)

// Sentinel errors for input validation. Use errors.Is(err,
// drive.ErrInvalidLetter) to check which field was rejected.
var (
	ErrInvalidLetter = errors.New("drive: invalid drive letter")
	ErrInvalidPath   = errors.New("drive: invalid UNC path")
)

// ValidationError reports malformed mapping input. It is raised before any
// provider interaction, so no side effects have occurred when one is
// returned.
type ValidationError struct {
	Field  string // "drive letter" or "UNC path"
	Value  string // the offending input, verbatim
	Reason string
	Err    error // sentinel, for errors.Is()
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}

	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalidLetter(value, reason string) *ValidationError {
	return &ValidationError{Field: "drive letter", Value: value, Reason: reason, Err: ErrInvalidLetter}
}

func invalidPath(value, reason string) *ValidationError {
	return &ValidationError{Field: "UNC path", Value: value, Reason: reason, Err: ErrInvalidPath}
}
