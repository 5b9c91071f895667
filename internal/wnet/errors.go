package wnet

import (
	"errors"
	"fmt"
)

// Sentinel errors for Win32 networking failure classification.
// Use errors.Is(err, wnet.ErrBadCredentials) to check.
var (
	ErrUnsupported     = errors.New("wnet: drive mapping requires Windows")
	ErrAccessDenied    = errors.New("wnet: access denied")
	ErrBadCredentials  = errors.New("wnet: logon failure")
	ErrBadTarget       = errors.New("wnet: network path not found")
	ErrNoNetwork       = errors.New("wnet: no network present")
	ErrAlreadyAssigned = errors.New("wnet: local name already in use")
	ErrNotConnected    = errors.New("wnet: device not connected")
	ErrOpenFiles       = errors.New("wnet: open files on connection")
	ErrDeviceInUse     = errors.New("wnet: device in use")
	ErrSessionConflict = errors.New("wnet: conflicting credentials for server")
	ErrCanceled        = errors.New("wnet: canceled by user")
)

// Win32 system error codes returned by the WNet family. Declared locally
// rather than through x/sys/windows so classification stays testable on
// every platform.
const (
	codeAccessDenied    = 5
	codeBadNetPath      = 53
	codeBadNetName      = 67
	codeAlreadyAssigned = 85
	codeInvalidPassword = 86
	codeMoreData        = 234
	codeConnUnavail     = 1201
	codeSessionConflict = 1219
	codeNoNetwork       = 1222
	codeCanceled        = 1223
	codeLogonFailure    = 1326
	codeNotConnected    = 2250
	codeOpenFiles       = 2401
	codeDeviceInUse     = 2404
)

// Error wraps a sentinel error with the failing operation, the device name
// involved, and the raw Win32 code plus system message for debugging.
type Error struct {
	Op      string // "query", "bind", "unbind"
	Device  string // local device name, e.g. "H:"
	Code    uint32 // Win32 system error code, 0 when none applies
	Message string // OS-provided error text, when available
	Err     error  // sentinel, for errors.Is()
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("wnet: %s %s: %s (code %d)", e.Op, e.Device, e.Message, e.Code)
	}
	if e.Code != 0 {
		return fmt.Sprintf("wnet: %s %s: code %d", e.Op, e.Device, e.Code)
	}

	return fmt.Sprintf("wnet: %s %s: %v", e.Op, e.Device, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify maps a Win32 system error code to a sentinel error. Returns nil
// for codes with no classification; the raw code still travels on the Error.
func classify(code uint32) error {
	switch code {
	case codeAccessDenied:
		return ErrAccessDenied
	case codeBadNetPath, codeBadNetName:
		return ErrBadTarget
	case codeAlreadyAssigned:
		return ErrAlreadyAssigned
	case codeInvalidPassword, codeLogonFailure:
		return ErrBadCredentials
	case codeSessionConflict:
		return ErrSessionConflict
	case codeNoNetwork, codeConnUnavail:
		return ErrNoNetwork
	case codeCanceled:
		return ErrCanceled
	case codeNotConnected:
		return ErrNotConnected
	case codeOpenFiles:
		return ErrOpenFiles
	case codeDeviceInUse:
		return ErrDeviceInUse
	default:
		return nil
	}
}

// IsCredentialError reports whether the failure suggests the operation
// could succeed with explicit credentials: wrong password, unauthenticated
// access denial, or a credential conflict with an existing server session.
func IsCredentialError(err error) bool {
	return errors.Is(err, ErrBadCredentials) ||
		errors.Is(err, ErrAccessDenied) ||
		errors.Is(err, ErrSessionConflict)
}
