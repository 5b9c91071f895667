// Package wnet maps drive letters to UNC shares through the Windows WNet
// (Multiple Provider Router) API with error classification into sentinel
// errors. On non-Windows platforms the package compiles but its constructor
// reports ErrUnsupported, so config handling and input validation still
// work everywhere.
package wnet

import "log/slog"

// Options configures a Provider.
type Options struct {
	// Persistent requests a profile update on bind so the OS remembers the
	// mapping at next logon. Best effort: the profile entry can still be
	// removed by policy or a later session.
	Persistent bool

	// Force closes open files and handles when unbinding. Off by default;
	// an unbind with open files then fails with ErrOpenFiles instead of
	// tearing them down.
	Force bool

	// Logger receives per-call debug output. Nil falls back to
	// slog.Default().
	Logger *slog.Logger
}
