package config

import (
	"fmt"
	"io"
)

// RenderEffective writes the resolved configuration as a human-readable
// summary to w. This powers the "config show" command, giving users
// visibility into the effective values after all four override layers
// (defaults -> file -> env -> CLI) have been applied. The output is itself
// valid TOML, so it can be pasted into a config file as a starting point.
func RenderEffective(r *Resolved, w io.Writer) error {
	ew := &errWriter{w: w}

	if r.FromFile {
		ew.printf("# Effective configuration from %s\n\n", r.Path)
	} else {
		ew.printf("# Effective configuration (built-in defaults; no file at %s)\n\n", r.Path)
	}

	if r.Domain != "" {
		ew.printf("domain = %q\n", r.Domain)
	}

	ew.printf("on_failure = %q\n", r.OnFailure)
	ew.printf("persistent = %t\n", r.Persistent)
	ew.printf("log_level = %q\n", r.LogLevel)
	ew.printf("log_format = %q\n", r.LogFormat)

	if r.LogFile != "" {
		ew.printf("log_file = %q\n", r.LogFile)
	}

	for i := range r.Mappings {
		m := &r.Mappings[i]

		ew.printf("\n[[mapping]]\n")
		ew.printf("letter = %q\n", m.Letter)
		// Single-quoted TOML string: backslashes are not escapes there.
		ew.printf("path = '%s'\n", m.Target)

		if m.Label != "" {
			ew.printf("label = %q\n", m.Label)
		}
	}

	return ew.err
}

// errWriter wraps an io.Writer and captures the first write error.
// Subsequent writes after an error are no-ops, so callers can chain
// printf calls without checking each one individually.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}

	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
