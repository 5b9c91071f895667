// Package testutil provides shared helpers for tests across packages.
package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// LogEntry is one captured log record, with attribute values rendered as
// strings (LogValuer attributes are resolved first, so redaction applies
// exactly as it would in production output).
type LogEntry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// LogRecorder captures slog output for assertions. Safe for concurrent use.
type LogRecorder struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogRecorder returns a debug-level logger and the recorder capturing
// everything logged through it.
func NewLogRecorder() (*slog.Logger, *LogRecorder) {
	rec := &LogRecorder{}
	return slog.New(recordingHandler{rec: rec}), rec
}

// DiscardLogger returns a logger that drops everything, for tests that do
// not assert on output.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Entries returns a copy of everything captured so far.
func (r *LogRecorder) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Has reports whether any captured record at level carries the message.
func (r *LogRecorder) Has(level slog.Level, message string) bool {
	for _, e := range r.Entries() {
		if e.Level == level && e.Message == message {
			return true
		}
	}

	return false
}

// recordingHandler feeds records into a LogRecorder.
type recordingHandler struct {
	rec   *LogRecorder
	attrs []slog.Attr
}

func (h recordingHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h recordingHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]string, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Resolve().String()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Resolve().String()
		return true
	})

	h.rec.mu.Lock()
	defer h.rec.mu.Unlock()
	h.rec.entries = append(h.rec.entries, LogEntry{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})

	return nil
}

func (h recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return recordingHandler{rec: h.rec, attrs: merged}
}

func (h recordingHandler) WithGroup(string) slog.Handler {
	// Tests assert on flat keys; groups are not used in this codebase.
	return h
}
