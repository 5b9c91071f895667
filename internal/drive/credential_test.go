package drive

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

// The secret must be unreachable through any formatting path. This is the
// guarantee the rest of the codebase leans on when logging credentials'
// surroundings freely.
func TestSecret_NeverFormats(t *testing.T) {
	s := NewSecret("hunter2")

	for _, got := range []string{
		fmt.Sprintf("%v", s),
		fmt.Sprintf("%s", s),
		fmt.Sprintf("%#v", s),
		fmt.Sprintf("%+v", s),
		fmt.Sprint(Credential{Principal: `CORP\alice`, Secret: s}),
	} {
		if strings.Contains(got, "hunter2") {
			t.Errorf("secret leaked through formatting: %q", got)
		}
	}
}

func TestSecret_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("bind", "secret", NewSecret("hunter2"))

	if strings.Contains(buf.String(), "hunter2") {
		t.Errorf("secret leaked into log output: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[redacted]") {
		t.Errorf("log output missing redaction marker: %q", buf.String())
	}
}

func TestSecret_Reveal(t *testing.T) {
	s := NewSecret("hunter2")
	if got := s.Reveal(); got != "hunter2" {
		t.Errorf("Reveal() = %q, want raw value", got)
	}

	if !NewSecret("").IsZero() {
		t.Error("empty secret should report IsZero")
	}
	if s.IsZero() {
		t.Error("non-empty secret should not report IsZero")
	}
}
