// Package credential acquires domain credentials for drive binding:
// interactive prompting, domain qualification of the typed account name, and
// the shared-credential source the batch orchestrator consumes.
package credential

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/winmaps/drivemap/internal/drive"
)

// Sentinel errors for acquisition failures.
var (
	// ErrEmptyUsername reports a blank username; the caller may re-prompt.
	ErrEmptyUsername = errors.New("credential: username is empty")

	// ErrMalformedUsername reports a typed account name that cannot be
	// domain-qualified, e.g. several separators with no domain configured.
	ErrMalformedUsername = errors.New("credential: malformed username")

	// ErrAborted is returned when the user cancels a prompt (Ctrl+C).
	ErrAborted = errors.New("credential: prompt aborted")
)

// separator is the down-level logon separator between domain and user.
const separator = `\`

// maxAttempts bounds re-prompting after an empty username.
const maxAttempts = 3

// Prompter supplies the interactive pieces of acquisition. Implemented by
// TerminalPrompter; tests substitute stubs.
type Prompter interface {
	Username() (string, error)
	Password() (string, error)
	ConfirmRetry(failed int) (bool, error)
}

// Acquirer builds complete credentials from interactive input. A configured
// domain hint always wins over any domain the user types. The fallback
// domain qualifies bare usernames when no hint is configured; the CLI
// resolves it once at startup, so acquisition itself never consults
// process-global state.
type Acquirer struct {
	prompter Prompter
	hint     string
	fallback string
	logger   *slog.Logger
}

// NewAcquirer creates an Acquirer. An empty fallbackDomain defaults to ".",
// the local-machine alias accepted by Windows logon. A nil logger falls
// back to slog.Default().
func NewAcquirer(p Prompter, domainHint, fallbackDomain string, logger *slog.Logger) *Acquirer {
	if fallbackDomain == "" {
		fallbackDomain = "."
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Acquirer{prompter: p, hint: domainHint, fallback: fallbackDomain, logger: logger}
}

// Acquire prompts for username and secret and returns a complete credential
// whose principal carries exactly one domain separator. It never returns a
// partial credential: every failure surfaces before construction. The
// secret is never logged; the resolved principal is.
func (a *Acquirer) Acquire() (drive.Credential, error) {
	typed, err := a.prompter.Username()
	if err != nil {
		return drive.Credential{}, err
	}

	principal, err := a.qualify(strings.TrimSpace(typed))
	if err != nil {
		return drive.Credential{}, err
	}

	a.logger.Info("acquiring credential", "principal", principal)

	secret, err := a.prompter.Password()
	if err != nil {
		return drive.Credential{}, err
	}

	// An empty secret is allowed: some service shares take a blank
	// password. Only the username is mandatory.
	return drive.Credential{Principal: principal, Secret: drive.NewSecret(secret)}, nil
}

// AcquireWithRetry re-runs Acquire up to three times while the username
// comes back empty. Any other failure passes through immediately.
func (a *Acquirer) AcquireWithRetry() (drive.Credential, error) {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		cred, err := a.Acquire()
		if err == nil {
			return cred, nil
		}
		if !errors.Is(err, ErrEmptyUsername) {
			return drive.Credential{}, err
		}
		a.logger.Warn("username required", "attempt", i+1)
		lastErr = err
	}

	return drive.Credential{}, lastErr
}

// ConfirmRetry exposes the prompter's retry confirmation for batch wiring.
func (a *Acquirer) ConfirmRetry(failed int) (bool, error) {
	return a.prompter.ConfirmRetry(failed)
}

// qualify turns the typed account name into a DOMAIN\user principal.
//
// With a domain hint configured, any domain the user typed is stripped
// (with a warning) and the hint wins. Without a hint, a typed DOMAIN\user
// is kept verbatim, UPN input (user@domain) is converted to down-level
// form, and a bare username gets the fallback domain.
func (a *Acquirer) qualify(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyUsername
	}

	if a.hint != "" {
		user := name
		if i := strings.LastIndex(name, separator); i >= 0 {
			user = name[i+1:]
			a.logger.Warn("typed domain ignored, configured domain takes precedence",
				"typed", name, "domain", a.hint)
		} else if i := strings.IndexByte(name, '@'); i >= 0 {
			user = name[:i]
			a.logger.Warn("typed domain ignored, configured domain takes precedence",
				"typed", name, "domain", a.hint)
		}
		if user == "" {
			return "", ErrEmptyUsername
		}

		return a.hint + separator + user, nil
	}

	if strings.Contains(name, separator) {
		parts := strings.Split(name, separator)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return "", fmt.Errorf("%w: %q", ErrMalformedUsername, name)
		}

		return name, nil
	}

	if i := strings.IndexByte(name, '@'); i >= 0 {
		user, domain := name[:i], name[i+1:]
		if user == "" || domain == "" || strings.ContainsRune(domain, '@') {
			return "", fmt.Errorf("%w: %q", ErrMalformedUsername, name)
		}

		return domain + separator + user, nil
	}

	return a.fallback + separator + name, nil
}

// RetrySource wraps an Acquirer so Acquire re-prompts on empty usernames.
// It satisfies the batch orchestrator's credential source shape.
type RetrySource struct {
	Acquirer *Acquirer
}

func (s RetrySource) Acquire() (drive.Credential, error) {
	return s.Acquirer.AcquireWithRetry()
}

// DefaultDomain resolves the ambient domain for qualifying bare usernames:
// USERDOMAIN when set, then COMPUTERNAME (local accounts), then ".". Called
// once at CLI startup and passed into NewAcquirer explicitly.
func DefaultDomain() string {
	if d := os.Getenv("USERDOMAIN"); d != "" {
		return d
	}
	if d := os.Getenv("COMPUTERNAME"); d != "" {
		return d
	}

	return "."
}
