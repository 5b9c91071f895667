// Package reconcile decides and executes drive mapping changes. Per mapping
// it compares the desired binding with the live one and no-ops, creates, or
// replaces it (Reconciler); per batch it runs an ordered list of those
// decisions with shared credential acquisition and a single retry pass
// (Orchestrator).
//
// Mappings are processed strictly sequentially. The drive letter namespace
// is one shared resource, concurrent operations on the same letter would
// race, and a login-script batch is small, so the package runs everything on
// the caller's goroutine and needs no locking.
package reconcile

import (
	"encoding"
	"fmt"

	"github.com/winmaps/drivemap/internal/drive"
)

// Provider is the OS mapping facility consumed by the reconciler.
// Implemented by wnet.Provider; tests substitute fakes.
type Provider interface {
	// Query reports the live binding of letter. ok is false when the
	// letter is unbound; a bound letter with an unrecognizable target
	// reports ok with a zero path.
	Query(letter drive.Letter) (target drive.UNCPath, ok bool, err error)

	// Bind maps m.Letter to m.Target using cred, or the ambient security
	// context when cred is nil.
	Bind(m drive.Mapping, cred *drive.Credential) error

	// Unbind removes the live binding of letter.
	Unbind(letter drive.Letter) error
}

// CredentialSource produces the shared credential for a retry pass.
// Implemented by credential.Acquirer; tests substitute stubs.
type CredentialSource interface {
	Acquire() (drive.Credential, error)
}

// ConfirmFunc asks whether a retry pass with fresh credentials should run.
// Called only under RetryPrompt; failed is the number of failing mappings.
type ConfirmFunc func(failed int) (bool, error)

// Outcome classifies the result of reconciling one mapping.
type Outcome int

const (
	// OutcomeUnknown is the zero value, never produced by a finished
	// reconciliation.
	OutcomeUnknown Outcome = iota

	// OutcomeAlreadyMapped reports the live binding matched the desired
	// target and nothing was touched.
	OutcomeAlreadyMapped

	// OutcomeCreated reports the letter was free and is now mapped.
	OutcomeCreated

	// OutcomeRemapped reports the letter pointed elsewhere; the old
	// binding was removed and the desired one established.
	OutcomeRemapped

	// OutcomeSkipped reports a dry run left a pending change unexecuted.
	OutcomeSkipped

	// OutcomeFailed reports a provider call failed; Result.Err carries
	// the cause.
	OutcomeFailed
)

// String returns the lower_snake token for the outcome, as used in logs,
// tables, and JSON output.
func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyMapped:
		return "already_mapped"
	case OutcomeCreated:
		return "created"
	case OutcomeRemapped:
		return "remapped"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// Success reports whether the outcome is a terminal success. Skipped counts:
// a dry run that found work to do has done its job.
func (o Outcome) Success() bool {
	switch o {
	case OutcomeAlreadyMapped, OutcomeCreated, OutcomeRemapped, OutcomeSkipped:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler for JSON reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result is the outcome of reconciling one mapping.
type Result struct {
	Letter  drive.Letter
	Target  drive.UNCPath
	Label   string
	Outcome Outcome
	Detail  string // optional human-readable context, e.g. the prior target
	Err     error  // cause when Outcome is OutcomeFailed
}

// Report is the ordered aggregate of one batch run. Results appear in input
// order; Succeeded is true only when every outcome is a success.
type Report struct {
	Results   []Result
	Succeeded bool
}

// Tally counts results per outcome class.
func (r *Report) Tally() (created, remapped, already, skipped, failed int) {
	for _, res := range r.Results {
		switch res.Outcome {
		case OutcomeCreated:
			created++
		case OutcomeRemapped:
			remapped++
		case OutcomeAlreadyMapped:
			already++
		case OutcomeSkipped:
			skipped++
		case OutcomeFailed:
			failed++
		}
	}

	return created, remapped, already, skipped, failed
}

// Failed returns the failing results, preserving input order.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			failed = append(failed, res)
		}
	}

	return failed
}

// failedIndexes returns the positions of failing results for in-place
// replacement by the retry pass.
func (r *Report) failedIndexes() []int {
	var idx []int
	for i, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			idx = append(idx, i)
		}
	}

	return idx
}

// RetryPolicy controls whether a failing first pass triggers shared
// credential acquisition and a retry pass.
type RetryPolicy int

const (
	// RetryPrompt asks for confirmation before acquiring credentials.
	// The default for interactive sessions.
	RetryPrompt RetryPolicy = iota

	// RetryAlways acquires credentials unconditionally on any first-pass
	// failure.
	RetryAlways

	// RetryNever skips the retry pass; first-pass results are final.
	RetryNever
)

// String returns the config token for the policy.
func (p RetryPolicy) String() string {
	switch p {
	case RetryPrompt:
		return "prompt"
	case RetryAlways:
		return "always"
	case RetryNever:
		return "never"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ParseRetryPolicy converts a config token into a RetryPolicy.
func ParseRetryPolicy(s string) (RetryPolicy, error) {
	switch s {
	case "prompt":
		return RetryPrompt, nil
	case "always":
		return RetryAlways, nil
	case "never":
		return RetryNever, nil
	default:
		return RetryPrompt, fmt.Errorf("unknown retry policy %q (valid: prompt, always, never)", s)
	}
}

// Compile-time interface assertions.
var (
	_ fmt.Stringer           = Outcome(0)
	_ encoding.TextMarshaler = Outcome(0)
	_ fmt.Stringer           = RetryPolicy(0)
)
