package reconcile

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/winmaps/drivemap/internal/drive"
)

// OrchestratorConfig holds the inputs for creating an Orchestrator. The CLI
// layer populates this from resolved config.
type OrchestratorConfig struct {
	Provider    Provider
	Credentials CredentialSource
	Policy      RetryPolicy
	Confirm     ConfirmFunc // retry confirmation under RetryPrompt
	Logger      *slog.Logger
}

// Orchestrator applies an ordered set of desired mappings through a
// Reconciler, acquiring at most one shared credential per batch.
type Orchestrator struct {
	rec      *Reconciler
	creds    CredentialSource
	policy   RetryPolicy
	confirm  ConfirmFunc
	logger   *slog.Logger
	newRunID func() string // injectable for tests
}

// NewOrchestrator creates an Orchestrator. A nil Logger falls back to
// slog.Default().
func NewOrchestrator(cfg OrchestratorConfig) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		rec:      NewReconciler(cfg.Provider, logger),
		creds:    cfg.Credentials,
		policy:   cfg.Policy,
		confirm:  cfg.Confirm,
		logger:   logger,
		newRunID: uuid.NewString,
	}
}

// MapAll reconciles desired in order, in two passes. Pass 1 runs under the
// ambient security context. If failures remain and the policy allows,
// exactly one shared credential is acquired and only the failed subset is
// retried, its results replaced in place; mappings that succeeded in pass 1
// are never re-executed. The credential lives on this call's stack and is
// gone when it returns.
//
// Both passes always run to completion; nothing aborts on the first failure.
// The returned error is a *drive.ValidationError when an input mapping is
// malformed (checked up front, before any provider call) or a *BatchError
// when failures remain at the end. The report accompanies the BatchError
// too, listing every mapping's final state in input order.
func (o *Orchestrator) MapAll(desired []drive.Mapping, dryRun bool) (*Report, error) {
	for _, m := range desired {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	logger := o.logger.With("run_id", o.newRunID())
	logger.Info("batch start",
		"mappings", len(desired),
		"dry_run", dryRun,
		"policy", o.policy.String())

	report := &Report{Results: make([]Result, len(desired))}
	for i, m := range desired {
		res, err := o.rec.Reconcile(m, nil, dryRun)
		if err != nil {
			return nil, err
		}
		report.Results[i] = res
		logger.Info("pass 1 result", "letter", res.Letter, "outcome", res.Outcome, "detail", res.Detail)
	}

	failedIdx := report.failedIndexes()
	if len(failedIdx) == 0 {
		report.Succeeded = true
		logSummary(logger, report)

		return report, nil
	}

	if dryRun {
		// The retry pass exists to attach credentials to Bind. A dry run
		// never binds, so retrying cannot change anything.
		logger.Error("batch failed", "failing", failedLetters(report))
		return report, &BatchError{Report: report}
	}

	cred, acquired, acqErr := o.acquireShared(len(failedIdx), logger)
	if !acquired {
		logger.Error("batch failed", "failing", failedLetters(report))
		return report, &BatchError{Report: report, AcquireErr: acqErr}
	}

	logger.Info("retrying failed mappings", "count", len(failedIdx), "principal", cred.Principal)
	for _, i := range failedIdx {
		res, err := o.rec.Reconcile(desired[i], &cred, dryRun)
		if err != nil {
			return nil, err
		}
		report.Results[i] = res
		logger.Info("pass 2 result", "letter", res.Letter, "outcome", res.Outcome, "detail", res.Detail)
	}

	if len(report.Failed()) > 0 {
		logger.Error("batch failed", "failing", failedLetters(report))
		return report, &BatchError{Report: report}
	}

	report.Succeeded = true
	logSummary(logger, report)

	return report, nil
}

// acquireShared applies the retry policy. acquired is false when the retry
// pass should not run; err carries an acquisition or confirmation failure,
// if any.
func (o *Orchestrator) acquireShared(failed int, logger *slog.Logger) (drive.Credential, bool, error) {
	if o.creds == nil {
		logger.Warn("no credential source configured, skipping retry pass")
		return drive.Credential{}, false, nil
	}

	switch o.policy {
	case RetryNever:
		logger.Info("credential retry disabled by policy", "failed", failed)
		return drive.Credential{}, false, nil
	case RetryPrompt:
		if o.confirm == nil {
			logger.Warn("no retry confirmation channel, skipping retry pass")
			return drive.Credential{}, false, nil
		}
		ok, err := o.confirm(failed)
		if err != nil {
			return drive.Credential{}, false, fmt.Errorf("confirming retry: %w", err)
		}
		if !ok {
			logger.Info("credential retry declined")
			return drive.Credential{}, false, nil
		}
	case RetryAlways:
		logger.Info("acquiring shared credential", "failed", failed)
	}

	cred, err := o.creds.Acquire()
	if err != nil {
		return drive.Credential{}, false, fmt.Errorf("acquiring credential: %w", err)
	}

	return cred, true, nil
}

func failedLetters(report *Report) string {
	failed := report.Failed()
	letters := make([]string, 0, len(failed))
	for _, res := range failed {
		letters = append(letters, res.Letter.String())
	}

	return strings.Join(letters, ",")
}

func logSummary(logger *slog.Logger, report *Report) {
	created, remapped, already, skipped, failed := report.Tally()
	logger.Info("batch complete",
		"created", created,
		"remapped", remapped,
		"already_mapped", already,
		"skipped", skipped,
		"failed", failed)
}
