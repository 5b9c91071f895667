package reconcile

import (
	"log/slog"

	"github.com/winmaps/drivemap/internal/drive"
)

// Reconciler brings a single drive letter binding into agreement with a
// desired mapping.
type Reconciler struct {
	provider Provider
	logger   *slog.Logger
}

// NewReconciler creates a Reconciler. A nil logger falls back to
// slog.Default().
func NewReconciler(provider Provider, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Reconciler{provider: provider, logger: logger}
}

// Reconcile decides and executes the change for one mapping: no-op when the
// live binding already matches the target, replace when it points elsewhere,
// create when the letter is free.
//
// A non-nil error is always a *drive.ValidationError, returned before any
// provider call. Provider failures never escape as errors; they come back
// inside the Result as OutcomeFailed so one bad mapping cannot abort a
// batch. With dryRun set, only Query is issued; Bind and Unbind are never
// called.
func (r *Reconciler) Reconcile(m drive.Mapping, cred *drive.Credential, dryRun bool) (Result, error) {
	if err := m.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Letter: m.Letter, Target: m.Target, Label: m.Label}

	r.logger.Info("mapping drive", "letter", m.Letter, "target", m.Target, "dry_run", dryRun)

	prior, bound, err := r.provider.Query(m.Letter)
	if err != nil {
		r.logger.Debug("reconcile: query failed", "letter", m.Letter, "error", err)
		return failed(res, "querying current binding", err), nil
	}

	if bound && prior.Equal(m.Target) {
		r.logger.Debug("reconcile: already mapped", "letter", m.Letter, "target", m.Target)
		res.Outcome = OutcomeAlreadyMapped
		return res, nil
	}

	if dryRun {
		res.Outcome = OutcomeSkipped
		if bound {
			res.Detail = "would replace " + priorLabel(prior)
		} else {
			res.Detail = "would map"
		}
		r.logger.Debug("reconcile: dry run", "letter", m.Letter, "detail", res.Detail)

		return res, nil
	}

	if bound {
		r.logger.Debug("reconcile: target differs, unbinding",
			"letter", m.Letter, "current", prior, "desired", m.Target)
		if err := r.provider.Unbind(m.Letter); err != nil {
			// Bind is not attempted on top of a binding that refused to go.
			return failed(res, "removing current binding", err), nil
		}
	}

	if err := r.provider.Bind(m, cred); err != nil {
		return failed(res, "binding", err), nil
	}

	if bound {
		res.Outcome = OutcomeRemapped
		res.Detail = "was " + priorLabel(prior)
	} else {
		res.Outcome = OutcomeCreated
	}
	r.logger.Debug("reconcile: done", "letter", m.Letter, "outcome", res.Outcome)

	return res, nil
}

func failed(res Result, context string, err error) Result {
	res.Outcome = OutcomeFailed
	res.Detail = context
	res.Err = err

	return res
}

// priorLabel renders a prior target for report details. Query reports a zero
// path for occupied letters bound to something other than a UNC share.
func priorLabel(prior drive.UNCPath) string {
	if prior.IsZero() {
		return "non-share binding"
	}

	return prior.String()
}
