package reconcile

import (
	"fmt"
	"strings"
)

// BatchError reports a batch that still has failures after the retry pass
// (or for which the retry pass could not run). It carries the complete
// report, so callers see every mapping's final state, not just the failing
// subset.
type BatchError struct {
	Report *Report

	// AcquireErr is set when shared credential acquisition failed or was
	// aborted, in which case the retry pass never ran.
	AcquireErr error
}

func (e *BatchError) Error() string {
	failed := e.Report.Failed()
	letters := make([]string, 0, len(failed))
	for _, res := range failed {
		letters = append(letters, res.Letter.String())
	}

	msg := fmt.Sprintf("%d of %d mappings failed (%s)",
		len(failed), len(e.Report.Results), strings.Join(letters, ", "))
	if e.AcquireErr != nil {
		msg = fmt.Sprintf("%s; credential acquisition: %v", msg, e.AcquireErr)
	}

	return msg
}

func (e *BatchError) Unwrap() error {
	return e.AcquireErr
}
