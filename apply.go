package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winmaps/drivemap/internal/credential"
	"github.com/winmaps/drivemap/internal/reconcile"
	"github.com/winmaps/drivemap/internal/wnet"
)

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reconcile every mapping in the config file",
		Long: `Walk the [[mapping]] entries in config order and bring each drive
letter to its desired target. Failures are recorded and reported at the
end; one unreachable share never blocks the rest.

With on_failure = "prompt" (the default), a single credential prompt is
offered after the first pass when any mapping failed, and only the
failed mappings are retried with it.`,
		Args: cobra.NoArgs,
		RunE: runApply,
	}

	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report what would change without touching anything")
	cmd.Flags().BoolVar(&flagPersistent, "persistent", false, "restore the mappings at logon")

	return cmd
}

func runApply(_ *cobra.Command, _ []string) error {
	if len(resolvedCfg.Mappings) == 0 {
		fmt.Printf("No mappings configured; add [[mapping]] entries to %s or run 'drivemap config init'.\n",
			resolvedCfg.Path)

		return nil
	}

	provider, err := wnet.New(wnet.Options{
		Persistent: resolvedCfg.Persistent,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	policy, err := reconcile.ParseRetryPolicy(resolvedCfg.OnFailure)
	if err != nil {
		return err
	}

	// A logon script has nobody to answer a prompt.
	if policy == reconcile.RetryPrompt && !isInteractive() {
		logger.Warn("non-interactive session, treating on_failure=prompt as never")

		policy = reconcile.RetryNever
	}

	acquirer := newAcquirer()

	orch := reconcile.NewOrchestrator(reconcile.OrchestratorConfig{
		Provider:    provider,
		Credentials: credential.RetrySource{Acquirer: acquirer},
		Policy:      policy,
		Confirm:     acquirer.ConfirmRetry,
		Logger:      logger,
	})

	report, err := orch.MapAll(resolvedCfg.Mappings, flagDryRun)
	if report != nil {
		if perr := printReport(report); perr != nil {
			return perr
		}
	}

	return err
}
