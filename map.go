package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/winmaps/drivemap/internal/credential"
	"github.com/winmaps/drivemap/internal/drive"
	"github.com/winmaps/drivemap/internal/reconcile"
	"github.com/winmaps/drivemap/internal/wnet"
)

// Flags shared by map and apply, bound in their constructors. Only one
// command runs per invocation, so sharing the variables is safe.
var (
	flagDryRun     bool
	flagPersistent bool
)

// Flags specific to map.
var (
	flagLabel   string
	flagAskCred bool
)

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map LETTER TARGET",
		Short: "Map one drive letter to a UNC share",
		Long: `Reconcile a single drive letter against a UNC target: create the
mapping if the letter is free, remap it if it points elsewhere, and do
nothing if it already matches.

Examples:
  drivemap map H \\filer01\home
  drivemap map S: \\filer01\shared --label shared --persistent
  drivemap map H \\filer01\home --ask-cred`,
		Args: cobra.ExactArgs(2),
		RunE: runMap,
	}

	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report what would change without touching anything")
	cmd.Flags().BoolVar(&flagPersistent, "persistent", false, "restore the mapping at logon")
	cmd.Flags().StringVar(&flagLabel, "label", "", "descriptive label for output")
	cmd.Flags().BoolVar(&flagAskCred, "ask-cred", false, "prompt for a username and password")

	return cmd
}

func runMap(_ *cobra.Command, args []string) error {
	mapping, err := drive.NewMapping(args[0], args[1])
	if err != nil {
		return err
	}

	mapping.Label = flagLabel

	provider, err := wnet.New(wnet.Options{
		Persistent: resolvedCfg.Persistent,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	var cred *drive.Credential

	// Dry runs never prompt: no connection is attempted, so no credential
	// is needed.
	if flagAskCred && !flagDryRun {
		if !isInteractive() {
			return fmt.Errorf("--ask-cred needs an interactive session to prompt")
		}

		c, err := newAcquirer().AcquireWithRetry()
		if err != nil {
			return fmt.Errorf("acquiring credential: %w", err)
		}

		cred = &c
	}

	rec := reconcile.NewReconciler(provider, logger)

	res, err := rec.Reconcile(mapping, cred, flagDryRun)
	if err != nil {
		return err
	}

	if flagJSON {
		if err := printJSON(toResultPayload(res)); err != nil {
			return err
		}
	} else {
		fmt.Println(formatResult(res))
	}

	if res.Outcome == reconcile.OutcomeFailed {
		if wnet.IsCredentialError(res.Err) && !flagAskCred {
			statusf("Hint: %s refused access; retry with --ask-cred to supply a username and password.\n",
				mapping.Target.Server())
		}

		return fmt.Errorf("mapping %s failed: %w", mapping.Letter, res.Err)
	}

	return nil
}

// newAcquirer assembles the interactive credential acquirer with the resolved
// domain hint and the local machine fallback.
func newAcquirer() *credential.Acquirer {
	domain := ""
	if resolvedCfg != nil {
		domain = resolvedCfg.Domain
	}

	return credential.NewAcquirer(credential.TerminalPrompter{}, domain, credential.DefaultDomain(), logger)
}
