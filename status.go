package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/winmaps/drivemap/internal/drive"
	"github.com/winmaps/drivemap/internal/wnet"
)

// Status column tokens.
const (
	statusOK          = "ok"
	statusWrongTarget = "wrong target"
	statusUnmapped    = "unmapped"
	statusError       = "error"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Compare configured mappings with live drive state",
		Long: `Query each configured drive letter and report whether it points at the
desired target. Nothing is changed; run apply to reconcile.`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}
}

// statusRow pairs one configured mapping with the live binding of its letter.
type statusRow struct {
	Letter string `json:"letter"`
	Target string `json:"path"`
	Status string `json:"status"`
	Label  string `json:"label,omitempty"`
	Live   string `json:"live,omitempty"`
	Error  string `json:"error,omitempty"`
}

func runStatus(_ *cobra.Command, _ []string) error {
	if len(resolvedCfg.Mappings) == 0 {
		fmt.Printf("No mappings configured; add [[mapping]] entries to %s or run 'drivemap config init'.\n",
			resolvedCfg.Path)

		return nil
	}

	provider, err := wnet.New(wnet.Options{Logger: logger})
	if err != nil {
		return err
	}

	rows := collectStatus(provider, resolvedCfg.Mappings)

	if flagJSON {
		return printJSON(rows)
	}

	printStatusTable(os.Stdout, rows)

	return nil
}

// liveQuerier is the subset of the provider that status needs.
type liveQuerier interface {
	Query(letter drive.Letter) (drive.UNCPath, bool, error)
}

// collectStatus queries each desired letter and classifies it against its
// configured target. Query failures become rows rather than aborting, so one
// broken letter never hides the rest.
func collectStatus(q liveQuerier, desired []drive.Mapping) []statusRow {
	rows := make([]statusRow, 0, len(desired))

	for _, m := range desired {
		row := statusRow{
			Letter: m.Letter.WithColon(),
			Target: m.Target.String(),
			Label:  m.Label,
		}

		live, bound, err := q.Query(m.Letter)

		switch {
		case err != nil:
			row.Status = statusError
			row.Error = err.Error()

			logger.Warn("status query failed", "letter", m.Letter.String(), "error", err)
		case !bound:
			row.Status = statusUnmapped
		case live.Equal(m.Target):
			row.Status = statusOK
			row.Live = live.String()
		default:
			row.Status = statusWrongTarget
			row.Live = live.String()
		}

		rows = append(rows, row)
	}

	return rows
}

// printStatusTable renders rows in the four standard columns.
func printStatusTable(w io.Writer, rows []statusRow) {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{row.Letter, row.Target, row.Status, row.Label})
	}

	printTable(w, []string{"LETTER", "TARGET", "STATUS", "LABEL"}, cells)
}
