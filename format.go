package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/winmaps/drivemap/internal/reconcile"
)

// statusf prints a hint or progress message to stderr unless quiet mode is set.
func statusf(format string, args ...any) {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// formatResult renders one reconciliation result as a single line:
//
//	H: \\filer01\home (created)
//	S: \\filer01\scratch (failed: access denied)
func formatResult(res reconcile.Result) string {
	line := fmt.Sprintf("%s %s (%s", res.Letter.WithColon(), res.Target, res.Outcome)

	switch {
	case res.Err != nil:
		line += ": " + res.Err.Error()
	case res.Detail != "":
		line += ": " + res.Detail
	}

	return line + ")"
}

// resultPayload is the JSON shape of a single reconciliation result.
type resultPayload struct {
	Letter  string `json:"letter"`
	Path    string `json:"path"`
	Label   string `json:"label,omitempty"`
	Outcome string `json:"outcome"`
	Detail  string `json:"detail,omitempty"`
	Error   string `json:"error,omitempty"`
}

func toResultPayload(res reconcile.Result) resultPayload {
	p := resultPayload{
		Letter:  res.Letter.WithColon(),
		Path:    res.Target.String(),
		Label:   res.Label,
		Outcome: res.Outcome.String(),
		Detail:  res.Detail,
	}

	if res.Err != nil {
		p.Error = res.Err.Error()
	}

	return p
}

// reportPayload is the JSON shape of a batch report.
type reportPayload struct {
	Results   []resultPayload `json:"results"`
	Succeeded bool            `json:"succeeded"`
}

func toReportPayload(report *reconcile.Report) reportPayload {
	results := make([]resultPayload, 0, len(report.Results))
	for _, res := range report.Results {
		results = append(results, toResultPayload(res))
	}

	return reportPayload{Results: results, Succeeded: report.Succeeded}
}

// printReport renders a batch report, one line per mapping in input order,
// followed by a tally line. In JSON mode the whole report is one document.
func printReport(report *reconcile.Report) error {
	if flagJSON {
		return printJSON(toReportPayload(report))
	}

	for _, res := range report.Results {
		fmt.Println(formatResult(res))
	}

	created, remapped, already, skipped, failed := report.Tally()
	fmt.Printf("\n%d created, %d remapped, %d already mapped, %d skipped, %d failed\n",
		created, remapped, already, skipped, failed)

	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}

// printTable writes rows as a borderless left-aligned table.
// headers and each row must have the same length.
func printTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, row := range rows {
		table.Append(row)
	}

	table.Render()
}
