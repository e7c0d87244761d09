// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

const (
	TextHeader  = "id\tinput\tresult\tcomplement\toutput"
	StatsHeader = "id\tlength\tgc_content\tpalindromic\tmax_run"
)

// WriteText prints one tab-delimited line per row.
func WriteText(w io.Writer, rows []Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TextHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Input, r.Result, r.Complement, r.Output); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatsText prints one tab-delimited line per stats row.
func WriteStatsText(w io.Writer, rows []StatsRow, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, StatsHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%.3f\t%t\t%d\n",
			r.ID, r.Length, r.GCContent, r.Palindromic, r.MaxRun); err != nil {
			return err
		}
	}
	return nil
}
