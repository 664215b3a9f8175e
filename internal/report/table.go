package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TableRenderer emits one line per release via tabwriter
type TableRenderer struct {
	w io.Writer
}

func (r *TableRenderer) Render(out Output) error {
	if len(out.Rows) == 0 {
		fmt.Fprintln(r.w, "No releases found.")
		return r.warnings(out)
	}

	w := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RELEASE\tCOMMITS\tTICKETS")
	fmt.Fprintln(w, "-------\t-------\t-------")

	for _, row := range out.Rows {
		label := row.Label
		if row.Incomplete {
			label += " (incomplete)"
		}
		ticketsDisplay := strings.Join(row.Tickets, ", ")
		if ticketsDisplay == "" {
			ticketsDisplay = "(none)"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", label, len(row.Commits), ticketsDisplay)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	return r.warnings(out)
}

func (r *TableRenderer) warnings(out Output) error {
	for _, tag := range out.Unreachable {
		fmt.Fprintf(r.w, "unreachable tag: %s\n", tag)
	}
	for _, warn := range out.Warnings {
		fmt.Fprintf(r.w, "warning: %s\n", warn)
	}
	return nil
}
