package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/matt-winfield/rels/internal/ui"
)

// TextRenderer is the default colored output: one green header per
// release with its ticket-bearing commits indented underneath
type TextRenderer struct {
	w io.Writer
}

func (r *TextRenderer) Render(out Output) error {
	for _, row := range out.Rows {
		r.renderRow(row)
	}

	for _, tag := range out.Unreachable {
		fmt.Fprintln(r.w, ui.ErrorStyle.Render("unreachable tag: "+tag))
	}
	for _, warn := range out.Warnings {
		fmt.Fprintln(r.w, ui.WarnStyle.Render("warning: "+warn))
	}

	return nil
}

func (r *TextRenderer) renderRow(row Row) {
	label := row.Label

	if len(row.Commits) == 0 {
		fmt.Fprintln(r.w, ui.DimStyle.Render(label+" (no entries)"))
		return
	}

	header := ui.TagStyle.Render(label)
	if row.Untagged {
		header = ui.WarnStyle.Render(label)
	}
	if row.Incomplete {
		header += " " + ui.IncompleteStyle.Render("(incomplete)")
	}
	fmt.Fprintln(r.w, header)

	for _, c := range row.Commits {
		fmt.Fprintln(r.w, "  "+r.commitLine(c))
	}
}

func (r *TextRenderer) commitLine(c CommitRow) string {
	keys := make([]string, 0, len(c.Tickets))
	for _, k := range c.Tickets {
		keys = append(keys, ui.TicketStyle.Render(k))
	}

	display := strings.Join(keys, ", ")
	if display == "" {
		display = ui.DimStyle.Render("(no tickets)")
	}

	if len(c.URLs) > 0 {
		return fmt.Sprintf("%-10s | %s", display, strings.Join(c.URLs, ", "))
	}
	return display
}
