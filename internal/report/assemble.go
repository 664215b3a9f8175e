// Package report turns an engine report into presentable rows and
// renders them as colored text, a table, or JSON.
package report

import (
	"strings"
	"time"

	"github.com/matt-winfield/rels/internal/models"
	"github.com/matt-winfield/rels/internal/tickets"
)

// Options control which releases and commits make it into the output.
// Filtering happens here, after partitioning, so the engine's disjoint
// cover is never distorted by display choices.
type Options struct {
	// All includes commits with no ticket matches
	All bool
	// Filter is a substring matched against tag names and ticket keys
	Filter string
	// MaxAge drops releases whose tagged commit is older; zero keeps all
	MaxAge time.Duration
	// Now anchors MaxAge; zero means time.Now()
	Now time.Time
	// JiraURL is the ticket link template ("{ticket}" placeholder)
	JiraURL string
}

// Row is one release ready for presentation
type Row struct {
	Label      string      `json:"release"`
	Tickets    []string    `json:"tickets"`
	Commits    []CommitRow `json:"commits,omitempty"`
	Incomplete bool        `json:"incomplete,omitempty"`
	Untagged   bool        `json:"untagged,omitempty"`
}

// CommitRow is one commit inside a release row
type CommitRow struct {
	Hash    string   `json:"hash"`
	Title   string   `json:"title"`
	Tickets []string `json:"tickets"`
	URLs    []string `json:"urls,omitempty"`
}

// Output is the assembled, render-ready report
type Output struct {
	Rows        []Row    `json:"releases"`
	Unreachable []string `json:"unreachable,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

// Assemble joins ordered releases with their ticket sets and applies
// the display filters. Pure transformation, no I/O.
func Assemble(rep *models.Report, ex *tickets.Extractor, opts Options) Output {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var out Output
	for _, rel := range rep.Releases {
		if tooOld(rel, opts.MaxAge, now) {
			continue
		}
		if row, ok := assembleRow(rel, false, ex, opts); ok {
			out.Rows = append(out.Rows, row)
		}
	}

	if rep.Untagged != nil && !tooOld(*rep.Untagged, opts.MaxAge, now) {
		if row, ok := assembleRow(*rep.Untagged, true, ex, opts); ok {
			out.Rows = append(out.Rows, row)
		}
	}

	for _, tag := range rep.Unreachable {
		out.Unreachable = append(out.Unreachable, tag.Name)
	}
	out.Warnings = rep.Warnings

	return out
}

// tooOld reports whether the tagged commit predates the age cutoff
func tooOld(rel models.Release, maxAge time.Duration, now time.Time) bool {
	if maxAge <= 0 {
		return false
	}
	return rel.Time.Before(now.Add(-maxAge))
}

func assembleRow(rel models.Release, untagged bool, ex *tickets.Extractor, opts Options) (Row, bool) {
	row := Row{
		Label:      rel.Name(),
		Tickets:    rel.TicketKeys(),
		Incomplete: rel.Incomplete,
		Untagged:   untagged,
	}

	labelMatches := opts.Filter == "" || strings.Contains(row.Label, opts.Filter)

	for _, c := range rel.Commits {
		keys := ex.Extract(c.Message)
		if len(keys) == 0 && !opts.All {
			continue
		}
		if !labelMatches && !anyContains(keys, opts.Filter) {
			continue
		}
		cr := CommitRow{
			Hash:    c.ShortHash(),
			Title:   firstLine(c.Message),
			Tickets: keys,
		}
		if opts.JiraURL != "" {
			for _, k := range keys {
				cr.URLs = append(cr.URLs, tickets.URL(opts.JiraURL, k))
			}
		}
		row.Commits = append(row.Commits, cr)
	}

	if !labelMatches && len(row.Commits) == 0 {
		return Row{}, false
	}
	if !labelMatches {
		// Row kept only because tickets matched; trim the aggregate too
		row.Tickets = keepContaining(row.Tickets, opts.Filter)
	}

	return row, true
}

func anyContains(keys []string, sub string) bool {
	for _, k := range keys {
		if strings.Contains(k, sub) {
			return true
		}
	}
	return false
}

func keepContaining(keys []string, sub string) []string {
	var kept []string
	for _, k := range keys {
		if strings.Contains(k, sub) {
			kept = append(kept, k)
		}
	}
	return kept
}

func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return strings.TrimSpace(message[:i])
	}
	return strings.TrimSpace(message)
}
