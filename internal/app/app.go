// Package app is the interactive browse mode: a release list on the
// left of the flow, ticket detail per release behind enter.
package app

import (
	"github.com/matt-winfield/rels/internal/report"

	tea "github.com/charmbracelet/bubbletea"
)

// Builder produces the assembled report. It runs once, in the
// background, when the program starts.
type Builder func() (report.Output, error)

// Model is the browse-mode application state
type Model struct {
	// RepoLabel names the repository shown in the header
	repoLabel string
	build     Builder

	// Navigation
	screen Screen
	cursor int
	scroll int

	// Data
	output report.Output
	loaded bool

	// UI state
	errorMessage string
	spinnerFrame int

	// Window size
	width  int
	height int
}

// New creates the browse model
func New(repoLabel string, build Builder) Model {
	return Model{
		repoLabel: repoLabel,
		build:     build,
		screen:    ScreenLoading,
	}
}

// Init starts the background report build and the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(buildReportCmd(m.build), tickCmd())
}

// selected returns the release row under the cursor, nil when empty
func (m Model) selected() *report.Row {
	if m.cursor < 0 || m.cursor >= len(m.output.Rows) {
		return nil
	}
	return &m.output.Rows[m.cursor]
}
