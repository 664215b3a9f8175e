package app

import (
	"time"

	"github.com/matt-winfield/rels/internal/report"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for async operations

type reportBuiltResult struct {
	output report.Output
	err    error
}

type tickMsg time.Time

// buildReportCmd runs the report build in the background
func buildReportCmd(build Builder) tea.Cmd {
	return func() tea.Msg {
		output, err := build()
		return reportBuiltResult{output: output, err: err}
	}
}

// tickCmd drives the loading spinner
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
