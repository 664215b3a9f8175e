package ui

import "github.com/charmbracelet/lipgloss"

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")
)

// Shared styles for the text renderer and the browse TUI
var (
	TagStyle        = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	TicketStyle     = lipgloss.NewStyle().Bold(true).Italic(true)
	DimStyle        = lipgloss.NewStyle().Foreground(ColorDarkGray)
	WarnStyle       = lipgloss.NewStyle().Foreground(ColorYellow)
	ErrorStyle      = lipgloss.NewStyle().Foreground(ColorRed)
	BoldStyle       = lipgloss.NewStyle().Bold(true)
	SelectedStyle   = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	IncompleteStyle = lipgloss.NewStyle().Foreground(ColorYellow).Italic(true)
)
