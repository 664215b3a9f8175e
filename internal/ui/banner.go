package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the ASCII art header for the browse TUI
var Banner = []string{
	` ____  _____ _     ____  `,
	`|  _ \| ____| |   / ___| `,
	`| |_) |  _| | |   \___ \ `,
	`|  _ <| |___| |___ ___) |`,
	`|_| \_\_____|_____|____/ `,
}

// RenderBanner returns the styled banner as a string
func RenderBanner() string {
	bannerStyle := lipgloss.NewStyle().Foreground(ColorCyan)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}

	return strings.Join(lines, "\n")
}
