package app

import (
	"fmt"
	"strings"

	"github.com/matt-winfield/rels/internal/ui"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// View renders the application
func (m Model) View() string {
	var sections []string

	sections = append(sections, ui.RenderBanner())
	sections = append(sections, ui.DimStyle.Render("  "+m.repoLabel))
	sections = append(sections, "")

	switch m.screen {
	case ScreenLoading:
		sections = append(sections, m.viewLoading())
	case ScreenReleaseList:
		sections = append(sections, m.viewList())
	case ScreenReleaseDetail:
		sections = append(sections, m.viewDetail())
	case ScreenError:
		sections = append(sections, ui.ErrorStyle.Render("error: "+m.errorMessage))
		sections = append(sections, "")
		sections = append(sections, ui.DimStyle.Render("press enter to quit"))
	}

	sections = append(sections, "")
	sections = append(sections, m.viewStatus())

	return strings.Join(sections, "\n")
}

func (m Model) viewLoading() string {
	frame := spinnerFrames[m.spinnerFrame%len(spinnerFrames)]
	return fmt.Sprintf("%s reading repository...", ui.SelectedStyle.Render(frame))
}

func (m Model) viewList() string {
	if len(m.output.Rows) == 0 {
		return ui.DimStyle.Render("no releases found")
	}

	visible := m.visibleLines()
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}

	var lines []string
	for i := start; i < len(m.output.Rows) && i < start+visible; i++ {
		lines = append(lines, m.listLine(i))
	}
	return strings.Join(lines, "\n")
}

func (m Model) listLine(i int) string {
	row := m.output.Rows[i]

	label := row.Label
	if row.Incomplete {
		label += " (incomplete)"
	}

	count := ui.DimStyle.Render(fmt.Sprintf("  %d tickets, %d commits", len(row.Tickets), len(row.Commits)))

	if i == m.cursor {
		return ui.SelectedStyle.Render("> "+label) + count
	}
	if len(row.Commits) == 0 {
		return ui.DimStyle.Render("  " + label + " (no entries)")
	}
	if row.Untagged {
		return "  " + ui.WarnStyle.Render(label) + count
	}
	return "  " + ui.TagStyle.Render(label) + count
}

func (m Model) viewDetail() string {
	row := m.selected()
	if row == nil {
		return ""
	}

	var lines []string
	lines = append(lines, ui.SectionHeader(row.Label, ui.ColorGreen))
	lines = append(lines, "")

	if len(row.Tickets) == 0 {
		lines = append(lines, ui.DimStyle.Render("(no tickets)"))
	}
	for _, key := range row.Tickets {
		lines = append(lines, "  "+ui.TicketStyle.Render(key))
	}

	if len(row.Commits) > 0 {
		lines = append(lines, "")
		lines = append(lines, ui.SectionHeader("COMMITS", ui.ColorDarkGray))
		for _, c := range row.Commits {
			lines = append(lines, fmt.Sprintf("  %s %s", ui.DimStyle.Render(c.Hash), c.Title))
		}
	}

	return m.scrolled(lines)
}

// scrolled clamps m.scroll and windows lines to the terminal height
func (m Model) scrolled(lines []string) string {
	visible := m.visibleLines()
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := m.scroll
	if scroll > maxScroll {
		scroll = maxScroll
	}

	end := scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[scroll:end], "\n")
}

func (m Model) visibleLines() int {
	v := m.height - len(ui.Banner) - 6
	if v < 5 {
		v = 5
	}
	return v
}

func (m Model) viewStatus() string {
	var help string
	switch m.screen {
	case ScreenReleaseList:
		help = "↑/↓ move · enter detail · q quit"
	case ScreenReleaseDetail:
		help = "↑/↓ scroll · esc back · q quit"
	default:
		help = "q quit"
	}

	status := ui.DimStyle.Render(help)
	if n := len(m.output.Warnings); n > 0 && m.loaded {
		status += "  " + ui.WarnStyle.Render(fmt.Sprintf("%d warnings", n))
	}
	return status
}
