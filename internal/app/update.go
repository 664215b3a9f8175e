package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		if m.loaded {
			return m, nil
		}
		return m, tickCmd()

	case reportBuiltResult:
		return m.handleReportBuilt(msg)
	}

	return m, nil
}

func (m Model) handleReportBuilt(msg reportBuiltResult) (tea.Model, tea.Cmd) {
	m.loaded = true
	if msg.err != nil {
		m.errorMessage = msg.err.Error()
		m.screen = ScreenError
		return m, nil
	}
	m.output = msg.output
	m.screen = ScreenReleaseList
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenReleaseList:
		return m.handleListKey(msg)
	case ScreenReleaseDetail:
		return m.handleDetailKey(msg)
	case ScreenError:
		if msg.String() == "enter" || msg.String() == "esc" {
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.output.Rows)-1 {
			m.cursor++
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.output.Rows) - 1
	case "enter", "l", "right":
		if m.selected() != nil {
			m.scroll = 0
			m.screen = ScreenReleaseDetail
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "h", "left":
		m.screen = ScreenReleaseList
	case "up", "k":
		if m.scroll > 0 {
			m.scroll--
		}
	case "down", "j":
		m.scroll++
	}
	return m, nil
}
