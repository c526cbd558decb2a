package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc", "n":
		m.confirmed = false
		m.done = true
		return m, tea.Quit

	case "y":
		m.confirmed = true
		m.done = true
		return m, tea.Quit

	case "left", "h", "right", "l", "tab":
		m.confirmSelection = 1 - m.confirmSelection
		return m, nil

	case "enter", " ":
		m.confirmed = m.confirmSelection == 0
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}
