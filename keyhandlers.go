package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.chosen = noChoice
		return tea.Quit
	case "enter":
		if len(m.choices) == 0 {
			return nil
		}
		m.chosen = m.startIndex() + m.cursor
		return tea.Quit
	case "n", "right", "l":
		if m.page < m.totalPages()-1 {
			m.page++
			m.cursor = 0
			m.refresh()
			m.viewport.GotoTop()
		}
	case "p", "left", "h":
		if m.page > 0 {
			m.page--
			m.cursor = 0
			m.refresh()
			m.viewport.GotoTop()
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.refresh()
		}
	case "down", "j":
		if m.cursor < len(m.visibleChoices())-1 {
			m.cursor++
			m.refresh()
		}
	case "home", "g":
		m.cursor = 0
		m.refresh()
	case "end", "G":
		m.cursor = max(0, len(m.visibleChoices())-1)
		m.refresh()
	}
	return nil
}

func (m *model) refresh() {
	m.viewport.SetContent(m.renderContent())
	m.ensureCursorVisible()
}
