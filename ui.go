package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderRight(true).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderLeft(true).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// ----- UI Handlers -----

func (m *model) handleWindowResize(msg tea.WindowSizeMsg) {
	headerHeight := lipgloss.Height(m.headerView())
	footerHeight := lipgloss.Height(m.footerView())
	verticalMargin := headerHeight + footerHeight

	if !m.ready {
		m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
		m.viewport.YPosition = headerHeight
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - verticalMargin
		m.viewport.SetContent(m.renderContent())
	}
	m.ensureCursorVisible()
}

func (m *model) ensureCursorVisible() {
	cursorY := m.cursor

	if cursorY < m.viewport.YOffset {
		m.viewport.YOffset = cursorY
	}

	if cursorY > m.viewport.YOffset+m.viewport.Height-1 {
		m.viewport.YOffset = cursorY - m.viewport.Height + 1
	}

	if m.viewport.YOffset > m.viewport.TotalLineCount()-m.viewport.Height {
		m.viewport.YOffset = m.viewport.TotalLineCount() - m.viewport.Height
	}
	if m.viewport.YOffset < 0 {
		m.viewport.YOffset = 0
	}
}

func (m model) renderView() string {
	if !m.ready {
		return "\n  Loading..."
	}
	return fmt.Sprintf("%s\n%s\n%s",
		m.headerView(),
		m.viewport.View(),
		m.footerView())
}

// ----- View Components -----

func (m model) renderContent() string {
	visible := m.visibleChoices()
	if len(visible) == 0 {
		return "No episodes found."
	}

	maxWidth := m.viewport.Width - 2
	var sb strings.Builder
	for i, choice := range visible {
		label := truncate(choice, maxWidth)
		if m.cursor == i {
			sb.WriteString("> " + hyperlink(selectedStyle.Render(label), fileURL(choice)))
		} else {
			sb.WriteString("  " + label)
		}
		if i < len(visible)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m model) headerView() string {
	title := titleStyle.Render(m.title)
	line := strings.Repeat("─", max(0, m.viewport.Width-lipgloss.Width(title)))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, line)
}

func (m model) footerView() string {
	pageInfo := fmt.Sprintf("Page %d/%d | %d-%d of %d",
		m.page+1,
		m.totalPages(),
		min(m.startIndex()+1, len(m.choices)),
		m.endIndex(),
		len(m.choices))

	info := infoStyle.Render(pageInfo)
	help := helpStyle.Render(" ↑/k ↓/j move • n/p page • enter play • q quit ")
	line := strings.Repeat("─", max(0, m.viewport.Width-lipgloss.Width(info)-lipgloss.Width(help)))
	return lipgloss.JoinHorizontal(lipgloss.Center, help, line, info)
}

func (m model) totalPages() int {
	if len(m.choices) == 0 {
		return 1
	}
	return (len(m.choices) + m.perPage - 1) / m.perPage
}

func (m model) startIndex() int {
	return m.page * m.perPage
}

func (m model) endIndex() int {
	end := (m.page + 1) * m.perPage
	if end > len(m.choices) {
		return len(m.choices)
	}
	return end
}

func (m model) visibleChoices() []string {
	return m.choices[m.startIndex():m.endIndex()]
}
