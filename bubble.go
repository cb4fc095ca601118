package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrSelectionCancelled is returned when the user quits the picker without
// choosing, or there is nothing to choose from.
var ErrSelectionCancelled = errors.New("selection cancelled")

func initialModel(title string, choices []string) model {
	return model{
		title:   title,
		choices: choices,
		perPage: defaultPerPage,
		chosen:  noChoice,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)
	case tea.KeyMsg:
		// The cursor owns the keyboard; the viewport only follows it.
		cmd = m.handleKey(msg)
		return m, cmd
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.renderView()
}

// selectChoice shows choices in a full-screen picker and returns the index
// of the one picked.
func selectChoice(title string, choices []string, opts ...tea.ProgramOption) (int, error) {
	if len(choices) == 0 {
		return noChoice, ErrSelectionCancelled
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(initialModel(title, choices), opts...)
	final, err := p.Run()
	if err != nil {
		return noChoice, fmt.Errorf("%w: %v", ErrSelectionCancelled, err)
	}

	m, ok := final.(model)
	if !ok || m.chosen == noChoice {
		return noChoice, ErrSelectionCancelled
	}
	return m.chosen, nil
}
