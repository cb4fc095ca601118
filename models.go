package main

import "github.com/charmbracelet/bubbles/viewport"

const (
	promptMessage  = "What do you want to watch?"
	defaultPerPage = 20
	noChoice       = -1
)

// ----- Models -----

// model is the single-choice episode picker. cursor is relative to the
// current page.
type model struct {
	title    string
	choices  []string
	cursor   int
	page     int
	perPage  int
	ready    bool
	viewport viewport.Model

	chosen int
}
