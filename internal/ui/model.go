package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"selectable-list/internal/config"
	"selectable-list/internal/entries"
)

// headerHeight is the number of lines View writes above the list.
const headerHeight = 3

type keyMap struct {
	Quit   key.Binding
	Reload key.Binding
	Add    key.Binding
	Filter key.Binding
	Close  key.Binding
	Apply  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add entry")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep filter")),
	}
}

// Model hosts one List inside a full-screen program.
type Model struct {
	cfg       config.Config
	keys      keyMap
	list      *List
	all       []entries.Entry
	source    string
	statusMsg string
	loadErr   error
	width     int
	height    int

	filtering   bool
	filterInput textinput.Model
	query       string
}
