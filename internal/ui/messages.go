package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectable-list/internal/entries"
)

// ---------- Messages / Cmds ----------
type entriesLoadedMsg struct {
	items  []entries.Entry
	source string
	err    error
}

// loadEntriesCmd reads the configured entries file, or hands out the sample
// collection when none is configured. Each call yields a fresh slice.
func loadEntriesCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return entriesLoadedMsg{items: entries.Sample(), source: "sample"}
		}
		items, err := entries.Load(path)
		if err != nil {
			return entriesLoadedMsg{source: path, err: err}
		}
		return entriesLoadedMsg{items: items, source: path}
	}
}
