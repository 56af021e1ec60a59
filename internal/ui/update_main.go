package ui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectable-list/internal/entries"
	"selectable-list/internal/infra/logx"
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.statusMsg = "Reloading…"
			return m, loadEntriesCmd(m.cfg.EntriesFile)
		case key.Matches(msg, m.keys.Add):
			e := entries.New(fmt.Sprintf("Item %d", len(m.all)+1))
			// a new backing array, so the list sees a new collection
			m.all = append(slices.Clone(m.all), e)
			m.applyFilter()
			m.statusMsg = fmt.Sprintf("Added %q.", e.Text)
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			m.filterInput.SetValue(m.query)
			return m, m.filterInput.Focus()
		case key.Matches(msg, m.keys.Close):
			if m.query != "" {
				m.query = ""
				m.applyFilter()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetWidth(msg.Width)

	case tea.MouseMsg:
		msg.Y -= headerHeight
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case entriesLoadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			m.statusMsg = "Load failed: " + msg.err.Error()
			logx.Errorf("load entries from %s: %v", msg.source, msg.err)
			return m, nil
		}
		m.loadErr = nil
		m.all = msg.items
		m.source = msg.source
		m.applyFilter()
		m.statusMsg = fmt.Sprintf("Loaded %d entries from %s.", len(m.all), m.source)
		logx.Infof("loaded %d entries from %s", len(m.all), m.source)
		return m, nil
	}
	return m, nil
}

// handleFilterKey edits the query; every edit hands the list a new collection.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.filtering = false
		m.filterInput.Blur()
		m.query = ""
		m.applyFilter()
		return m, nil
	case key.Matches(msg, m.keys.Apply):
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if q := m.filterInput.Value(); q != m.query {
		m.query = q
		m.applyFilter()
	}
	return m, cmd
}
