package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"selectable-list/internal/config"
)

func InitialModel(cfg config.Config) Model {
	m := Model{
		cfg:       cfg,
		keys:      defaultKeyMap(),
		list:      NewList(nil),
		statusMsg: "Loading entries…",
	}
	m.list.SetDev(cfg.Dev)

	fi := textinput.New()
	fi.Placeholder = "Fuzzy filter…"
	fi.Prompt = "/ "
	fi.CharLimit = 200
	fi.Width = 40
	m.filterInput = fi

	return m
}

func (m Model) Init() tea.Cmd { return loadEntriesCmd(m.cfg.EntriesFile) }
