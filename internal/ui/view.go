package ui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Selectable List"))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(10, m.width-2))))
	b.WriteString("\n\n")

	if body := m.list.View(); body != "" {
		b.WriteString(body)
	} else if m.query != "" {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("No entries match %q.", m.query)))
	} else {
		b.WriteString(subtleStyle.Render("No entries."))
	}
	b.WriteString("\n\n")

	if m.filtering {
		b.WriteString(m.filterInput.View() + "\n")
	} else if m.query != "" {
		b.WriteString(subtleStyle.Render("filter: "+m.query) + "\n")
	}
	if m.loadErr != nil {
		b.WriteString(warnStyle.Render("! "+m.loadErr.Error()) + "\n")
	}
	b.WriteString(renderFooter(m.statusMsg, m.helpLine()))
	return b.String()
}

func (m Model) helpLine() string {
	bindings := []struct{ k, d string }{
		{m.keys.Reload.Help().Key, m.keys.Reload.Help().Desc},
		{m.keys.Add.Help().Key, m.keys.Add.Help().Desc},
		{m.keys.Filter.Help().Key, m.keys.Filter.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	}
	if m.filtering {
		bindings = []struct{ k, d string }{
			{m.keys.Apply.Help().Key, m.keys.Apply.Help().Desc},
			{m.keys.Close.Help().Key, m.keys.Close.Help().Desc},
		}
	}
	parts := make([]string, 0, len(bindings)+1)
	parts = append(parts, "click select")
	for _, bd := range bindings {
		parts = append(parts, bd.k+" "+bd.d)
	}
	return strings.Join(parts, "  |  ")
}
