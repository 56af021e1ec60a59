package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- UI Styles ---
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#8942E1"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// the two row states; only the background differs
	rowInactiveStyle = lipgloss.NewStyle().Padding(0, 1)
	rowActiveStyle   = rowInactiveStyle.
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#8942E1"))
)

// renderFooter creates a consistent footer across all views
// statusLine: optional status information (shown in subtleStyle)
// helpLines: help text lines (shown in helpStyle)
func renderFooter(statusLine string, helpLines ...string) string {
	var b strings.Builder

	if statusLine != "" {
		b.WriteString(subtleStyle.Render(statusLine) + "\n")
	}

	for _, line := range helpLines {
		b.WriteString(helpStyle.Render(line) + "\n")
	}

	// Remove trailing newline
	result := b.String()
	return strings.TrimSuffix(result, "\n")
}
