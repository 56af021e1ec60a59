package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Activator receives row clicks. Implementations must be comparable
// (pointer types), since row props are compared with == to skip redraws.
type Activator interface {
	Activate(position int)
}

// RowProps are the resolved inputs of one row. Position identifies the row
// to OnActivate and is never displayed.
type RowProps struct {
	Text       string
	Position   int
	IsSelected bool
	OnActivate Activator
}

// row is one mounted row instance. It has no state of its own beyond the
// memo of its last render.
type row struct {
	key      string
	props    RowProps
	width    int
	out      string
	rendered bool
	renders  int
}

// render returns the row's line, reusing the previous output when neither
// the props nor the width changed.
func (r *row) render(p RowProps, width int) string {
	if r.rendered && p == r.props && width == r.width {
		return r.out
	}
	r.props, r.width = p, width
	r.out = renderRow(p, width)
	r.rendered = true
	r.renders++
	return r.out
}

// click reports the row's position through the props it was last rendered with.
func (r *row) click() {
	if !r.rendered || r.props.OnActivate == nil {
		return
	}
	r.props.OnActivate.Activate(r.props.Position)
}

var lineFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func renderRow(p RowProps, width int) string {
	style := rowInactiveStyle
	if p.IsSelected {
		style = rowActiveStyle
	}
	text := lineFlattener.Replace(p.Text)
	if width <= 0 {
		return style.Render(text)
	}
	// measured the way lipgloss measures, or Width would wrap the line
	inner := max(width-style.GetHorizontalFrameSize(), 0)
	text = ansi.Truncate(text, inner, "…")
	return style.Width(width).Render(text)
}
