package ui

import (
	"fmt"

	"selectable-list/internal/entries"
	"selectable-list/internal/infra/logx"
)

// validateRowProps lists the ways p violates the row contract. An empty
// result means the props are well formed.
func validateRowProps(p RowProps) []string {
	var problems []string
	if p.OnActivate == nil {
		problems = append(problems, "row prop OnActivate is required")
	}
	if p.Position < 0 {
		problems = append(problems, fmt.Sprintf("row prop Position must not be negative, got %d", p.Position))
	}
	return problems
}

// validateItems warns about entries without a usable identity. Rendering
// still proceeds with a positional key for those entries.
func (l *List) validateItems(items []entries.Entry) {
	seen := make(map[string]int, len(items))
	for i, e := range items {
		if e.ID == "" {
			l.warnOnce(fmt.Sprintf("entry at position %d has no id; row identity falls back to its position", i),
				logx.Fields{"position": i, "text": e.Text})
			continue
		}
		if first, dup := seen[e.ID]; dup {
			l.warnOnce(fmt.Sprintf("entry id %q at position %d duplicates position %d", e.ID, i, first),
				logx.Fields{"id": e.ID, "position": i})
			continue
		}
		seen[e.ID] = i
	}
}

func (l *List) warnOnce(msg string, fields logx.Fields) {
	if l.warned == nil {
		l.warned = make(map[string]bool)
	}
	if l.warned[msg] {
		return
	}
	l.warned[msg] = true
	logx.Warnw(msg, fields)
}
