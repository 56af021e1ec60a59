package ui

import (
	"github.com/sahilm/fuzzy"

	"selectable-list/internal/entries"
)

// entrySource adapts a collection to fuzzy.Source, matching on the label.
type entrySource []entries.Entry

func (s entrySource) String(i int) string { return s[i].Text }
func (s entrySource) Len() int            { return len(s) }

// filterEntries returns the entries whose text fuzzily matches query, best
// match first. The result never shares its backing array with all.
func filterEntries(all []entries.Entry, query string) []entries.Entry {
	if query == "" {
		return append([]entries.Entry(nil), all...)
	}
	matches := fuzzy.FindFrom(query, entrySource(all))
	out := make([]entries.Entry, 0, len(matches))
	for _, mt := range matches {
		out = append(out, all[mt.Index])
	}
	return out
}

// applyFilter hands the list the collection matching the current query. The
// unfiltered collection is passed through as is, so re-applying an empty
// query keeps the selection.
func (m *Model) applyFilter() {
	if m.query == "" {
		m.list.SetItems(m.all)
		return
	}
	m.list.SetItems(filterEntries(m.all, m.query))
}
