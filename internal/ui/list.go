package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"selectable-list/internal/entries"
	"selectable-list/internal/infra/logx"
)

// ItemsMsg replaces the list's collection.
type ItemsMsg struct {
	Items []entries.Entry
}

// selection is the list's single optional selected position.
type selection struct {
	pos int
	ok  bool
}

func (s selection) at(pos int) bool { return s.ok && s.pos == pos }

// List renders a collection as clickable rows and owns which one is selected.
type List struct {
	items      []entries.Entry
	sel        selection
	onActivate *activator

	rows  map[string]*row // mounted rows by identity key
	shown []*row          // rows on screen, by line
	width int

	dev    bool
	warned map[string]bool
}

// activator is the single click handler shared by all rows of a List.
type activator struct{ list *List }

func (a *activator) Activate(position int) { a.list.selectAt(position) }

// NewList mounts a list over items with nothing selected.
func NewList(items []entries.Entry) *List {
	l := &List{rows: make(map[string]*row)}
	l.onActivate = &activator{list: l}
	l.items = items
	return l
}

// SetItems applies a new collection. Any change of the slice reference clears
// the selection, even when the contents are identical.
func (l *List) SetItems(items []entries.Entry) {
	if entries.Same(l.items, items) {
		return
	}
	l.items = items
	l.sel = selection{}
	if l.dev {
		l.validateItems(items)
	}
}

// SetWidth sets the line width rows are padded and truncated to. Zero leaves
// rows at their natural width.
func (l *List) SetWidth(w int) { l.width = max(w, 0) }

// SetDev switches development checks on input shape on or off.
func (l *List) SetDev(on bool) {
	l.dev = on
	if on {
		l.validateItems(l.items)
	}
}

// Len returns the number of entries in the current collection.
func (l *List) Len() int { return len(l.items) }

func (l *List) Update(msg tea.Msg) (*List, tea.Cmd) {
	switch msg := msg.(type) {
	case ItemsMsg:
		l.SetItems(msg.Items)
	case tea.WindowSizeMsg:
		l.SetWidth(msg.Width)
	case tea.MouseMsg:
		// Y is relative to the list's first line
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			l.clickAt(msg.Y)
		}
	}
	return l, nil
}

// View renders one line per entry in collection order, or nothing at all for
// an absent or empty collection.
func (l *List) View() string {
	if len(l.items) == 0 {
		l.rows = make(map[string]*row)
		l.shown = nil
		return ""
	}
	keys := identityKeys(l.items)
	next := make(map[string]*row, len(l.items))
	shown := make([]*row, len(l.items))
	lines := make([]string, len(l.items))
	for i, e := range l.items {
		r, ok := l.rows[keys[i]]
		if !ok {
			r = &row{key: keys[i]}
		}
		p := RowProps{
			Text:       e.Text,
			Position:   i,
			IsSelected: l.sel.at(i),
			OnActivate: l.onActivate,
		}
		if l.dev {
			for _, problem := range validateRowProps(p) {
				l.warnOnce(problem, logx.Fields{"key": r.key, "position": i})
			}
		}
		lines[i] = r.render(p, l.width)
		next[r.key] = r
		shown[i] = r
	}
	// rows whose key left the collection are dropped here
	l.rows, l.shown = next, shown
	return strings.Join(lines, "\n")
}

func (l *List) clickAt(y int) {
	if y < 0 || y >= len(l.shown) {
		return
	}
	l.shown[y].click()
}

func (l *List) selectAt(pos int) {
	if pos < 0 || pos >= len(l.items) {
		logx.Debugw("ignoring activation outside the collection", logx.Fields{"position": pos, "len": len(l.items)})
		return
	}
	l.sel = selection{pos: pos, ok: true}
}

// identityKeys returns the render identity of each entry: its id, or a
// positional key when the id is empty or already taken. Positional keys never
// shadow a real id elsewhere in the collection.
func identityKeys(items []entries.Entry) []string {
	ids := make(map[string]bool, len(items))
	for _, e := range items {
		if e.ID != "" {
			ids[e.ID] = true
		}
	}
	keys := make([]string, len(items))
	taken := make(map[string]bool, len(items))
	for i, e := range items {
		if e.ID != "" && !taken[e.ID] {
			keys[i] = e.ID
			taken[e.ID] = true
			continue
		}
		k := positionalKey(i)
		for ids[k] || taken[k] {
			k += "#"
		}
		keys[i] = k
		taken[k] = true
	}
	return keys
}

func positionalKey(i int) string { return "\x00#" + strconv.Itoa(i) }
