package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"selectable-list/internal/entries"
	"selectable-list/internal/infra/logx"
)

func fruit() []entries.Entry {
	return []entries.Entry{{ID: "a", Text: "Apple"}, {ID: "b", Text: "Banana"}}
}

func click(l *List, y int) {
	l.Update(tea.MouseMsg{Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// selectedFlags reports IsSelected of each row as rendered last.
func selectedFlags(l *List) []bool {
	out := make([]bool, len(l.shown))
	for i, r := range l.shown {
		out[i] = r.props.IsSelected
	}
	return out
}

func TestListRendersNothingForAbsentOrEmpty(t *testing.T) {
	for name, items := range map[string][]entries.Entry{"nil": nil, "empty": {}} {
		l := NewList(items)
		if got := l.View(); got != "" {
			t.Fatalf("%s: expected no output, got %q", name, got)
		}
		if len(l.shown) != 0 || len(l.rows) != 0 {
			t.Fatalf("%s: expected no mounted rows", name)
		}
	}
}

func TestListRendersOneRowPerEntryInOrder(t *testing.T) {
	l := NewList(fruit())
	lines := strings.Split(l.View(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Apple") || !strings.Contains(lines[1], "Banana") {
		t.Fatalf("unexpected order: %q", lines)
	}
	if l.shown[0].key != "a" || l.shown[1].key != "b" {
		t.Fatalf("expected rows keyed by id, got %q %q", l.shown[0].key, l.shown[1].key)
	}
	if l.sel.ok {
		t.Fatalf("nothing may be selected after mount")
	}
}

func TestListClickSelectsExactlyOneRow(t *testing.T) {
	l := NewList([]entries.Entry{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}, {ID: "c", Text: "C"}})
	l.View()

	click(l, 1)
	l.View()
	if got := selectedFlags(l); got[0] || !got[1] || got[2] {
		t.Fatalf("expected only row 1 selected, got %v", got)
	}

	click(l, 2)
	l.View()
	if got := selectedFlags(l); got[0] || got[1] || !got[2] {
		t.Fatalf("expected only row 2 selected, got %v", got)
	}
}

func TestListScenario(t *testing.T) {
	l := NewList(fruit())
	l.View()
	if got := selectedFlags(l); got[0] || got[1] {
		t.Fatalf("expected both rows inactive, got %v", got)
	}

	click(l, 1)
	l.View()
	if got := selectedFlags(l); got[0] || !got[1] {
		t.Fatalf("expected Banana active only, got %v", got)
	}

	l, _ = l.Update(ItemsMsg{Items: []entries.Entry{{ID: "c", Text: "Cherry"}}})
	out := l.View()
	if l.sel.ok {
		t.Fatalf("expected selection reset after new items")
	}
	if strings.Count(out, "\n") != 0 || !strings.Contains(out, "Cherry") {
		t.Fatalf("expected single Cherry row, got %q", out)
	}
	if got := selectedFlags(l); got[0] {
		t.Fatalf("expected Cherry inactive")
	}
	if _, ok := l.rows["a"]; ok {
		t.Fatalf("rows of removed entries must be torn down")
	}
}

func TestListResetsOnIdenticalContentReplacement(t *testing.T) {
	l := NewList(fruit())
	l.View()
	click(l, 0)
	if !l.sel.at(0) {
		t.Fatalf("expected row 0 selected")
	}
	l.SetItems(fruit())
	if l.sel.ok {
		t.Fatalf("a new collection with equal contents must clear the selection")
	}
}

func TestListKeepsSelectionForSameCollection(t *testing.T) {
	items := fruit()
	l := NewList(items)
	l.View()
	click(l, 1)
	l.SetItems(items)
	if !l.sel.at(1) {
		t.Fatalf("passing the same collection again must keep the selection")
	}
}

func TestListActivatorIsStable(t *testing.T) {
	l := NewList(fruit())
	l.View()
	first := l.shown[0].props.OnActivate
	if first == nil {
		t.Fatalf("rows must receive an activator")
	}
	if l.shown[1].props.OnActivate != first {
		t.Fatalf("all rows must share one activator")
	}
	click(l, 0)
	l.SetWidth(40)
	l.View()
	for i, r := range l.shown {
		if r.props.OnActivate != first {
			t.Fatalf("row %d got a different activator after re-render", i)
		}
	}
}

func TestListSkipsUnaffectedRows(t *testing.T) {
	l := NewList([]entries.Entry{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}, {ID: "c", Text: "C"}})
	l.View()
	a, b, c := l.rows["a"], l.rows["b"], l.rows["c"]

	l.View()
	if a.renders != 1 || b.renders != 1 || c.renders != 1 {
		t.Fatalf("unchanged list must not redraw rows: %d %d %d", a.renders, b.renders, c.renders)
	}

	click(l, 1)
	l.View()
	if a.renders != 1 || c.renders != 1 {
		t.Fatalf("siblings of the clicked row must not redraw: a=%d c=%d", a.renders, c.renders)
	}
	if b.renders != 2 {
		t.Fatalf("clicked row must redraw once, got %d", b.renders)
	}

	click(l, 2)
	l.View()
	if a.renders != 1 || b.renders != 3 || c.renders != 2 {
		t.Fatalf("only the old and new selection redraw: a=%d b=%d c=%d", a.renders, b.renders, c.renders)
	}
}

func TestListReusesRowsByIdentityOnReorder(t *testing.T) {
	l := NewList(fruit())
	l.View()
	a, b := l.rows["a"], l.rows["b"]

	l.SetItems([]entries.Entry{{ID: "b", Text: "Banana"}, {ID: "a", Text: "Apple"}})
	out := l.View()
	if l.rows["a"] != a || l.rows["b"] != b {
		t.Fatalf("rows must follow their id across reorder")
	}
	if l.shown[0] != b || l.shown[1] != a {
		t.Fatalf("expected b then a on screen")
	}
	if strings.Index(out, "Banana") > strings.Index(out, "Apple") {
		t.Fatalf("expected Banana first, got %q", out)
	}

	click(l, 0)
	if !l.sel.at(0) {
		t.Fatalf("clicking the first line must select position 0")
	}
}

func TestListClickOutsideRowsIsIgnored(t *testing.T) {
	l := NewList(fruit())
	click(l, 0)
	if l.sel.ok {
		t.Fatalf("nothing is on screen before the first render")
	}
	l.View()
	for _, y := range []int{-1, 2, 10} {
		click(l, y)
	}
	if l.sel.ok {
		t.Fatalf("clicks outside the rows must not select")
	}
	l.Update(tea.MouseMsg{Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	l.Update(tea.MouseMsg{Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if l.sel.ok {
		t.Fatalf("only a left press selects")
	}
}

func TestListIgnoresOutOfRangeActivation(t *testing.T) {
	var buf bytes.Buffer
	logx.SetOutput(&buf)
	logx.SetMinLevel(logx.LevelDebug)
	t.Cleanup(func() {
		logx.SetOutput(nil)
		logx.SetMinLevel(logx.LevelWarn)
	})

	l := NewList(fruit())
	l.onActivate.Activate(5)
	l.onActivate.Activate(-1)
	if l.sel.ok {
		t.Fatalf("out of range activation must be ignored")
	}
	if strings.Count(buf.String(), "ignoring activation") != 2 {
		t.Fatalf("expected both ignored activations logged, got %q", buf.String())
	}
	l.onActivate.Activate(1)
	if !l.sel.at(1) {
		t.Fatalf("expected selection at 1")
	}
}

func TestListWindowSizeSetsRowWidth(t *testing.T) {
	l := NewList(fruit())
	l, _ = l.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	for _, line := range strings.Split(l.View(), "\n") {
		if w := lipgloss.Width(line); w != 30 {
			t.Fatalf("expected rows padded to 30 cells, got %d", w)
		}
	}
}

func TestIdentityKeysFallBackToPosition(t *testing.T) {
	keys := identityKeys([]entries.Entry{{ID: "a"}, {ID: ""}, {ID: "a"}, {ID: "b"}})
	if keys[0] != "a" || keys[3] != "b" {
		t.Fatalf("unexpected id keys: %q", keys)
	}
	if keys[1] == keys[2] || keys[1] == "" || keys[2] == "a" {
		t.Fatalf("missing and duplicate ids need distinct positional keys: %q", keys)
	}
}

func TestListWideTextKeepsOneLinePerRow(t *testing.T) {
	l := NewList([]entries.Entry{{ID: "a", Text: strings.Repeat("⚠️", 6)}, {ID: "b", Text: "B"}})
	l.SetWidth(10)
	if lines := strings.Split(l.View(), "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	click(l, 1)
	if !l.sel.at(1) {
		t.Fatalf("clicking the second line must select B, got %+v", l.sel)
	}
	click(l, 0)
	if !l.sel.at(0) {
		t.Fatalf("clicking the first line must select the emoji row, got %+v", l.sel)
	}
}

func TestIdentityKeysAvoidRealIDs(t *testing.T) {
	items := []entries.Entry{{ID: ""}, {ID: positionalKey(0)}, {ID: "x"}, {ID: "x"}, {ID: positionalKey(3)}}
	keys := identityKeys(items)
	seen := make(map[string]bool)
	for i, k := range keys {
		if seen[k] {
			t.Fatalf("key %q at %d is used twice: %q", k, i, keys)
		}
		seen[k] = true
	}
	if keys[1] != positionalKey(0) || keys[4] != positionalKey(3) {
		t.Fatalf("real ids must keep their own key: %q", keys)
	}

	l := NewList(items)
	l.View()
	l.View()
	if len(l.rows) != len(items) {
		t.Fatalf("expected %d mounted rows, got %d", len(items), len(l.rows))
	}
	for i := range l.shown {
		for j := i + 1; j < len(l.shown); j++ {
			if l.shown[i] == l.shown[j] {
				t.Fatalf("positions %d and %d share one row", i, j)
			}
		}
	}
}
