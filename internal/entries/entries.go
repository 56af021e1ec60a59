// Package entries defines the records rendered by the selectable list and
// loads them from disk.
package entries

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

var (
	ErrMissingID   = errors.New("entry has no id")
	ErrDuplicateID = errors.New("duplicate entry id")
)

// Entry is one row of the list. ID is the stable identity used to match rows
// across renders; Text is the label.
type Entry struct {
	ID   string `toml:"id"`
	Text string `toml:"text"`
}

type file struct {
	Entries []Entry `toml:"entry"`
}

// New returns an entry with a freshly generated id.
func New(text string) Entry {
	return Entry{ID: uuid.NewString(), Text: text}
}

// Sample is the collection shown when no entries file is configured.
func Sample() []Entry {
	return []Entry{
		{ID: "a", Text: "Apple"},
		{ID: "b", Text: "Banana"},
		{ID: "c", Text: "Cherry"},
	}
}

// Load decodes a TOML file made of [[entry]] tables and validates the result.
func Load(path string) ([]Entry, error) {
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("decode %s: unknown key %q", path, undec[0].String())
	}
	for i := range f.Entries {
		f.Entries[i].ID = strings.TrimSpace(f.Entries[i].ID)
	}
	if err := Validate(f.Entries); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f.Entries, nil
}

// Validate enforces a non-empty, unique id per entry.
func Validate(items []Entry) error {
	seen := make(map[string]int, len(items))
	for i, e := range items {
		if e.ID == "" {
			return fmt.Errorf("entry %d: %w", i, ErrMissingID)
		}
		if prev, ok := seen[e.ID]; ok {
			return fmt.Errorf("entry %d: %w %q (first at %d)", i, ErrDuplicateID, e.ID, prev)
		}
		seen[e.ID] = i
	}
	return nil
}

// Same reports whether a and b are the same collection reference, i.e. the
// same backing array viewed with the same length. Contents are not compared.
func Same(a, b []Entry) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
