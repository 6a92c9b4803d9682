package domain

// NameEntry is one id/display-name pair of a NameTable
type NameEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NameTable maps author or genre ids to display names. Insertion order is
// preserved and defines the order options are offered in pickers.
type NameTable struct {
	entries []NameEntry
	index   map[string]int
}

// NewNameTable builds a table from entries in display order. A repeated id
// keeps its first position and takes the last name given.
func NewNameTable(entries []NameEntry) NameTable {
	t := NameTable{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if i, ok := t.index[e.ID]; ok {
			t.entries[i].Name = e.Name
			continue
		}
		t.index[e.ID] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t
}

// Name returns the display name for id
func (t NameTable) Name(id string) (string, bool) {
	i, ok := t.index[id]
	if !ok {
		return "", false
	}
	return t.entries[i].Name, true
}

// Has reports whether id is present
func (t NameTable) Has(id string) bool {
	_, ok := t.index[id]
	return ok
}

// Entries returns a copy of the entries in display order
func (t NameTable) Entries() []NameEntry {
	out := make([]NameEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries
func (t NameTable) Len() int { return len(t.entries) }
