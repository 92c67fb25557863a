// Package label implements the two-map label table populated by the
// executor's pre-run label scan (see internal/executor's LoadCode).
package label

import "strconv"

// Table holds the two label maps: an integer-literal label maps to the
// 0-based line index it marks, and an identifier label does the same.
// When scanning produces two occurrences of the same label, the last one
// wins (a later Set overwrites an earlier one).
type Table struct {
	ints   map[int64]int
	idents map[string]int
}

// New returns an empty Table.
func New() *Table {
	return &Table{ints: make(map[int64]int), idents: make(map[string]int)}
}

// SetInt records that the integer label n marks line.
func (t *Table) SetInt(n int64, line int) { t.ints[n] = line }

// SetIdent records that the identifier label name marks line.
func (t *Table) SetIdent(name string, line int) { t.idents[name] = line }

// Int looks up an integer label.
func (t *Table) Int(n int64) (int, bool) {
	line, ok := t.ints[n]
	return line, ok
}

// Ident looks up an identifier label.
func (t *Table) Ident(name string) (int, bool) {
	line, ok := t.idents[name]
	return line, ok
}

// Reset clears both maps, used by loadCode.
func (t *Table) Reset() {
	t.ints = make(map[int64]int)
	t.idents = make(map[string]int)
}

// Entry is one label's display name and target line, used by the `labels`
// debug CLI command.
type Entry struct {
	Name string
	Line int
}

// Entries returns every label in the table, integer labels rendered in
// decimal, in no particular order; callers that need a stable order (e.g.
// the CLI) sort the result themselves.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.ints)+len(t.idents))
	for n, line := range t.ints {
		out = append(out, Entry{Name: strconv.FormatInt(n, 10), Line: line})
	}
	for name, line := range t.idents {
		out = append(out, Entry{Name: name, Line: line})
	}
	return out
}
