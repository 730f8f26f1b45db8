// Package alias implements a bounded, insertion ordered alias table.
package alias

import (
	"errors"
	"strings"

	"github.com/josephlewis42/hsh/core/parser"
)

// DefaultCapacity is the number of aliases a table holds unless configured
// otherwise.
const DefaultCapacity = 100

var (
	// ErrTableFull is returned when adding a new alias to a full table.
	ErrTableFull = errors.New("alias table full")

	// ErrInvalidName is returned for names that are empty or contain '=' or a
	// field separator.
	ErrInvalidName = errors.New("invalid alias name")
)

// Entry is a single alias definition.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Table maps alias names to replacement text.
type Table struct {
	capacity int
	entries  []Entry
}

// New creates an empty table holding up to capacity entries. A capacity of
// zero or less uses DefaultCapacity.
func New(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table{capacity: capacity}
}

// ValidName reports whether name can be used as an alias.
func ValidName(name string) bool {
	return name != "" &&
		!strings.Contains(name, "=") &&
		strings.IndexFunc(name, parser.IsFieldSeparator) < 0
}

func (t *Table) index(name string) int {
	for i, e := range t.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Set adds or replaces an alias. Replacing keeps the alias's original
// position in List.
func (t *Table) Set(name, value string) error {
	if !ValidName(name) {
		return ErrInvalidName
	}
	if i := t.index(name); i >= 0 {
		t.entries[i].Value = value
		return nil
	}
	if len(t.entries) >= t.capacity {
		return ErrTableFull
	}
	t.entries = append(t.entries, Entry{Name: name, Value: value})
	return nil
}

// Lookup returns the value of an alias and whether it exists.
func (t *Table) Lookup(name string) (string, bool) {
	if i := t.index(name); i >= 0 {
		return t.entries[i].Value, true
	}
	return "", false
}

// Remove deletes an alias, returning false if it didn't exist.
func (t *Table) Remove(name string) bool {
	i := t.index(name)
	if i < 0 {
		return false
	}
	t.entries = append(t.entries[:i:i], t.entries[i+1:]...)
	return true
}

// List returns a copy of every entry in insertion order.
func (t *Table) List() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of aliases defined.
func (t *Table) Len() int {
	return len(t.entries)
}

// Cap returns the maximum number of aliases the table can hold.
func (t *Table) Cap() int {
	return t.capacity
}

// Clear removes every alias.
func (t *Table) Clear() {
	t.entries = nil
}

// Substitute replaces the first field of command with its alias value, if it
// has one. The replacement text is not expanded again, so an alias that
// refers to itself is only substituted once.
func (t *Table) Substitute(command string) string {
	lead, name, rest := parser.FirstField(command)
	if name == "" {
		return command
	}
	value, ok := t.Lookup(name)
	if !ok {
		return command
	}
	return lead + value + rest
}
