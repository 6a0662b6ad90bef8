package runtime

import (
	"fmt"
	"slices"

	"github.com/odvcencio/realm/pkg/ui/terminal"
)

type subscription struct {
	owner  ComponentID
	clause Clause
	msg    Msg
}

// SubTable maps component owners to (clause, msg) entries. Every incoming
// event is evaluated against all entries regardless of focus; matches fire in
// registration order. This is how unfocused components react to events.
type SubTable struct {
	entries []subscription
	view    *View
}

// NewSubTable creates an empty subscription table bound to a registry.
func NewSubTable(view *View) *SubTable {
	return &SubTable{view: view}
}

// Subscribe appends an entry owned by id. Fails if id is not mounted or the
// clause is nil.
func (t *SubTable) Subscribe(id ComponentID, clause Clause, msg Msg) error {
	if !t.view.Has(id) {
		return fmt.Errorf("subscribe %q: %w", id, ErrNotMounted)
	}
	if clause == nil {
		return fmt.Errorf("subscribe %q: %w", id, ErrNilClause)
	}
	t.entries = append(t.entries, subscription{owner: id, clause: clause, msg: msg})
	return nil
}

// UnsubscribeAll removes every entry owned by id and returns how many were
// removed. Called automatically on unmount.
func (t *SubTable) UnsubscribeAll(id ComponentID) int {
	before := len(t.entries)
	t.entries = slices.DeleteFunc(t.entries, func(s subscription) bool {
		return s.owner == id
	})
	return before - len(t.entries)
}

// Evaluate scans all entries in registration order and returns the messages
// of every matching clause. Entries registered while the caller is still
// draining the current event are not consulted; they apply from the next
// event on.
func (t *SubTable) Evaluate(ev terminal.Event) []Msg {
	var msgs []Msg
	for _, s := range t.entries {
		if s.clause.Match(ev) {
			msgs = append(msgs, s.msg)
		}
	}
	return msgs
}

// Len returns the number of registered entries.
func (t *SubTable) Len() int {
	return len(t.entries)
}

// OwnedBy returns the number of entries owned by id.
func (t *SubTable) OwnedBy(id ComponentID) int {
	n := 0
	for _, s := range t.entries {
		if s.owner == id {
			n++
		}
	}
	return n
}
