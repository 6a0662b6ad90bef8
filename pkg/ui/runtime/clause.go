package runtime

import "github.com/odvcencio/realm/pkg/ui/terminal"

// Clause is a boolean predicate tree over events. Clauses are pure: they hold
// no mutable state and are evaluated fresh against every incoming event.
type Clause interface {
	Match(ev terminal.Event) bool
}

type atomClause struct {
	pred func(terminal.Event) bool
}

func (c atomClause) Match(ev terminal.Event) bool {
	return c.pred(ev)
}

type andClause struct {
	clauses []Clause
}

func (c andClause) Match(ev terminal.Event) bool {
	for _, sub := range c.clauses {
		if !sub.Match(ev) {
			return false
		}
	}
	return true
}

type orClause struct {
	clauses []Clause
}

func (c orClause) Match(ev terminal.Event) bool {
	for _, sub := range c.clauses {
		if sub.Match(ev) {
			return true
		}
	}
	return false
}

type notClause struct {
	clause Clause
}

func (c notClause) Match(ev terminal.Event) bool {
	return !c.clause.Match(ev)
}

// When builds an atomic clause from an arbitrary predicate.
func When(pred func(terminal.Event) bool) Clause {
	return atomClause{pred: pred}
}

// And matches when every clause matches.
func And(clauses ...Clause) Clause {
	return andClause{clauses: clauses}
}

// Or matches when at least one clause matches.
func Or(clauses ...Clause) Clause {
	return orClause{clauses: clauses}
}

// Not inverts a clause.
func Not(clause Clause) Clause {
	return notClause{clause: clause}
}

// KeyPressed matches a key event for the given special key.
func KeyPressed(key terminal.Key) Clause {
	return When(func(ev terminal.Event) bool {
		ke, ok := ev.(terminal.KeyEvent)
		return ok && ke.Key == key
	})
}

// RunePressed matches a plain character keypress.
func RunePressed(r rune) Clause {
	return When(func(ev terminal.Event) bool {
		ke, ok := ev.(terminal.KeyEvent)
		return ok && ke.Key == terminal.KeyRune && ke.Rune == r && !ke.Ctrl && !ke.Alt
	})
}

// AnyKey matches every key event.
func AnyKey() Clause {
	return When(func(ev terminal.Event) bool {
		_, ok := ev.(terminal.KeyEvent)
		return ok
	})
}

// Resized matches terminal resize events.
func Resized() Clause {
	return When(func(ev terminal.Event) bool {
		_, ok := ev.(terminal.ResizeEvent)
		return ok
	})
}

// TickElapsed matches tick events.
func TickElapsed() Clause {
	return When(func(ev terminal.Event) bool {
		_, ok := ev.(terminal.TickEvent)
		return ok
	})
}

// MouseActionIs matches mouse events with the given action.
func MouseActionIs(action terminal.MouseAction) Clause {
	return When(func(ev terminal.Event) bool {
		me, ok := ev.(terminal.MouseEvent)
		return ok && me.Action == action
	})
}

// UserEventIs matches user events by kind. Payloads are never compared.
func UserEventIs(kind string) Clause {
	return When(func(ev terminal.Event) bool {
		ue, ok := ev.(terminal.UserEvent)
		return ok && ue.Kind == kind
	})
}

// EventIs matches a specific event by value. User events compare by kind
// only, since payloads are opaque and may not be comparable.
func EventIs(want terminal.Event) Clause {
	if ue, ok := want.(terminal.UserEvent); ok {
		return UserEventIs(ue.Kind)
	}
	return When(func(ev terminal.Event) bool {
		return ev == want
	})
}
