package runtime

// StateValue is a single value inside a component State.
type StateValue interface {
	stateMarker()
}

// StateBool holds a boolean state value.
type StateBool bool

func (StateBool) stateMarker() {}

// StateInt holds an integer state value.
type StateInt int

func (StateInt) stateMarker() {}

// StateFloat holds a float state value.
type StateFloat float64

func (StateFloat) stateMarker() {}

// StateString holds a string state value.
type StateString string

func (StateString) stateMarker() {}

// StatePayload holds an opaque host value.
type StatePayload struct {
	Value any
}

func (StatePayload) stateMarker() {}

// StateKind discriminates the shape of a State.
type StateKind int

const (
	StateKindNone StateKind = iota
	StateKindOne
	StateKindList
	StateKindMap
)

// State is the component-local data a component surfaces to the host.
// Stateless components return StateNone().
type State struct {
	kind StateKind
	one  StateValue
	list []StateValue
	m    map[string]StateValue
}

// StateNone returns the empty state.
func StateNone() State {
	return State{kind: StateKindNone}
}

// StateOne returns a state holding a single value.
func StateOne(v StateValue) State {
	return State{kind: StateKindOne, one: v}
}

// StateList returns a state holding an ordered list of values.
func StateList(vs ...StateValue) State {
	return State{kind: StateKindList, list: vs}
}

// StateMap returns a state holding named values.
func StateMap(m map[string]StateValue) State {
	return State{kind: StateKindMap, m: m}
}

// Kind returns the shape of the state.
func (s State) Kind() StateKind { return s.kind }

// IsNone reports whether the state is empty.
func (s State) IsNone() bool { return s.kind == StateKindNone }

// One returns the single value, if the state holds one.
func (s State) One() (StateValue, bool) {
	if s.kind != StateKindOne {
		return nil, false
	}
	return s.one, true
}

// List returns the list values, or nil for other shapes.
func (s State) List() []StateValue {
	if s.kind != StateKindList {
		return nil
	}
	return s.list
}

// Map returns the named values, or nil for other shapes.
func (s State) Map() map[string]StateValue {
	if s.kind != StateKindMap {
		return nil
	}
	return s.m
}

// Equal compares two states structurally. Payload values compare by
// interface equality.
func (s State) Equal(other State) bool {
	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case StateKindNone:
		return true
	case StateKindOne:
		return s.one == other.one
	case StateKindList:
		if len(s.list) != len(other.list) {
			return false
		}
		for i := range s.list {
			if s.list[i] != other.list[i] {
				return false
			}
		}
		return true
	case StateKindMap:
		if len(s.m) != len(other.m) {
			return false
		}
		for k, v := range s.m {
			if ov, ok := other.m[k]; !ok || ov != v {
				return false
			}
		}
		return true
	}
	return false
}
