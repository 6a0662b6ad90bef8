package runtime

import (
	"fmt"
	"slices"
)

// FocusStack decides which component receives routed input. The top entry is
// the active target; entries beneath it are restored as focus pops, which is
// what makes modal-style temporary focus work.
type FocusStack struct {
	stack []ComponentID
	view  *View
}

// NewFocusStack creates an empty focus stack bound to a registry.
func NewFocusStack(view *View) *FocusStack {
	return &FocusStack{view: view}
}

// Push moves id to the top of the stack, preserving entries beneath it.
// Fails if id is not mounted.
func (f *FocusStack) Push(id ComponentID) error {
	if !f.view.Has(id) {
		return fmt.Errorf("focus %q: %w", id, ErrNotMounted)
	}
	prev, hadPrev := f.Current()
	// An id appears at most once on the stack.
	f.stack = slices.DeleteFunc(f.stack, func(c ComponentID) bool {
		return c == id
	})
	f.stack = append(f.stack, id)
	f.notifyChange(prev, hadPrev)
	return nil
}

// Pop removes the top entry, restoring the previous focus.
// No-op on an empty stack.
func (f *FocusStack) Pop() {
	if len(f.stack) == 0 {
		return
	}
	prev, hadPrev := f.Current()
	f.stack = f.stack[:len(f.stack)-1]
	f.notifyChange(prev, hadPrev)
}

// Set clears the stack and pushes id (non-restoring focus change).
func (f *FocusStack) Set(id ComponentID) error {
	if !f.view.Has(id) {
		return fmt.Errorf("focus %q: %w", id, ErrNotMounted)
	}
	prev, hadPrev := f.Current()
	f.stack = f.stack[:0]
	f.stack = append(f.stack, id)
	f.notifyChange(prev, hadPrev)
	return nil
}

// Clear empties the stack. With no focus, routed events are dropped.
func (f *FocusStack) Clear() {
	prev, hadPrev := f.Current()
	f.stack = f.stack[:0]
	f.notifyChange(prev, hadPrev)
}

// Current returns the active routing target.
func (f *FocusStack) Current() (ComponentID, bool) {
	if len(f.stack) == 0 {
		return "", false
	}
	return f.stack[len(f.stack)-1], true
}

// Contains reports whether id is anywhere on the stack.
func (f *FocusStack) Contains(id ComponentID) bool {
	return slices.Contains(f.stack, id)
}

// Depth returns the number of stacked entries.
func (f *FocusStack) Depth() int {
	return len(f.stack)
}

// Remove purges every occurrence of id from the stack. Called on unmount so
// the stack never references a removed component.
func (f *FocusStack) Remove(id ComponentID) {
	prev, hadPrev := f.Current()
	f.stack = slices.DeleteFunc(f.stack, func(c ComponentID) bool {
		return c == id
	})
	f.notifyChange(prev, hadPrev)
}

// notifyChange delivers Focus/Blur to components that opted in.
// prev is the target before the mutation.
func (f *FocusStack) notifyChange(prev ComponentID, hadPrev bool) {
	cur, hasCur := f.Current()
	if hadPrev == hasCur && prev == cur {
		return
	}
	if hadPrev {
		if comp, ok := f.view.Get(prev); ok {
			if fc, ok := comp.(Focusable); ok {
				fc.Blur()
			}
		}
	}
	if hasCur {
		if comp, ok := f.view.Get(cur); ok {
			if fc, ok := comp.(Focusable); ok {
				fc.Focus()
			}
		}
	}
}
