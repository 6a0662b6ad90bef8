package runtime

import (
	"errors"
	"testing"
)

func newFocusFixture(t *testing.T, ids ...ComponentID) (*View, *FocusStack, map[ComponentID]*focusableStub) {
	t.Helper()
	v := NewView()
	comps := make(map[ComponentID]*focusableStub, len(ids))
	for _, id := range ids {
		c := newFocusableStub()
		if err := v.Mount(id, c); err != nil {
			t.Fatalf("Mount(%q): %v", id, err)
		}
		comps[id] = c
	}
	return v, NewFocusStack(v), comps
}

func TestFocusStack_Empty(t *testing.T) {
	_, f, _ := newFocusFixture(t)

	if _, ok := f.Current(); ok {
		t.Error("Current() on empty stack should report no focus")
	}
	f.Pop() // no-op, must not panic
	if f.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", f.Depth())
	}
}

func TestFocusStack_PushUnknown(t *testing.T) {
	_, f, _ := newFocusFixture(t, "a")

	if err := f.Push("ghost"); !errors.Is(err, ErrNotMounted) {
		t.Errorf("Push(ghost) = %v, want ErrNotMounted", err)
	}
	if f.Depth() != 0 {
		t.Error("failed Push changed the stack")
	}
}

func TestFocusStack_PushPopRestores(t *testing.T) {
	_, f, _ := newFocusFixture(t, "a", "b")

	f.Push("a")
	f.Push("b")

	if cur, _ := f.Current(); cur != "b" {
		t.Errorf("Current() = %q, want b", cur)
	}
	if f.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", f.Depth())
	}

	f.Pop()
	if cur, _ := f.Current(); cur != "a" {
		t.Errorf("after Pop, Current() = %q, want a", cur)
	}

	f.Pop()
	if _, ok := f.Current(); ok {
		t.Error("stack should be empty after final Pop")
	}
}

func TestFocusStack_PushExistingMovesToTop(t *testing.T) {
	_, f, _ := newFocusFixture(t, "a", "b", "c")

	f.Push("a")
	f.Push("b")
	f.Push("c")
	f.Push("a")

	if cur, _ := f.Current(); cur != "a" {
		t.Errorf("Current() = %q, want a", cur)
	}
	if f.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3 (no duplicate entries)", f.Depth())
	}

	f.Pop()
	if cur, _ := f.Current(); cur != "c" {
		t.Errorf("after Pop, Current() = %q, want c", cur)
	}
}

func TestFocusStack_SetClears(t *testing.T) {
	_, f, _ := newFocusFixture(t, "a", "b", "c")

	f.Push("a")
	f.Push("b")
	if err := f.Set("c"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if f.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1 after Set", f.Depth())
	}
	f.Pop()
	if _, ok := f.Current(); ok {
		t.Error("Set should not preserve prior entries")
	}
}

func TestFocusStack_RemovePurgesAllOccurrences(t *testing.T) {
	_, f, _ := newFocusFixture(t, "a", "b")

	f.Push("a")
	f.Push("b")
	f.Remove("b")

	if f.Contains("b") {
		t.Error("Contains(b) = true after Remove")
	}
	if cur, _ := f.Current(); cur != "a" {
		t.Errorf("Current() = %q, want a restored", cur)
	}
}

func TestFocusStack_Notifications(t *testing.T) {
	_, f, comps := newFocusFixture(t, "a", "b")

	f.Push("a")
	if !comps["a"].focused || comps["a"].focusN != 1 {
		t.Error("a did not receive Focus on push")
	}

	f.Push("b")
	if comps["a"].focused {
		t.Error("a still focused after b pushed on top")
	}
	if !comps["b"].focused {
		t.Error("b did not receive Focus")
	}

	f.Pop()
	if comps["b"].focused {
		t.Error("b still focused after Pop")
	}
	if !comps["a"].focused || comps["a"].focusN != 2 {
		t.Error("a did not regain Focus after Pop")
	}

	f.Clear()
	if comps["a"].focused {
		t.Error("a still focused after Clear")
	}
}
