package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/realm/pkg/ui/backend"
	"github.com/odvcencio/realm/pkg/ui/runtime"
	"github.com/odvcencio/realm/pkg/ui/terminal"
)

func press(in *Input, key terminal.Key) runtime.Msg {
	return in.HandleEvent(terminal.KeyEvent{Key: key})
}

func typeString(in *Input, s string) {
	for _, r := range s {
		in.HandleEvent(terminal.KeyEvent{Key: terminal.KeyRune, Rune: r})
	}
}

func TestInput_Typing(t *testing.T) {
	in := NewInput()
	typeString(in, "ab")

	msg := in.HandleEvent(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'c'})
	require.IsType(t, InputChangedMsg{}, msg)
	assert.Equal(t, "abc", msg.(InputChangedMsg).Value)
	assert.Equal(t, "abc", in.Value())
}

func TestInput_EditingAtCursor(t *testing.T) {
	in := NewInput()
	typeString(in, "ac")

	press(in, terminal.KeyLeft)
	typeString(in, "b")
	assert.Equal(t, "abc", in.Value())

	press(in, terminal.KeyBackspace)
	assert.Equal(t, "ac", in.Value())

	press(in, terminal.KeyHome)
	press(in, terminal.KeyDelete)
	assert.Equal(t, "c", in.Value())
}

func TestInput_CursorMoves(t *testing.T) {
	in := NewInput()
	typeString(in, "abc")

	msg := press(in, terminal.KeyHome)
	assert.Equal(t, InputMovedMsg{Pos: 0}, msg)

	msg = press(in, terminal.KeyRight)
	assert.Equal(t, InputMovedMsg{Pos: 1}, msg)

	msg = press(in, terminal.KeyEnd)
	assert.Equal(t, InputMovedMsg{Pos: 3}, msg)

	// Moves that cannot go anywhere emit nothing.
	assert.Nil(t, press(in, terminal.KeyRight))
	assert.Nil(t, press(in, terminal.KeyEnd))
	press(in, terminal.KeyHome)
	assert.Nil(t, press(in, terminal.KeyLeft))
}

func TestInput_Submit(t *testing.T) {
	in := NewInput()
	typeString(in, "hello")

	msg := press(in, terminal.KeyEnter)
	assert.Equal(t, InputSubmitMsg{Value: "hello"}, msg)
	assert.Equal(t, "hello", in.Value(), "submit must not clear the value")
}

func TestInput_Paste(t *testing.T) {
	in := NewInput()
	typeString(in, "ad")
	press(in, terminal.KeyLeft)

	msg := in.HandleEvent(terminal.PasteEvent{Text: "bc"})
	assert.Equal(t, InputChangedMsg{Value: "abcd"}, msg)

	assert.Nil(t, in.HandleEvent(terminal.PasteEvent{}))
}

func TestInput_IgnoresChords(t *testing.T) {
	in := NewInput()
	assert.Nil(t, in.HandleEvent(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'c', Ctrl: true}))
	assert.Nil(t, in.HandleEvent(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'x', Alt: true}))
	assert.Empty(t, in.Value())
}

func TestInput_State(t *testing.T) {
	in := NewInput()
	in.SetValue("abc")

	v, ok := in.State().One()
	require.True(t, ok)
	assert.Equal(t, runtime.StateString("abc"), v)
}

func TestInput_RenderCursorOnlyWhenFocused(t *testing.T) {
	in := NewInput()
	in.SetValue("ab")

	grid := newGrid(10, 1)
	renderAt(in, grid, runtime.NewRect(0, 0, 10, 1), false)
	_, drew := grid.cells[[2]int{2, 0}]
	assert.False(t, drew, "unfocused input should not draw a cursor cell")

	in.Focus()
	grid = newGrid(10, 1)
	renderAt(in, grid, runtime.NewRect(0, 0, 10, 1), true)
	assert.Equal(t, ' ', grid.cells[[2]int{2, 0}])
	_, _, attrs := grid.styles[[2]int{2, 0}].Decompose()
	assert.NotZero(t, attrs&backend.AttrReverse)
}

func TestInput_RenderScrollsToCursor(t *testing.T) {
	in := NewInput()
	in.SetValue("abcdefgh")
	in.Focus()

	grid := newGrid(4, 1)
	renderAt(in, grid, runtime.NewRect(0, 0, 4, 1), true)

	// Cursor sits past the end; the last three runes plus the cursor cell fit.
	assert.Equal(t, 'f', grid.cells[[2]int{0, 0}])
	assert.Equal(t, 'g', grid.cells[[2]int{1, 0}])
	assert.Equal(t, 'h', grid.cells[[2]int{2, 0}])
	assert.Equal(t, ' ', grid.cells[[2]int{3, 0}])
}

func TestInput_FocusBlur(t *testing.T) {
	in := NewInput()
	assert.False(t, in.IsFocused())
	in.Focus()
	assert.True(t, in.IsFocused())
	in.Blur()
	assert.False(t, in.IsFocused())
}
