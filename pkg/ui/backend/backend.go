// Package backend defines the terminal boundary the runtime draws through.
// The runtime never writes escape sequences itself; it talks to a Backend,
// which owns raw-mode entry/exit, input decoding, and cell output. The tcell
// subpackage drives real terminals, the sim subpackage drives an in-memory
// screen for tests.
package backend

import "github.com/odvcencio/realm/pkg/ui/terminal"

// Backend is the terminal abstraction layer.
type Backend interface {
	// Init acquires the terminal (raw mode, alt screen). Every successful
	// Init must be paired with Fini on all exit paths.
	Init() error

	// Fini releases the terminal and restores its previous state.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets a cell at (x, y). comb holds combining runes, may be nil.
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show flushes buffered cell writes to the physical terminal.
	Show()

	// Clear clears the screen.
	Clear()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// ShowCursor shows the terminal cursor.
	ShowCursor()

	// SetCursorPos sets the cursor position.
	SetCursorPos(x, y int)

	// PollEvent blocks until an input event is available.
	// Returns nil when the backend is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the input queue. Used for ticks,
	// host-generated user events, and tests.
	PostEvent(ev terminal.Event) error

	// Beep emits an audible bell.
	Beep()

	// Sync forces a full repaint on the next Show.
	Sync()
}

// RenderTarget is the drawing subset of Backend handed to components.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, comb []rune, style Style)
}

// SubTarget clips a RenderTarget to a rectangle with its own origin.
type SubTarget struct {
	parent  RenderTarget
	offsetX int
	offsetY int
	width   int
	height  int
}

// NewSubTarget creates a sub-region of a RenderTarget.
func NewSubTarget(parent RenderTarget, x, y, w, h int) *SubTarget {
	return &SubTarget{
		parent:  parent,
		offsetX: x,
		offsetY: y,
		width:   w,
		height:  h,
	}
}

// Size returns the sub-target dimensions.
func (s *SubTarget) Size() (width, height int) {
	return s.width, s.height
}

// SetContent sets content with coordinates relative to the sub-target.
// Writes outside the sub-target bounds are dropped.
func (s *SubTarget) SetContent(x, y int, mainc rune, comb []rune, style Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.parent.SetContent(s.offsetX+x, s.offsetY+y, mainc, comb, style)
}
