// Package runtime implements the component runtime: a registry of mounted
// components, a focus stack that decides who receives routed input, a
// subscription table that lets unfocused components react to events, and the
// update loop that folds messages through the host model.
package runtime

import (
	"github.com/odvcencio/realm/pkg/ui/backend"
	"github.com/odvcencio/realm/pkg/ui/terminal"
)

// ComponentID identifies a mounted component. IDs are chosen by the host and
// must be unique among currently mounted components.
type ComponentID string

// Msg is a unit of host-defined intent. The runtime moves messages around but
// never inspects them.
type Msg = any

// Model is the host application state. Update applies one message and returns
// a command for the runtime to interpret. A nil command means "nothing else".
type Model interface {
	Update(msg Msg) Cmd
}

// Component is the unit of interactivity and rendering.
// A component owns its State and Props; the runtime never mutates either.
type Component interface {
	// HandleEvent translates a routed event into a host message.
	// Returning nil means the event produced nothing.
	HandleEvent(ev terminal.Event) Msg

	// Render draws the component into its allocated region.
	Render(ctx RenderContext)

	// State exposes component-local data to the host.
	State() State

	// Props returns the component's configuration. May be nil, in which
	// case the component is treated as visible and enabled.
	Props() *Props
}

// Focusable is implemented by components that want focus notifications.
type Focusable interface {
	Component

	// Focus is called when the component becomes the routing target.
	Focus()

	// Blur is called when the component stops being the routing target.
	Blur()
}

// Rect is a positioned rectangle in screen cells.
type Rect struct {
	X, Y, Width, Height int
}

// NewRect creates a rect from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Contains returns true if the point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Inset returns a rect shrunk by the given amounts.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(0, r.Width-left-right),
		Height: max(0, r.Height-top-bottom),
	}
}

// RenderContext provides a component with its drawing surface and region.
type RenderContext struct {
	Target  backend.RenderTarget
	Bounds  Rect
	Focused bool
}

// Sub returns a context for a child region.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	return RenderContext{
		Target:  ctx.Target,
		Bounds:  bounds,
		Focused: ctx.Focused,
	}
}

// SubTarget returns a render target clipped to the context bounds, with the
// origin moved to the bounds' top-left corner.
func (ctx RenderContext) SubTarget() *backend.SubTarget {
	return backend.NewSubTarget(ctx.Target, ctx.Bounds.X, ctx.Bounds.Y, ctx.Bounds.Width, ctx.Bounds.Height)
}
