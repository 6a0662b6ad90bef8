package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/realm/pkg/ui/backend"
	"github.com/odvcencio/realm/pkg/ui/runtime"
	"github.com/odvcencio/realm/pkg/ui/terminal"
)

// gridTarget is an in-memory RenderTarget recording cell writes.
type gridTarget struct {
	width  int
	height int
	cells  map[[2]int]rune
	styles map[[2]int]backend.Style
}

func newGrid(w, h int) *gridTarget {
	return &gridTarget{
		width:  w,
		height: h,
		cells:  make(map[[2]int]rune),
		styles: make(map[[2]int]backend.Style),
	}
}

func (g *gridTarget) Size() (int, int) { return g.width, g.height }

func (g *gridTarget) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	g.cells[[2]int{x, y}] = mainc
	g.styles[[2]int{x, y}] = style
}

func (g *gridTarget) row(y int) string {
	var b strings.Builder
	for x := 0; x < g.width; x++ {
		r, ok := g.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func renderAt(c runtime.Component, target backend.RenderTarget, r runtime.Rect, focused bool) {
	c.Render(runtime.RenderContext{Target: target, Bounds: r, Focused: focused})
}

func TestLabel_Render(t *testing.T) {
	grid := newGrid(20, 2)
	label := NewLabel("hello")
	renderAt(label, grid, runtime.NewRect(0, 0, 20, 1), false)

	assert.Equal(t, "hello", grid.row(0))
}

func TestLabel_RenderOffsetRegion(t *testing.T) {
	grid := newGrid(20, 4)
	label := NewLabel("hi")
	renderAt(label, grid, runtime.NewRect(5, 2, 10, 1), false)

	assert.Equal(t, "     hi", grid.row(2))
	assert.Empty(t, grid.row(0))
}

func TestLabel_StateAndEvents(t *testing.T) {
	label := NewLabel("status")

	st := label.State()
	v, ok := st.One()
	require.True(t, ok)
	assert.Equal(t, runtime.StateString("status"), v)

	assert.Nil(t, label.HandleEvent(terminal.KeyEvent{Key: terminal.KeyEnter}))

	label.SetText("changed")
	assert.Equal(t, "changed", label.Text())
}

func TestDrawText_ClipsAtWidth(t *testing.T) {
	grid := newGrid(4, 1)
	col := DrawText(grid, 0, 0, "toolong", backend.DefaultStyle())

	assert.Equal(t, 4, col)
	assert.Equal(t, "tool", grid.row(0))
}

func TestDrawText_WideRunes(t *testing.T) {
	grid := newGrid(5, 1)
	col := DrawText(grid, 0, 0, "日本語", backend.DefaultStyle())

	// Each rune occupies two cells; the third does not fit in five columns.
	assert.Equal(t, 4, col)
	assert.Equal(t, '日', grid.cells[[2]int{0, 0}])
	assert.Equal(t, '本', grid.cells[[2]int{2, 0}])
	_, drew := grid.cells[[2]int{4, 0}]
	assert.False(t, drew)
}
