// Package components provides small built-in components: a static Label and
// a single-line Input. They double as reference implementations of the
// Component contract.
package components

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/realm/pkg/ui/backend"
	"github.com/odvcencio/realm/pkg/ui/runtime"
	"github.com/odvcencio/realm/pkg/ui/terminal"
)

// Label is a static, non-interactive line of text.
type Label struct {
	props *runtime.Props
	text  string
}

// NewLabel creates a label with the given text.
func NewLabel(text string) *Label {
	return &Label{
		props: runtime.NewProps(),
		text:  text,
	}
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	l.text = text
}

// Text returns the current text.
func (l *Label) Text() string {
	return l.text
}

// HandleEvent ignores all input.
func (l *Label) HandleEvent(ev terminal.Event) runtime.Msg {
	return nil
}

// State reports the displayed text.
func (l *Label) State() runtime.State {
	return runtime.StateOne(runtime.StateString(l.text))
}

// Props returns the label's props.
func (l *Label) Props() *runtime.Props {
	return l.props
}

// Render draws the text clipped to the allocated region.
func (l *Label) Render(ctx runtime.RenderContext) {
	DrawText(ctx.SubTarget(), 0, 0, l.text, l.props.Style())
}

// DrawText paints a string left to right, accounting for wide runes.
// Returns the column after the last painted cell.
func DrawText(target backend.RenderTarget, x, y int, text string, style backend.Style) int {
	width, _ := target.Size()
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > width {
			break
		}
		target.SetContent(col, y, r, nil, style)
		col += w
	}
	return col
}
