package components

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/realm/pkg/ui/runtime"
	"github.com/odvcencio/realm/pkg/ui/terminal"
)

// InputChangedMsg is emitted when the input's value changes.
type InputChangedMsg struct {
	Value string
}

// InputMovedMsg is emitted when the cursor moves without a value change.
type InputMovedMsg struct {
	Pos int
}

// InputSubmitMsg is emitted when Enter is pressed.
type InputSubmitMsg struct {
	Value string
}

// Input is a single-line editable text field. It implements Focusable; the
// cursor is only drawn while focused.
type Input struct {
	props   *runtime.Props
	value   []rune
	cursor  int
	focused bool
}

// NewInput creates an empty input.
func NewInput() *Input {
	return &Input{props: runtime.NewProps()}
}

// Value returns the current text.
func (in *Input) Value() string {
	return string(in.value)
}

// SetValue replaces the text and moves the cursor to the end.
func (in *Input) SetValue(s string) {
	in.value = []rune(s)
	in.cursor = len(in.value)
}

// Props returns the input's props.
func (in *Input) Props() *runtime.Props {
	return in.props
}

// State reports the current text.
func (in *Input) State() runtime.State {
	return runtime.StateOne(runtime.StateString(string(in.value)))
}

// Focus marks the input as the routing target.
func (in *Input) Focus() {
	in.focused = true
}

// Blur removes the focus mark.
func (in *Input) Blur() {
	in.focused = false
}

// IsFocused reports whether the input currently has focus.
func (in *Input) IsFocused() bool {
	return in.focused
}

// HandleEvent edits the value from key and paste events.
func (in *Input) HandleEvent(ev terminal.Event) runtime.Msg {
	switch e := ev.(type) {
	case terminal.PasteEvent:
		return in.insert([]rune(e.Text))
	case terminal.KeyEvent:
		return in.handleKey(e)
	}
	return nil
}

func (in *Input) handleKey(ke terminal.KeyEvent) runtime.Msg {
	switch ke.Key {
	case terminal.KeyRune:
		if ke.Ctrl || ke.Alt {
			return nil
		}
		return in.insert([]rune{ke.Rune})
	case terminal.KeyBackspace:
		if in.cursor == 0 {
			return nil
		}
		in.value = append(in.value[:in.cursor-1], in.value[in.cursor:]...)
		in.cursor--
		return InputChangedMsg{Value: string(in.value)}
	case terminal.KeyDelete:
		if in.cursor >= len(in.value) {
			return nil
		}
		in.value = append(in.value[:in.cursor], in.value[in.cursor+1:]...)
		return InputChangedMsg{Value: string(in.value)}
	case terminal.KeyLeft:
		if in.cursor == 0 {
			return nil
		}
		in.cursor--
		return InputMovedMsg{Pos: in.cursor}
	case terminal.KeyRight:
		if in.cursor >= len(in.value) {
			return nil
		}
		in.cursor++
		return InputMovedMsg{Pos: in.cursor}
	case terminal.KeyHome:
		if in.cursor == 0 {
			return nil
		}
		in.cursor = 0
		return InputMovedMsg{Pos: 0}
	case terminal.KeyEnd:
		if in.cursor == len(in.value) {
			return nil
		}
		in.cursor = len(in.value)
		return InputMovedMsg{Pos: in.cursor}
	case terminal.KeyEnter:
		return InputSubmitMsg{Value: string(in.value)}
	}
	return nil
}

func (in *Input) insert(rs []rune) runtime.Msg {
	if len(rs) == 0 {
		return nil
	}
	value := make([]rune, 0, len(in.value)+len(rs))
	value = append(value, in.value[:in.cursor]...)
	value = append(value, rs...)
	value = append(value, in.value[in.cursor:]...)
	in.value = value
	in.cursor += len(rs)
	return InputChangedMsg{Value: string(in.value)}
}

// Render draws the value with the cursor cell reversed while focused.
// The view scrolls horizontally to keep the cursor visible.
func (in *Input) Render(ctx runtime.RenderContext) {
	target := ctx.SubTarget()
	width, _ := target.Size()
	if width <= 0 {
		return
	}

	style := in.props.Style()
	start := in.scrollStart(width)

	col := 0
	for i := start; i < len(in.value); i++ {
		r := in.value[i]
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > width {
			break
		}
		cell := style
		if in.focused && i == in.cursor {
			cell = cell.Reverse(true)
		}
		target.SetContent(col, 0, r, nil, cell)
		col += w
	}

	// Cursor past the end of the value
	if in.focused && in.cursor >= len(in.value) && col < width {
		target.SetContent(col, 0, ' ', nil, style.Reverse(true))
	}
}

// scrollStart returns the first visible rune index so the cursor stays on
// screen.
func (in *Input) scrollStart(width int) int {
	if width <= 0 {
		return in.cursor
	}
	start := 0
	for {
		cells := 0
		for i := start; i <= in.cursor && i < len(in.value); i++ {
			cells += runewidth.RuneWidth(in.value[i])
		}
		if in.cursor >= len(in.value) {
			cells++ // trailing cursor cell
		}
		if cells <= width || start >= in.cursor {
			return start
		}
		start++
	}
}
