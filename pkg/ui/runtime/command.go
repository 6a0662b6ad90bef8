package runtime

import "time"

// Cmd is a runtime instruction returned by Model.Update. The runtime
// interprets commands structurally and never inspects the messages they
// carry. A nil Cmd means no follow-up.
type Cmd interface {
	isCmd()
}

type batchCmd struct {
	cmds []Cmd
}

func (batchCmd) isCmd() {}

type emitCmd struct {
	msg Msg
}

func (emitCmd) isCmd() {}

type emitAfterCmd struct {
	delay time.Duration
	msg   Msg
}

func (emitAfterCmd) isCmd() {}

type quitCmd struct{}

func (quitCmd) isCmd() {}

// Batch interprets each command in order within the same drain pass, with no
// intervening render. Nil entries are skipped.
func Batch(cmds ...Cmd) Cmd {
	return batchCmd{cmds: cmds}
}

// Emit re-injects msg into the current drain, so update chains resolve before
// the next render.
func Emit(msg Msg) Cmd {
	return emitCmd{msg: msg}
}

// EmitAfter schedules msg to arrive as a fresh cycle once delay has elapsed.
// There is no cancellation: a scheduled message fires unconditionally once
// due, unless the loop quits first.
func EmitAfter(delay time.Duration, msg Msg) Cmd {
	return emitAfterCmd{delay: delay, msg: msg}
}

// Quit asks the outer loop to terminate after the current drain completes.
func Quit() Cmd {
	return quitCmd{}
}
