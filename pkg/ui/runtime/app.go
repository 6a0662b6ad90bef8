package runtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/odvcencio/realm/pkg/logging"
	"github.com/odvcencio/realm/pkg/ui/backend"
	"github.com/odvcencio/realm/pkg/ui/terminal"
)

// ExitReason reports why Run returned.
type ExitReason int

const (
	// ExitQuit means the model issued Quit.
	ExitQuit ExitReason = iota
	// ExitCanceled means the context was canceled.
	ExitCanceled
	// ExitBackendClosed means the backend's event stream terminated.
	ExitBackendClosed
	// ExitError means Run failed before the loop started.
	ExitError
)

func (r ExitReason) String() string {
	switch r {
	case ExitQuit:
		return "quit"
	case ExitCanceled:
		return "canceled"
	case ExitBackendClosed:
		return "backend closed"
	case ExitError:
		return "error"
	}
	return "unknown"
}

// Config configures an App.
type Config struct {
	Backend backend.Backend
	Model   Model

	// PollTimeout bounds how long one loop iteration blocks waiting for an
	// event. Defaults to 100ms.
	PollTimeout time.Duration

	// TickInterval, when positive, injects TickEvents at this rate.
	TickInterval time.Duration

	// EventBuffer sizes the input queue. Defaults to 128.
	EventBuffer int

	// Logger receives runtime diagnostics. Optional.
	Logger *logging.Logger
}

// App owns the registry, focus stack, subscription table, and timer queue for
// its lifetime, and drives the outer poll/dispatch/render loop. All component
// logic runs on the loop goroutine; components interact only through messages
// and commands.
type App struct {
	backend backend.Backend
	model   Model
	view    *View
	focus   *FocusStack
	subs    *SubTable
	timers  timerQueue
	log     *logging.Logger

	events chan terminal.Event
	done   chan struct{}

	pollTimeout  time.Duration
	tickInterval time.Duration
	quitting     bool
}

// NewApp creates an App from config.
func NewApp(cfg Config) *App {
	buffer := cfg.EventBuffer
	if buffer <= 0 {
		buffer = 128
	}
	pollTimeout := cfg.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = 100 * time.Millisecond
	}

	view := NewView()
	return &App{
		backend:      cfg.Backend,
		model:        cfg.Model,
		view:         view,
		focus:        NewFocusStack(view),
		subs:         NewSubTable(view),
		log:          cfg.Logger,
		events:       make(chan terminal.Event, buffer),
		done:         make(chan struct{}),
		pollTimeout:  pollTimeout,
		tickInterval: cfg.TickInterval,
	}
}

// View returns the component registry.
func (a *App) View() *View {
	return a.view
}

// Focus returns the focus stack.
func (a *App) Focus() *FocusStack {
	return a.focus
}

// Mount registers a root component.
func (a *App) Mount(id ComponentID, comp Component) error {
	if err := a.view.Mount(id, comp); err != nil {
		return err
	}
	a.debug("mount", map[string]any{"id": string(id)})
	return nil
}

// MountUnder registers a component as the last child of parent.
func (a *App) MountUnder(id ComponentID, comp Component, parent ComponentID) error {
	if err := a.view.MountUnder(id, comp, parent); err != nil {
		return err
	}
	a.debug("mount", map[string]any{"id": string(id), "parent": string(parent)})
	return nil
}

// Unmount removes a component and its descendants, purging their focus-stack
// and subscription entries.
func (a *App) Unmount(id ComponentID) error {
	removed, err := a.view.Unmount(id)
	if err != nil {
		return err
	}
	for _, rid := range removed {
		a.subs.UnsubscribeAll(rid)
		a.focus.Remove(rid)
	}
	a.debug("unmount", map[string]any{"id": string(id), "removed": len(removed)})
	return nil
}

// Subscribe registers a clause for id. The entry fires for every matching
// event regardless of focus, starting from the next incoming event.
func (a *App) Subscribe(id ComponentID, clause Clause, msg Msg) error {
	return a.subs.Subscribe(id, clause, msg)
}

// Post injects a host event into the input queue. Returns an error if the
// queue is full rather than blocking the caller.
func (a *App) Post(ev terminal.Event) error {
	if ev == nil {
		return errors.New("cannot post nil event")
	}
	select {
	case a.events <- ev:
		return nil
	default:
		return errors.New("event queue full")
	}
}

// Dispatch feeds one event through routing, subscription evaluation, and the
// update drain. Returns true if a render is needed. Run calls this for every
// event; tests may call it directly without a backend.
func (a *App) Dispatch(ev terminal.Event) bool {
	if ev == nil {
		return false
	}

	msgs := a.collect(ev)

	dirty := false
	if _, ok := ev.(terminal.ResizeEvent); ok {
		dirty = true
	}
	if len(msgs) > 0 {
		a.drain(msgs)
		dirty = true
	}
	return dirty
}

// collect gathers the focus-routed message and all subscription matches for
// one event, before any update runs. Subscriptions added during the
// subsequent drain see only later events.
func (a *App) collect(ev terminal.Event) []Msg {
	var msgs []Msg

	if id, ok := a.focus.Current(); ok {
		if comp, ok := a.view.Get(id); ok {
			props := comp.Props()
			if props == nil || !props.Disabled() {
				if m := comp.HandleEvent(ev); m != nil {
					msgs = append(msgs, m)
				}
			}
		}
	}

	return append(msgs, a.subs.Evaluate(ev)...)
}

// drain applies messages to a fixed point: commands that emit further
// messages extend the queue, and no render happens until it is empty.
func (a *App) drain(queue []Msg) {
	for i := 0; i < len(queue); i++ {
		cmd := a.model.Update(queue[i])
		queue = a.applyCmd(cmd, queue)
	}
}

func (a *App) applyCmd(cmd Cmd, queue []Msg) []Msg {
	switch c := cmd.(type) {
	case nil:
	case batchCmd:
		for _, sub := range c.cmds {
			queue = a.applyCmd(sub, queue)
		}
	case emitCmd:
		queue = append(queue, c.msg)
	case emitAfterCmd:
		a.timers.schedule(time.Now().Add(c.delay), c.msg)
	case quitCmd:
		// Takes effect at the outer loop's next iteration check,
		// never mid-drain.
		a.quitting = true
	}
	return queue
}

// Run drives the outer loop until the model quits, the context is canceled,
// or the backend closes. Terminal state is restored on every exit path,
// including panics.
func (a *App) Run(ctx context.Context) (ExitReason, error) {
	if a.backend == nil {
		return ExitError, errors.New("backend is required")
	}
	if a.model == nil {
		return ExitError, errors.New("model is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if err := a.backend.Init(); err != nil {
		return ExitError, fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()
	defer close(a.done)

	a.backend.HideCursor()
	a.render()
	a.info("run", nil)

	go a.pollEvents()

	var ticks <-chan time.Time
	if a.tickInterval > 0 {
		ticker := time.NewTicker(a.tickInterval)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for {
		if a.quitting {
			a.info("exit", map[string]any{"reason": ExitQuit.String()})
			return ExitQuit, nil
		}

		wait := a.pollTimeout
		if at, ok := a.timers.next(); ok {
			if d := time.Until(at); d < wait {
				wait = max(d, 0)
			}
		}

		var ev terminal.Event
		idle := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			idle.Stop()
			a.info("exit", map[string]any{"reason": ExitCanceled.String()})
			return ExitCanceled, ctx.Err()
		case ev = <-a.events:
			idle.Stop()
			if ev == nil {
				a.info("exit", map[string]any{"reason": ExitBackendClosed.String()})
				return ExitBackendClosed, ErrBackendClosed
			}
		case now := <-ticks:
			idle.Stop()
			ev = terminal.TickEvent{Time: now}
		case <-idle.C:
		}

		dirty := false
		for _, msg := range a.timers.popDue(time.Now()) {
			// Each elapsed timer is its own cycle, not part of a drain.
			a.drain([]Msg{msg})
			dirty = true
		}
		if ev != nil {
			if _, ok := ev.(terminal.ResizeEvent); ok {
				a.backend.Sync()
			}
			if a.Dispatch(ev) {
				dirty = true
			}
		}
		if dirty {
			a.render()
		}
	}
}

// pollEvents forwards backend events to the loop. A nil event from the
// backend means its stream closed.
func (a *App) pollEvents() {
	for {
		ev := a.backend.PollEvent()
		if ev == nil {
			select {
			case a.events <- nil:
			case <-a.done:
			}
			return
		}
		select {
		case a.events <- ev:
		case <-a.done:
			return
		}
	}
}

func (a *App) render() {
	w, h := a.backend.Size()
	a.backend.Clear()
	ctx := RenderContext{
		Target: a.backend,
		Bounds: NewRect(0, 0, w, h),
	}
	focused, _ := a.focus.Current()
	a.view.Render(ctx, focused)
	a.backend.Show()
}

func (a *App) debug(event string, fields map[string]any) {
	if a.log != nil {
		a.log.Debug(event, fields)
	}
}

func (a *App) info(event string, fields map[string]any) {
	if a.log != nil {
		a.log.Info(event, fields)
	}
}
