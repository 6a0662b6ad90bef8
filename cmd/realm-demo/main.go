// Command realm-demo is a small interactive showcase: a counter component, a
// text input, and a global Ctrl-Q quit binding that fires no matter which
// component has focus.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/odvcencio/realm/pkg/logging"
	"github.com/odvcencio/realm/pkg/ui/backend"
	"github.com/odvcencio/realm/pkg/ui/backend/tcell"
	"github.com/odvcencio/realm/pkg/ui/components"
	"github.com/odvcencio/realm/pkg/ui/runtime"
	"github.com/odvcencio/realm/pkg/ui/terminal"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logPath string
	var tick time.Duration

	cmd := &cobra.Command{
		Use:          "realm-demo",
		Short:        "Interactive demo of the realm component runtime",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logPath, tick)
		},
	}
	cmd.Flags().StringVar(&logPath, "log", "", "write JSONL diagnostics to this file")
	cmd.Flags().DurationVar(&tick, "tick", time.Second, "clock tick interval")
	return cmd
}

// Message types folded through the model.
type (
	incMsg         struct{}
	decMsg         struct{}
	quitMsg        struct{}
	clockMsg       struct{}
	clearStatusMsg struct{}
	hopFocusMsg    struct{}
)

// demoModel wires the components together. Update is the only place state
// transitions happen.
type demoModel struct {
	app     *runtime.App
	counter *counter
	input   *components.Input
	status  *components.Label
	clock   *components.Label
}

func (m *demoModel) Update(msg runtime.Msg) runtime.Cmd {
	switch v := msg.(type) {
	case incMsg:
		m.counter.count++
	case decMsg:
		m.counter.count--
	case clockMsg:
		m.clock.SetText(time.Now().Format("15:04:05"))
	case hopFocusMsg:
		if id, ok := m.app.Focus().Current(); ok && id == "input" {
			m.app.Focus().Set("counter")
		} else {
			m.app.Focus().Set("input")
		}
	case components.InputSubmitMsg:
		m.status.SetText(fmt.Sprintf("submitted: %s", v.Value))
		m.input.SetValue("")
		return runtime.EmitAfter(3*time.Second, clearStatusMsg{})
	case clearStatusMsg:
		m.status.SetText("")
	case quitMsg:
		return runtime.Quit()
	}
	return nil
}

// counter reacts to +/- while focused.
type counter struct {
	props *runtime.Props
	count int
}

func (c *counter) HandleEvent(ev terminal.Event) runtime.Msg {
	ke, ok := ev.(terminal.KeyEvent)
	if !ok || ke.Key != terminal.KeyRune {
		return nil
	}
	switch ke.Rune {
	case '+':
		return incMsg{}
	case '-':
		return decMsg{}
	}
	return nil
}

func (c *counter) State() runtime.State {
	return runtime.StateOne(runtime.StateInt(c.count))
}

func (c *counter) Props() *runtime.Props {
	return c.props
}

func (c *counter) Render(ctx runtime.RenderContext) {
	style := c.props.Style()
	if ctx.Focused {
		style = style.Bold(true)
	}
	components.DrawText(ctx.SubTarget(), 0, 0, fmt.Sprintf("count: %d (+/-)", c.count), style)
}

func run(logPath string, tick time.Duration) error {
	var log *logging.Logger
	if logPath != "" {
		log = logging.NewFile(logPath)
		defer log.Close()
	}

	be, err := tcell.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	model := &demoModel{
		counter: &counter{props: runtime.NewProps().WithRect(runtime.NewRect(2, 1, 30, 1))},
		input:   components.NewInput(),
		status:  components.NewLabel(""),
		clock:   components.NewLabel(""),
	}
	model.input.Props().WithRect(runtime.NewRect(2, 3, 40, 1))
	model.status.Props().
		WithRect(runtime.NewRect(2, 5, 60, 1)).
		WithStyle(backend.DefaultStyle().Foreground(backend.ColorGreen))
	model.clock.Props().
		WithRect(runtime.NewRect(2, 7, 10, 1)).
		WithStyle(backend.DefaultStyle().Dim(true))

	app := runtime.NewApp(runtime.Config{
		Backend:      be,
		Model:        model,
		TickInterval: tick,
		Logger:       log,
	})

	if err := app.Mount("counter", model.counter); err != nil {
		return err
	}
	if err := app.Mount("input", model.input); err != nil {
		return err
	}
	if err := app.Mount("status", model.status); err != nil {
		return err
	}
	if err := app.Mount("clock", model.clock); err != nil {
		return err
	}

	// Quit fires regardless of focus, and the clock updates while unfocused.
	if err := app.Subscribe("status", runtime.KeyPressed(terminal.KeyCtrlQ), quitMsg{}); err != nil {
		return err
	}
	if err := app.Subscribe("clock", runtime.TickElapsed(), clockMsg{}); err != nil {
		return err
	}
	// Tab hops focus between the input and the counter.
	if err := app.Subscribe("input", runtime.KeyPressed(terminal.KeyTab), hopFocusMsg{}); err != nil {
		return err
	}

	if err := app.Focus().Set("input"); err != nil {
		return err
	}
	model.app = app

	_, err = app.Run(context.Background())
	return err
}
