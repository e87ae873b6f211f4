package app

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/ryan-rushton/nova/internal/logging"
)

// Phase is the shell's lifecycle state.
type Phase string

const (
	PhaseInitial       Phase = "initial"
	PhaseReady         Phase = "ready"
	PhaseTransitioning Phase = "transitioning"
)

const (
	stateInitial       = statekit.StateID(PhaseInitial)
	stateReady         = statekit.StateID(PhaseReady)
	stateTransitioning = statekit.StateID(PhaseTransitioning)

	eventThemeReady statekit.EventType = "THEME_READY"
	eventNavigate   statekit.EventType = "NAVIGATE"
	eventSettled    statekit.EventType = "SETTLED"
)

// lifecycleContext is carried through the machine.
type lifecycleContext struct {
	session     string
	log         *logging.Logger
	transitions int
}

func logEntry(ctx **lifecycleContext, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	c := *ctx
	c.log.Debug().
		Add(logging.Session(c.session)).
		Add(logging.Str("event", string(event.Type))).
		Msg("shell phase entered")
}

func countTransition(ctx **lifecycleContext, _ statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	(*ctx).transitions++
}

// newLifecycleMachine builds the shell statechart. There is no final state:
// the shell lives until the program exits.
func newLifecycleMachine() (*statekit.MachineConfig[*lifecycleContext], error) {
	return statekit.NewMachine[*lifecycleContext]("shell").
		WithInitial(stateInitial).
		WithContext(&lifecycleContext{}).
		WithAction("logEntry", logEntry).
		WithAction("countTransition", countTransition).
		State(stateInitial).
			On(eventThemeReady).Target(stateReady).
			Done().
		State(stateReady).
			OnEntry("logEntry").
			On(eventNavigate).Target(stateTransitioning).Do("countTransition").
			Done().
		State(stateTransitioning).
			OnEntry("logEntry").
			On(eventSettled).Target(stateReady).
			Done().
		Build()
}

// lifecycle drives the shell statechart.
type lifecycle struct {
	interp *statekit.Interpreter[*lifecycleContext]
	ctx    *lifecycleContext
}

func newLifecycle(session string, log *logging.Logger) (*lifecycle, error) {
	machine, err := newLifecycleMachine()
	if err != nil {
		return nil, err
	}

	ctx := &lifecycleContext{session: session, log: log}
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **lifecycleContext) {
		*c = ctx
	})
	interp.Start()

	return &lifecycle{interp: interp, ctx: ctx}, nil
}

// Phase returns the current phase.
func (l *lifecycle) Phase() Phase {
	return Phase(l.interp.State().Value)
}

// Transitions counts NAVIGATE events accepted so far.
func (l *lifecycle) Transitions() int {
	return l.ctx.transitions
}

// send delivers event only when the current phase accepts it.
func (l *lifecycle) send(from Phase, event statekit.EventType) {
	if l.Phase() != from {
		return
	}
	l.interp.Send(statekit.Event{Type: event})
}

func (l *lifecycle) ready()  { l.send(PhaseInitial, eventThemeReady) }
func (l *lifecycle) begin()  { l.send(PhaseReady, eventNavigate) }
func (l *lifecycle) settle() { l.send(PhaseTransitioning, eventSettled) }

func (l *lifecycle) stop() {
	l.interp.Stop()
}
