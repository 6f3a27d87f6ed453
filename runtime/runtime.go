package runtime

import (
	"log/slog"

	"github.com/tuilab/loom/command"
)

// Runtime is the deterministic synchronous runtime. Nothing happens
// between Tick calls, which makes it the natural fixture for tests:
// queue events, tick, assert on the grid.
//
// Async commands cannot run here; they are dropped with a diagnostic.
type Runtime[S, M any] struct {
	*engine[S, M]
	handler *command.Handler[M]
}

// NewRuntime creates a sync runtime with the default config and a
// discarding diagnostic sink.
func NewRuntime[S, M any](app App[S, M], width, height int) (*Runtime[S, M], error) {
	return NewRuntimeWith(app, width, height, DefaultConfig(), nil)
}

// NewRuntimeWith creates a sync runtime with explicit config and sink.
// A nil sink discards diagnostics. The application's Init runs here;
// its startup command is drained on the first Tick.
func NewRuntimeWith[S, M any](app App[S, M], width, height int, cfg Config, log *slog.Logger) (*Runtime[S, M], error) {
	handler := command.NewHandler[M](log)
	eng, err := newEngine(app, width, height, cfg, log, handler)
	if err != nil {
		return nil, err
	}
	r := &Runtime[S, M]{engine: eng, handler: handler}
	r.render()
	return r, nil
}

// Tick runs one full update cycle: drain buffered messages, deliver
// queued input through the overlay stack, apply overlay changes, run
// OnTick, check for quit, render.
func (r *Runtime[S, M]) Tick() {
	if r.phase == PhaseQuitting {
		return
	}
	r.phase = PhaseRunning
	r.beginTick()

	r.drainExec()
	r.deliverInput()
	r.drainExec()
	r.applyOverlayChanges()
	r.tickApp()
	r.reportOverflow()

	if r.quitRequested() {
		r.shutdown()
		return
	}
	r.render()
}

// RunTicks runs n ticks, stopping early if the runtime quits.
func (r *Runtime[S, M]) RunTicks(n int) {
	for range n {
		if r.phase == PhaseQuitting {
			return
		}
		r.Tick()
	}
}

// Dispatch runs one message through Update immediately. Rejected after
// quit. Messages produced by the resulting command are drained on the
// next Tick.
func (r *Runtime[S, M]) Dispatch(m M) {
	if r.phase == PhaseQuitting {
		return
	}
	r.handler.Execute(r.app.Update(&r.state, m))
	r.applyOverlayChanges()
}

func (r *Runtime[S, M]) DispatchAll(msgs ...M) {
	for _, m := range msgs {
		r.Dispatch(m)
	}
}

// ShouldQuit reports whether the runtime has quit.
func (r *Runtime[S, M]) ShouldQuit() bool {
	return r.phase == PhaseQuitting
}

func (r *Runtime[S, M]) shutdown() {
	r.phase = PhaseQuitting
	r.app.OnExit(&r.state)
}
