package runtime

import (
	"log/slog"

	"github.com/tuilab/loom/backend"
	"github.com/tuilab/loom/cell"
	"github.com/tuilab/loom/command"
	"github.com/tuilab/loom/input"
	"github.com/tuilab/loom/layout"
	"github.com/tuilab/loom/overlay"
	"github.com/tuilab/loom/theme"
)

// Phase is a runtime's lifecycle state. Quitting is terminal.
type Phase int

const (
	PhaseInitialized Phase = iota
	PhaseRunning
	PhaseQuitting
)

func (p Phase) String() string {
	switch p {
	case PhaseInitialized:
		return "initialized"
	case PhaseRunning:
		return "running"
	case PhaseQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// executor is the command-handler surface the tick loop needs. Both the
// sync and async handlers satisfy it.
type executor[M any] interface {
	Execute(command.Command[M])
	TakeMessages() []M
	TakePushes() []overlay.Overlay[M]
	TakePops() int
	ShouldQuit() bool
	ResetQuit()
	HasPendingMessages() bool
}

// engine holds the per-tick machinery shared by both runtimes.
type engine[S, M any] struct {
	app      App[S, M]
	state    S
	capture  *backend.Capture
	exec     executor[M]
	overlays *overlay.Stack[M]
	queue    *input.Queue
	theme    theme.Theme
	cfg      Config
	log      *slog.Logger
	phase    Phase

	// per-tick message budget
	budget  int
	dropped int
}

func newEngine[S, M any](app App[S, M], width, height int, cfg Config, log *slog.Logger, exec executor[M]) (*engine[S, M], error) {
	cfg = cfg.normalized()
	capture, err := backend.WithHistory(width, height, cfg.History)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	e := &engine[S, M]{
		app:      app,
		capture:  capture,
		exec:     exec,
		overlays: overlay.NewStack[M](),
		queue:    input.NewQueue(),
		theme:    theme.Default(),
		cfg:      cfg,
		log:      log,
		phase:    PhaseInitialized,
	}
	var cmd command.Command[M]
	e.state, cmd = app.Init()
	exec.Execute(cmd)
	e.applyOverlayChanges()
	return e, nil
}

func (e *engine[S, M]) beginTick() {
	e.budget = e.cfg.MaxMessages
	e.dropped = 0
}

// dispatchOne runs one message through Update, charging the per-tick
// budget. Over budget, the message is dropped and counted.
func (e *engine[S, M]) dispatchOne(m M) {
	if e.budget <= 0 {
		e.dropped++
		return
	}
	e.budget--
	e.exec.Execute(e.app.Update(&e.state, m))
}

// drainExec dispatches buffered handler messages, including the ones
// those dispatches produce, until the buffer is empty or the budget
// runs out.
func (e *engine[S, M]) drainExec() {
	for e.exec.HasPendingMessages() {
		for _, m := range e.exec.TakeMessages() {
			e.dispatchOne(m)
		}
		if e.budget <= 0 {
			e.dropped += len(e.exec.TakeMessages())
			return
		}
	}
}

// deliverInput routes every queued event through the overlay stack,
// then to the application unless an overlay consumed it or a modal
// overlay blocked it.
func (e *engine[S, M]) deliverInput() {
	for {
		ev, ok := e.queue.Pop()
		if !ok {
			return
		}
		res := e.overlays.HandleEvent(ev)
		if res.HasMsg {
			e.dispatchOne(res.Msg)
		}
		if res.Consumed || res.Blocked {
			continue
		}
		if m, ok := e.app.HandleEvent(&e.state, ev); ok {
			e.dispatchOne(m)
		}
	}
}

// applyOverlayChanges applies buffered pushes before pops, so a command
// that pushes and pops in the same tick nets out correctly.
func (e *engine[S, M]) applyOverlayChanges() {
	for _, o := range e.exec.TakePushes() {
		e.overlays.Push(o)
	}
	for n := e.exec.TakePops(); n > 0; n-- {
		e.overlays.Pop()
	}
}

func (e *engine[S, M]) tickApp() {
	if m, ok := e.app.OnTick(&e.state); ok {
		e.dispatchOne(m)
		e.drainExec()
		e.applyOverlayChanges()
	}
}

func (e *engine[S, M]) reportOverflow() {
	if e.dropped > 0 {
		e.log.Warn("message queue overflow",
			"dropped", e.dropped,
			"limit", e.cfg.MaxMessages)
	}
}

func (e *engine[S, M]) quitRequested() bool {
	return e.exec.ShouldQuit() || e.app.ShouldQuit(&e.state)
}

// render clears the grid, draws the view and the overlay stack, and
// flushes the result into history.
func (e *engine[S, M]) render() {
	e.capture.Clear()
	if reg := e.capture.Annotations(); reg != nil {
		reg.Clear()
	}
	f := e.capture.Frame()
	e.app.View(&e.state, f)
	e.overlays.Render(f, f.Area(), &e.theme)
	e.capture.Flush()
}

// Accessors shared by both runtimes.

func (e *engine[S, M]) State() *S                 { return &e.state }
func (e *engine[S, M]) Capture() *backend.Capture { return e.capture }
func (e *engine[S, M]) Queue() *input.Queue       { return e.queue }
func (e *engine[S, M]) Phase() Phase              { return e.phase }

func (e *engine[S, M]) SetTheme(th theme.Theme) {
	e.theme = th
}

func (e *engine[S, M]) Theme() theme.Theme {
	return e.theme
}

// Send queues an input event for the next tick.
func (e *engine[S, M]) Send(ev input.Event) {
	e.queue.Push(ev)
}

func (e *engine[S, M]) SendAll(events ...input.Event) {
	e.queue.Extend(events...)
}

// Display returns the current grid as plain text.
func (e *engine[S, M]) Display() string {
	return e.capture.String()
}

// DisplayANSI returns the current grid with ANSI styling.
func (e *engine[S, M]) DisplayANSI() string {
	return e.capture.ANSI()
}

func (e *engine[S, M]) CellAt(x, y int) *cell.Cell {
	return e.capture.CellAt(x, y)
}

func (e *engine[S, M]) ContainsText(needle string) bool {
	return e.capture.ContainsText(needle)
}

func (e *engine[S, M]) FindText(needle string) []layout.Position {
	return e.capture.FindText(needle)
}

func (e *engine[S, M]) OverlayCount() int {
	return e.overlays.Len()
}

func (e *engine[S, M]) HasModalOverlay() bool {
	return e.overlays.HasModal()
}

func (e *engine[S, M]) ClearOverlays() {
	e.overlays.Clear()
}
