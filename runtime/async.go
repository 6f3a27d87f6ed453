package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/tuilab/loom/command"
	"github.com/tuilab/loom/subscription"
)

// AsyncRuntime adds background execution to the tick cycle: futures
// spawned from commands, subscription streams, and a Run loop driven by
// tick and frame timers. State never leaves the runtime goroutine;
// tasks communicate back through a bounded message channel.
type AsyncRuntime[S, M any] struct {
	*engine[S, M]
	handler *command.AsyncHandler[M]

	msgs   chan M
	errs   chan error
	ctx    context.Context
	cancel context.CancelFunc
}

// NewAsyncRuntime creates an async runtime with the default config and
// a discarding diagnostic sink.
func NewAsyncRuntime[S, M any](app App[S, M], width, height int) (*AsyncRuntime[S, M], error) {
	return NewAsyncRuntimeWith(app, width, height, DefaultConfig(), nil)
}

// NewAsyncRuntimeWith creates an async runtime with explicit config and
// sink. Futures from the startup command are spawned immediately; their
// results arrive on a later tick.
func NewAsyncRuntimeWith[S, M any](app App[S, M], width, height int, cfg Config, log *slog.Logger) (*AsyncRuntime[S, M], error) {
	handler := command.NewAsyncHandler[M](log)
	eng, err := newEngine(app, width, height, cfg, log, handler)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	rt := &AsyncRuntime[S, M]{
		engine:  eng,
		handler: handler,
		msgs:    make(chan M, eng.cfg.ChannelCapacity),
		errs:    make(chan error, eng.cfg.ChannelCapacity),
		ctx:     ctx,
		cancel:  cancel,
	}
	rt.spawnPending()
	rt.render()
	return rt, nil
}

// Context returns the runtime-owned context cloned into every spawned
// task and subscription stream. It is cancelled on shutdown.
func (rt *AsyncRuntime[S, M]) Context() context.Context {
	return rt.ctx
}

// Subscribe pumps a subscription's stream into the message channel in
// arrival order, until the stream ends or the runtime shuts down.
func (rt *AsyncRuntime[S, M]) Subscribe(sub subscription.Subscription[M]) {
	in := sub.Stream(rt.ctx)
	go func() {
		for m := range in {
			select {
			case rt.msgs <- m:
			case <-rt.ctx.Done():
				return
			}
		}
	}()
}

func (rt *AsyncRuntime[S, M]) SubscribeAll(subs ...subscription.Subscription[M]) {
	for _, sub := range subs {
		rt.Subscribe(sub)
	}
}

// Tick mirrors the sync runtime's cycle, additionally draining any
// ready async results first. Results of futures spawned during this
// tick are observed no earlier than the next one.
func (rt *AsyncRuntime[S, M]) Tick() {
	if rt.phase == PhaseQuitting {
		return
	}
	rt.phase = PhaseRunning
	rt.beginTick()

	rt.drainAsync()
	rt.drainExec()
	rt.deliverInput()
	rt.drainExec()
	rt.applyOverlayChanges()
	rt.tickApp()
	rt.reportOverflow()
	rt.spawnPending()

	if rt.quitRequested() {
		rt.shutdown()
		return
	}
	rt.render()
}

// RunTicks runs n ticks, stopping early if the runtime quits.
func (rt *AsyncRuntime[S, M]) RunTicks(n int) {
	for range n {
		if rt.phase == PhaseQuitting {
			return
		}
		rt.Tick()
	}
}

// Run drives the runtime until Quit is called or ctx is cancelled.
// Updates, views and drains run to completion between suspension
// points, so state is only ever touched from this goroutine.
func (rt *AsyncRuntime[S, M]) Run(ctx context.Context) error {
	if rt.phase == PhaseQuitting {
		return nil
	}
	rt.phase = PhaseRunning

	tick := time.NewTicker(rt.cfg.TickRate)
	defer tick.Stop()
	frame := time.NewTicker(rt.cfg.FrameRate)
	defer frame.Stop()

	for {
		select {
		case <-ctx.Done():
			rt.shutdown()
			return ctx.Err()
		case <-rt.ctx.Done():
			rt.shutdown()
			return nil
		case m := <-rt.msgs:
			rt.beginTick()
			rt.dispatchOne(m)
			rt.drainExec()
			rt.applyOverlayChanges()
			rt.reportOverflow()
			rt.spawnPending()
		case <-tick.C:
			rt.Tick()
		case <-frame.C:
			rt.render()
		}
		if rt.phase == PhaseQuitting || rt.quitRequested() {
			rt.shutdown()
			return nil
		}
	}
}

// Quit requests shutdown. Safe to call from any goroutine.
func (rt *AsyncRuntime[S, M]) Quit() {
	rt.cancel()
}

// ShouldQuit reports whether the runtime has shut down.
func (rt *AsyncRuntime[S, M]) ShouldQuit() bool {
	return rt.phase == PhaseQuitting
}

// Dispatch runs one message through Update immediately. Intended for
// tests; in live use messages travel through the channel.
func (rt *AsyncRuntime[S, M]) Dispatch(m M) {
	if rt.phase == PhaseQuitting {
		return
	}
	rt.handler.Execute(rt.app.Update(&rt.state, m))
	rt.applyOverlayChanges()
	rt.spawnPending()
}

func (rt *AsyncRuntime[S, M]) DispatchAll(msgs ...M) {
	for _, m := range msgs {
		rt.Dispatch(m)
	}
}

// TakeErrors drains and returns every task error currently buffered.
func (rt *AsyncRuntime[S, M]) TakeErrors() []error {
	var out []error
	for {
		select {
		case err := <-rt.errs:
			out = append(out, err)
		default:
			return out
		}
	}
}

// HasErrors reports whether any task errors are buffered.
func (rt *AsyncRuntime[S, M]) HasErrors() bool {
	return len(rt.errs) > 0
}

func (rt *AsyncRuntime[S, M]) drainAsync() {
	for {
		select {
		case m := <-rt.msgs:
			rt.dispatchOne(m)
		default:
			return
		}
	}
}

func (rt *AsyncRuntime[S, M]) spawnPending() {
	if rt.handler.HasPendingFutures() {
		rt.handler.SpawnPending(rt.ctx, rt.msgs, rt.errs)
	}
}

// shutdown: cancel tasks, render the final state, run OnExit.
func (rt *AsyncRuntime[S, M]) shutdown() {
	if rt.phase == PhaseQuitting {
		return
	}
	rt.phase = PhaseQuitting
	rt.cancel()
	rt.render()
	rt.app.OnExit(&rt.state)
}
