// Package command implements the effect algebra of the framework.
// Update functions return a Command describing what should happen next:
// follow-up messages, quitting, synchronous callbacks, background work,
// and overlay stack manipulation.
package command

import (
	"context"

	"github.com/tuilab/loom/overlay"
)

// Future is background work that resolves to an optional message. It
// must honor ctx cancellation.
type Future[M any] func(ctx context.Context) (M, bool)

// FallibleFuture is background work whose failure is routed to the
// runtime's error channel instead of producing a message.
type FallibleFuture[M any] func(ctx context.Context) (M, bool, error)

type kind uint8

const (
	kindMessage kind = iota
	kindBatch
	kindQuit
	kindCallback
	kindAsync
	kindAsyncFallible
	kindPushOverlay
	kindPopOverlay
)

type action[M any] struct {
	kind     kind
	msg      M
	batch    []M
	callback func() (M, bool)
	future   Future[M]
	fallible FallibleFuture[M]
	overlay  overlay.Overlay[M]
}

// Command is an ordered list of actions. The zero value is the empty
// command, and commands form a monoid under And with None as identity.
type Command[M any] struct {
	actions []action[M]
}

// None returns the empty command.
func None[M any]() Command[M] {
	return Command[M]{}
}

// Msg dispatches a single follow-up message.
func Msg[M any](m M) Command[M] {
	return Command[M]{actions: []action[M]{{kind: kindMessage, msg: m}}}
}

// Batch dispatches several messages in order. An empty batch is None.
func Batch[M any](msgs ...M) Command[M] {
	if len(msgs) == 0 {
		return None[M]()
	}
	return Command[M]{actions: []action[M]{{kind: kindBatch, batch: msgs}}}
}

// Quit asks the runtime to shut down.
func Quit[M any]() Command[M] {
	return Command[M]{actions: []action[M]{{kind: kindQuit}}}
}

// Perform runs a synchronous callback during command execution. The
// callback's message, if any, is queued ahead of async results.
func Perform[M any](fn func() (M, bool)) Command[M] {
	return Command[M]{actions: []action[M]{{kind: kindCallback, callback: fn}}}
}

// PerformAsync schedules background work on the async runtime.
func PerformAsync[M any](fut Future[M]) Command[M] {
	return Command[M]{actions: []action[M]{{kind: kindAsync, future: fut}}}
}

// PerformAsyncFallible schedules fallible work whose outcome, success or
// failure, is always mapped to a message. The error channel is never
// involved.
func PerformAsyncFallible[T, M any](fn func(ctx context.Context) (T, error), onResult func(T, error) M) Command[M] {
	fut := func(ctx context.Context) (M, bool) {
		v, err := fn(ctx)
		return onResult(v, err), true
	}
	return PerformAsync(fut)
}

// TryPerformAsync schedules fallible work. Success maps to an optional
// message; failure is delivered to the runtime's error channel.
func TryPerformAsync[T, M any](fn func(ctx context.Context) (T, error), onSuccess func(T) (M, bool)) Command[M] {
	fut := func(ctx context.Context) (m M, ok bool, err error) {
		v, err := fn(ctx)
		if err != nil {
			return m, false, err
		}
		m, ok = onSuccess(v)
		return m, ok, nil
	}
	return Command[M]{actions: []action[M]{{kind: kindAsyncFallible, fallible: fut}}}
}

// PushOverlay places an overlay on top of the stack.
func PushOverlay[M any](o overlay.Overlay[M]) Command[M] {
	return Command[M]{actions: []action[M]{{kind: kindPushOverlay, overlay: o}}}
}

// PopOverlay removes the topmost overlay.
func PopOverlay[M any]() Command[M] {
	return Command[M]{actions: []action[M]{{kind: kindPopOverlay}}}
}

// Combine concatenates two commands, preserving action order.
func Combine[M any](a, b Command[M]) Command[M] {
	if a.IsNone() {
		return b
	}
	if b.IsNone() {
		return a
	}
	actions := make([]action[M], 0, len(a.actions)+len(b.actions))
	actions = append(actions, a.actions...)
	actions = append(actions, b.actions...)
	return Command[M]{actions: actions}
}

// And appends another command after this one.
func (c Command[M]) And(other Command[M]) Command[M] {
	return Combine(c, other)
}

// IsNone reports whether the command carries no actions.
func (c Command[M]) IsNone() bool {
	return len(c.actions) == 0
}

// Len returns the number of actions.
func (c Command[M]) Len() int {
	return len(c.actions)
}

// Clone copies the pure actions: Message, Batch, Quit and PopOverlay.
// Callbacks, futures and overlay pushes are single-shot and dropped.
func (c Command[M]) Clone() Command[M] {
	var out Command[M]
	for _, a := range c.actions {
		switch a.kind {
		case kindMessage:
			out.actions = append(out.actions, action[M]{kind: kindMessage, msg: a.msg})
		case kindBatch:
			batch := make([]M, len(a.batch))
			copy(batch, a.batch)
			out.actions = append(out.actions, action[M]{kind: kindBatch, batch: batch})
		case kindQuit:
			out.actions = append(out.actions, action[M]{kind: kindQuit})
		case kindPopOverlay:
			out.actions = append(out.actions, action[M]{kind: kindPopOverlay})
		}
	}
	return out
}

// Map rewrites every message produced by the command through f.
// Overlay pushes cannot be mapped (the overlay would keep producing the
// old message type) and are dropped.
func Map[M, N any](c Command[M], f func(M) N) Command[N] {
	var out Command[N]
	for _, a := range c.actions {
		switch a.kind {
		case kindMessage:
			out.actions = append(out.actions, action[N]{kind: kindMessage, msg: f(a.msg)})
		case kindBatch:
			batch := make([]N, len(a.batch))
			for i, m := range a.batch {
				batch[i] = f(m)
			}
			out.actions = append(out.actions, action[N]{kind: kindBatch, batch: batch})
		case kindQuit:
			out.actions = append(out.actions, action[N]{kind: kindQuit})
		case kindCallback:
			cb := a.callback
			out.actions = append(out.actions, action[N]{kind: kindCallback, callback: func() (N, bool) {
				m, ok := cb()
				if !ok {
					var zero N
					return zero, false
				}
				return f(m), true
			}})
		case kindAsync:
			fut := a.future
			out.actions = append(out.actions, action[N]{kind: kindAsync, future: func(ctx context.Context) (N, bool) {
				m, ok := fut(ctx)
				if !ok {
					var zero N
					return zero, false
				}
				return f(m), true
			}})
		case kindAsyncFallible:
			fut := a.fallible
			out.actions = append(out.actions, action[N]{kind: kindAsyncFallible, fallible: func(ctx context.Context) (N, bool, error) {
				m, ok, err := fut(ctx)
				if err != nil || !ok {
					var zero N
					return zero, false, err
				}
				return f(m), true, nil
			}})
		case kindPopOverlay:
			out.actions = append(out.actions, action[N]{kind: kindPopOverlay})
		case kindPushOverlay:
			// Dropped: the pushed overlay still speaks the old
			// message type.
		}
	}
	return out
}
