// Package runtime drives applications through the update/view cycle:
// a deterministic synchronous runtime for tests and an async runtime
// with timers, subscriptions and background tasks.
package runtime

import (
	"github.com/tuilab/loom/backend"
	"github.com/tuilab/loom/command"
	"github.com/tuilab/loom/input"
)

// App is the application contract. Init produces the initial state and
// startup command, Update folds one message into the state, View draws
// the state into a frame.
//
// The remaining methods are optional behavior; embed Base to get the
// defaults and override only what the application needs.
type App[S, M any] interface {
	Init() (S, command.Command[M])
	Update(state *S, msg M) command.Command[M]
	View(state *S, f *backend.Frame)

	// HandleEvent turns a raw input event into a message. Events
	// consumed or blocked by overlays never reach it.
	HandleEvent(state *S, ev input.Event) (M, bool)

	// ShouldQuit is checked once per tick, after messages and events.
	ShouldQuit(state *S) bool

	// OnTick runs once per tick, after input, and may emit a message.
	OnTick(state *S) (M, bool)

	// OnExit runs once during shutdown, after the final render.
	OnExit(state *S)
}

// Base provides the default optional behavior: no event handling, never
// quits, no tick message, nothing on exit.
type Base[S, M any] struct{}

func (Base[S, M]) HandleEvent(*S, input.Event) (M, bool) {
	var zero M
	return zero, false
}

func (Base[S, M]) ShouldQuit(*S) bool { return false }

func (Base[S, M]) OnTick(*S) (M, bool) {
	var zero M
	return zero, false
}

func (Base[S, M]) OnExit(*S) {}
