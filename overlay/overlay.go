// Package overlay provides the modal overlay stack: transient UI layers
// (dialogs, menus, pickers) that intercept input ahead of the
// application and render above its view.
package overlay

import (
	"github.com/tuilab/loom/backend"
	"github.com/tuilab/loom/input"
	"github.com/tuilab/loom/layout"
	"github.com/tuilab/loom/theme"
)

type actionKind uint8

const (
	actionConsumed actionKind = iota
	actionMessage
	actionDismiss
	actionDismissWithMessage
	actionPropagate
)

// Action is an overlay's response to an input event.
type Action[M any] struct {
	kind actionKind
	msg  M
}

// Consumed reports the event handled with nothing further to do.
func Consumed[M any]() Action[M] {
	return Action[M]{kind: actionConsumed}
}

// Message reports the event handled, producing a message for the app.
func Message[M any](msg M) Action[M] {
	return Action[M]{kind: actionMessage, msg: msg}
}

// Dismiss closes the overlay.
func Dismiss[M any]() Action[M] {
	return Action[M]{kind: actionDismiss}
}

// DismissWithMessage closes the overlay and delivers a message.
func DismissWithMessage[M any](msg M) Action[M] {
	return Action[M]{kind: actionDismissWithMessage, msg: msg}
}

// Propagate passes the event on to the next layer down.
func Propagate[M any]() Action[M] {
	return Action[M]{kind: actionPropagate}
}

func (a Action[M]) IsPropagate() bool {
	return a.kind == actionPropagate
}

// Overlay is one layer of transient UI above the application view.
type Overlay[M any] interface {
	// HandleEvent inspects an input event before the application sees
	// it.
	HandleEvent(ev input.Event) Action[M]

	// View draws the overlay into the given area.
	View(f *backend.Frame, area layout.Rect, th *theme.Theme)

	// Modal overlays block input from reaching the application even
	// when every overlay propagates the event.
	Modal() bool
}
