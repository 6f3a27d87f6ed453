package command

import (
	"log/slog"

	"github.com/tuilab/loom/overlay"
)

// core buffers the synchronous outcome of executed commands until the
// runtime drains it.
type core[M any] struct {
	messages []M
	pushes   []overlay.Overlay[M]
	pops     int
	quit     bool
}

// executeSync handles a pure action and reports whether it did. Async
// actions are left for the caller.
func (c *core[M]) executeSync(a action[M]) bool {
	switch a.kind {
	case kindMessage:
		c.messages = append(c.messages, a.msg)
	case kindBatch:
		c.messages = append(c.messages, a.batch...)
	case kindQuit:
		c.quit = true
	case kindCallback:
		if m, ok := a.callback(); ok {
			c.messages = append(c.messages, m)
		}
	case kindPushOverlay:
		c.pushes = append(c.pushes, a.overlay)
	case kindPopOverlay:
		c.pops++
	default:
		return false
	}
	return true
}

// TakeMessages returns and clears the buffered messages.
func (c *core[M]) TakeMessages() []M {
	out := c.messages
	c.messages = nil
	return out
}

// TakePushes returns and clears the buffered overlay pushes, in push
// order.
func (c *core[M]) TakePushes() []overlay.Overlay[M] {
	out := c.pushes
	c.pushes = nil
	return out
}

// TakePops returns and resets the buffered pop count.
func (c *core[M]) TakePops() int {
	n := c.pops
	c.pops = 0
	return n
}

// ShouldQuit reports whether a Quit action was executed. The flag is
// sticky until ResetQuit.
func (c *core[M]) ShouldQuit() bool {
	return c.quit
}

func (c *core[M]) ResetQuit() {
	c.quit = false
}

func (c *core[M]) HasPendingMessages() bool {
	return len(c.messages) > 0
}

// Handler executes commands for the synchronous runtime. Async actions
// cannot run without the async runtime and are dropped with a
// diagnostic.
type Handler[M any] struct {
	core[M]
	log *slog.Logger
}

// NewHandler creates a sync handler reporting diagnostics to log. A nil
// log discards them.
func NewHandler[M any](log *slog.Logger) *Handler[M] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler[M]{log: log}
}

// Execute runs every action of the command in order.
func (h *Handler[M]) Execute(cmd Command[M]) {
	for _, a := range cmd.actions {
		if h.executeSync(a) {
			continue
		}
		h.log.Warn("async command dropped: sync runtime cannot execute futures")
	}
}
