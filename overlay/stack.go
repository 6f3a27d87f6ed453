package overlay

import (
	"github.com/tuilab/loom/backend"
	"github.com/tuilab/loom/input"
	"github.com/tuilab/loom/layout"
	"github.com/tuilab/loom/theme"
)

// StackResult is the stack's verdict after routing one event.
type StackResult[M any] struct {
	// Consumed is true when some overlay stopped the event.
	Consumed bool

	// Msg is the message produced by the consuming overlay, if any.
	Msg M

	// HasMsg reports whether Msg is set.
	HasMsg bool

	// Blocked is true when a modal overlay is present, which keeps the
	// event from the application even if every overlay propagated.
	Blocked bool
}

// Stack is a LIFO of overlays. Events are offered top-down; rendering is
// bottom-up.
type Stack[M any] struct {
	overlays []Overlay[M]
}

func NewStack[M any]() *Stack[M] {
	return &Stack[M]{}
}

func (s *Stack[M]) Push(o Overlay[M]) {
	s.overlays = append(s.overlays, o)
}

// Pop removes the topmost overlay. Popping an empty stack is a no-op.
func (s *Stack[M]) Pop() (Overlay[M], bool) {
	if len(s.overlays) == 0 {
		return nil, false
	}
	top := s.overlays[len(s.overlays)-1]
	s.overlays = s.overlays[:len(s.overlays)-1]
	return top, true
}

func (s *Stack[M]) Clear() {
	s.overlays = nil
}

func (s *Stack[M]) Len() int {
	return len(s.overlays)
}

func (s *Stack[M]) IsActive() bool {
	return len(s.overlays) > 0
}

// Top returns the topmost overlay without removing it.
func (s *Stack[M]) Top() (Overlay[M], bool) {
	if len(s.overlays) == 0 {
		return nil, false
	}
	return s.overlays[len(s.overlays)-1], true
}

// HasModal reports whether any overlay on the stack is modal.
func (s *Stack[M]) HasModal() bool {
	for _, o := range s.overlays {
		if o.Modal() {
			return true
		}
	}
	return false
}

// HandleEvent offers the event to each overlay from the top down. The
// first non-propagating action wins; Dismiss variants pop the overlay
// that returned them.
func (s *Stack[M]) HandleEvent(ev input.Event) StackResult[M] {
	result := StackResult[M]{Blocked: s.HasModal()}
	for i := len(s.overlays) - 1; i >= 0; i-- {
		action := s.overlays[i].HandleEvent(ev)
		switch action.kind {
		case actionPropagate:
			continue
		case actionConsumed:
			result.Consumed = true
		case actionMessage:
			result.Consumed = true
			result.Msg = action.msg
			result.HasMsg = true
		case actionDismiss:
			result.Consumed = true
			s.removeAt(i)
		case actionDismissWithMessage:
			result.Consumed = true
			result.Msg = action.msg
			result.HasMsg = true
			s.removeAt(i)
		}
		return result
	}
	return result
}

func (s *Stack[M]) removeAt(i int) {
	s.overlays = append(s.overlays[:i], s.overlays[i+1:]...)
}

// Render draws the stack bottom-up so the newest overlay paints last.
func (s *Stack[M]) Render(f *backend.Frame, area layout.Rect, th *theme.Theme) {
	for _, o := range s.overlays {
		o.View(f, area, th)
	}
}
