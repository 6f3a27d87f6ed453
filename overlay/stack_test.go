package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuilab/loom/backend"
	"github.com/tuilab/loom/cell"
	"github.com/tuilab/loom/input"
	"github.com/tuilab/loom/layout"
	"github.com/tuilab/loom/theme"
)

type stubOverlay struct {
	name    string
	action  func(ev input.Event) Action[string]
	modal   bool
	rendered *[]string
}

func (s *stubOverlay) HandleEvent(ev input.Event) Action[string] {
	return s.action(ev)
}

func (s *stubOverlay) View(f *backend.Frame, area layout.Rect, th *theme.Theme) {
	if s.rendered != nil {
		*s.rendered = append(*s.rendered, s.name)
	}
	f.SetString(area.X, area.Y, s.name, cell.NewStyle())
}

func (s *stubOverlay) Modal() bool { return s.modal }

func propagating(name string) *stubOverlay {
	return &stubOverlay{name: name, action: func(input.Event) Action[string] {
		return Propagate[string]()
	}}
}

func TestStackTopDownFirstNonPropagateWins(t *testing.T) {
	s := NewStack[string]()
	s.Push(&stubOverlay{name: "bottom", action: func(input.Event) Action[string] {
		return Message("from-bottom")
	}})
	s.Push(&stubOverlay{name: "top", action: func(input.Event) Action[string] {
		return Message("from-top")
	}})

	res := s.HandleEvent(input.Char('x'))
	assert.True(t, res.Consumed)
	require.True(t, res.HasMsg)
	assert.Equal(t, "from-top", res.Msg)
	assert.Equal(t, 2, s.Len())
}

func TestStackPropagatesThroughToBottom(t *testing.T) {
	s := NewStack[string]()
	s.Push(&stubOverlay{name: "bottom", action: func(input.Event) Action[string] {
		return Consumed[string]()
	}})
	s.Push(propagating("top"))

	res := s.HandleEvent(input.Char('x'))
	assert.True(t, res.Consumed)
	assert.False(t, res.HasMsg)
}

func TestStackAllPropagate(t *testing.T) {
	s := NewStack[string]()
	s.Push(propagating("a"))
	s.Push(propagating("b"))

	res := s.HandleEvent(input.Char('x'))
	assert.False(t, res.Consumed)
	assert.False(t, res.Blocked)
}

func TestStackDismissPopsOverlay(t *testing.T) {
	s := NewStack[string]()
	s.Push(propagating("bottom"))
	s.Push(&stubOverlay{name: "top", action: func(ev input.Event) Action[string] {
		if ev.Type == input.EventKey && ev.Key.Code == input.KeyEscape {
			return Dismiss[string]()
		}
		return Consumed[string]()
	}})

	res := s.HandleEvent(input.KeyEvent(input.KeyEscape))
	assert.True(t, res.Consumed)
	assert.Equal(t, 1, s.Len())

	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, "bottom", top.(*stubOverlay).name)
}

func TestStackDismissWithMessage(t *testing.T) {
	s := NewStack[string]()
	s.Push(&stubOverlay{name: "dialog", action: func(input.Event) Action[string] {
		return DismissWithMessage("confirmed")
	}})

	res := s.HandleEvent(input.KeyEvent(input.KeyEnter))
	assert.True(t, res.Consumed)
	require.True(t, res.HasMsg)
	assert.Equal(t, "confirmed", res.Msg)
	assert.False(t, s.IsActive())
}

func TestStackModalBlocksEvenWhenPropagating(t *testing.T) {
	s := NewStack[string]()
	modal := propagating("modal")
	modal.modal = true
	s.Push(modal)

	res := s.HandleEvent(input.Char('q'))
	assert.False(t, res.Consumed)
	assert.True(t, res.Blocked)
	assert.True(t, s.HasModal())
}

func TestStackPopEmptyIsNoop(t *testing.T) {
	s := NewStack[string]()
	_, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStackRendersBottomUp(t *testing.T) {
	c, err := backend.New(20, 4)
	require.NoError(t, err)
	th := theme.Default()

	var order []string
	a := propagating("first")
	a.rendered = &order
	b := propagating("second")
	b.rendered = &order

	s := NewStack[string]()
	s.Push(a)
	s.Push(b)
	s.Render(c.Frame(), layout.NewRect(0, 0, 20, 4), &th)

	assert.Equal(t, []string{"first", "second"}, order)
	// The later overlay paints over the earlier one.
	assert.Equal(t, "second", c.RowContent(0)[:6])
}

func TestStackClear(t *testing.T) {
	s := NewStack[string]()
	s.Push(propagating("a"))
	s.Push(propagating("b"))
	s.Clear()
	assert.False(t, s.IsActive())
}
