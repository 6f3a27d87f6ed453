package input

import "time"

// Queue is a FIFO of simulated events, preloaded by tests and drained by
// the runtime.
type Queue struct {
	events []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

// NewQueueWith returns a queue preloaded with the given events.
func NewQueueWith(events ...Event) *Queue {
	q := NewQueue()
	q.events = append(q.events, events...)
	return q
}

func (q *Queue) Len() int {
	return len(q.events)
}

func (q *Queue) IsEmpty() bool {
	return len(q.events) == 0
}

func (q *Queue) Clear() {
	q.events = q.events[:0]
}

// Push appends an event to the back of the queue.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// PushFront inserts an event at the front, making it next to be consumed.
func (q *Queue) PushFront(e Event) {
	q.events = append([]Event{e}, q.events...)
}

// Pop removes and returns the next event.
func (q *Queue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

// Peek returns the next event without consuming it.
func (q *Queue) Peek() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	return q.events[0], true
}

// Poll returns the next event if one is available. The timeout is ignored
// in simulation; there is never anything to wait for.
func (q *Queue) Poll(_ time.Duration) (Event, bool) {
	return q.Pop()
}

// Drain removes and returns all queued events.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Extend appends a batch of events.
func (q *Queue) Extend(events ...Event) {
	q.events = append(q.events, events...)
}

// TypeString pushes one key press per rune of s.
func (q *Queue) TypeString(s string) {
	for _, c := range s {
		q.Push(Char(c))
	}
}

func (q *Queue) Char(c rune)    { q.Push(Char(c)) }
func (q *Queue) Key(c KeyCode)  { q.Push(KeyEvent(c)) }
func (q *Queue) Ctrl(c rune)    { q.Push(Ctrl(c)) }
func (q *Queue) Alt(c rune)     { q.Push(Alt(c)) }
func (q *Queue) Enter()         { q.Key(KeyEnter) }
func (q *Queue) Escape()        { q.Key(KeyEscape) }
func (q *Queue) Tab()           { q.Key(KeyTab) }
func (q *Queue) Backspace()     { q.Key(KeyBackspace) }
func (q *Queue) Delete()        { q.Key(KeyDelete) }
func (q *Queue) Up()            { q.Key(KeyUp) }
func (q *Queue) Down()          { q.Key(KeyDown) }
func (q *Queue) Left()          { q.Key(KeyLeft) }
func (q *Queue) Right()         { q.Key(KeyRight) }
func (q *Queue) Home()          { q.Key(KeyHome) }
func (q *Queue) End()           { q.Key(KeyEnd) }
func (q *Queue) PageUp()        { q.Key(KeyPageUp) }
func (q *Queue) PageDown()      { q.Key(KeyPageDown) }
func (q *Queue) Function(n int) { q.Push(F(n)) }

func (q *Queue) Click(x, y int) {
	q.Push(Click(x, y))
}

// DoubleClick simulates two full click cycles at the same position.
func (q *Queue) DoubleClick(x, y int) {
	q.Push(Click(x, y))
	q.Push(MouseUpAt(x, y))
	q.Push(Click(x, y))
	q.Push(MouseUpAt(x, y))
}

// DragTo simulates press, drag and release between two positions.
func (q *Queue) DragTo(fromX, fromY, toX, toY int) {
	q.Push(Click(fromX, fromY))
	q.Push(Drag(toX, toY, ButtonLeft))
	q.Push(MouseUpAt(toX, toY))
}

func (q *Queue) ScrollUp(x, y int)   { q.Push(ScrollUp(x, y)) }
func (q *Queue) ScrollDown(x, y int) { q.Push(ScrollDown(x, y)) }

func (q *Queue) Resize(width, height int) {
	q.Push(Resize(width, height))
}

func (q *Queue) Paste(text string) {
	q.Push(Paste(text))
}
