// Package input models simulated terminal input: key, mouse, resize,
// focus and paste events, plus a FIFO queue for scripting them in tests.
package input

import "fmt"

// EventType discriminates the variants of Event.
type EventType uint8

const (
	EventKey EventType = iota
	EventMouse
	EventResize
	EventFocusGained
	EventFocusLost
	EventPaste
)

// Modifier is a set of key modifiers.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
	ModMeta
)

func (m Modifier) Contains(other Modifier) bool {
	return m&other == other
}

// KeyCode identifies a non-character key. Character keys use KeyRune with
// the Rune field set.
type KeyCode uint8

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyKind distinguishes press, repeat and release events.
type KeyKind uint8

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// Key is a keyboard event.
type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifier
	Kind KeyKind
}

// MouseAction discriminates mouse event kinds.
type MouseAction uint8

const (
	MouseDown MouseAction = iota
	MouseUp
	MouseDrag
	MouseMove
	MouseScrollUp
	MouseScrollDown
)

// MouseButton identifies which button an event refers to.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
	ButtonNone
)

// Mouse is a pointer event at a cell position.
type Mouse struct {
	Action MouseAction
	Button MouseButton
	X      int
	Y      int
	Mods   Modifier
}

// Event is a simulated input event.
type Event struct {
	Type   EventType
	Key    Key
	Mouse  Mouse
	Width  int
	Height int
	Text   string
}

func (e Event) IsKey() bool {
	return e.Type == EventKey
}

func (e Event) IsMouse() bool {
	return e.Type == EventMouse
}

func (e Event) String() string {
	switch e.Type {
	case EventKey:
		if e.Key.Code == KeyRune {
			return fmt.Sprintf("key(%q mods=%d)", e.Key.Rune, e.Key.Mods)
		}
		return fmt.Sprintf("key(code=%d mods=%d)", e.Key.Code, e.Key.Mods)
	case EventMouse:
		return fmt.Sprintf("mouse(action=%d at %d,%d)", e.Mouse.Action, e.Mouse.X, e.Mouse.Y)
	case EventResize:
		return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
	case EventFocusGained:
		return "focus_gained"
	case EventFocusLost:
		return "focus_lost"
	default:
		return fmt.Sprintf("paste(%q)", e.Text)
	}
}
