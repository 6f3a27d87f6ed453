package input

// Constructors for the common event shapes used in tests.

// Char returns a key press for a plain character.
func Char(c rune) Event {
	return Event{Type: EventKey, Key: Key{Code: KeyRune, Rune: c}}
}

// CharWith returns a key press for a character with modifiers.
func CharWith(c rune, mods Modifier) Event {
	return Event{Type: EventKey, Key: Key{Code: KeyRune, Rune: c, Mods: mods}}
}

// KeyEvent returns a key press for a special key.
func KeyEvent(code KeyCode) Event {
	return Event{Type: EventKey, Key: Key{Code: code}}
}

// KeyWith returns a key press for a special key with modifiers.
func KeyWith(code KeyCode, mods Modifier) Event {
	return Event{Type: EventKey, Key: Key{Code: code, Mods: mods}}
}

// Ctrl returns a Ctrl+character key press.
func Ctrl(c rune) Event {
	return CharWith(c, ModCtrl)
}

// Alt returns an Alt+character key press.
func Alt(c rune) Event {
	return CharWith(c, ModAlt)
}

// Click returns a left-button press at the given position.
func Click(x, y int) Event {
	return Event{Type: EventMouse, Mouse: Mouse{Action: MouseDown, Button: ButtonLeft, X: x, Y: y}}
}

// ClickButton returns a press of a specific button.
func ClickButton(x, y int, button MouseButton) Event {
	return Event{Type: EventMouse, Mouse: Mouse{Action: MouseDown, Button: button, X: x, Y: y}}
}

// MouseUpAt returns a left-button release.
func MouseUpAt(x, y int) Event {
	return Event{Type: EventMouse, Mouse: Mouse{Action: MouseUp, Button: ButtonLeft, X: x, Y: y}}
}

// MouseMoveTo returns a pointer move with no button held.
func MouseMoveTo(x, y int) Event {
	return Event{Type: EventMouse, Mouse: Mouse{Action: MouseMove, Button: ButtonNone, X: x, Y: y}}
}

// Drag returns a drag event with the given button held.
func Drag(x, y int, button MouseButton) Event {
	return Event{Type: EventMouse, Mouse: Mouse{Action: MouseDrag, Button: button, X: x, Y: y}}
}

// ScrollUp returns a scroll-up event at the given position.
func ScrollUp(x, y int) Event {
	return Event{Type: EventMouse, Mouse: Mouse{Action: MouseScrollUp, Button: ButtonNone, X: x, Y: y}}
}

// ScrollDown returns a scroll-down event at the given position.
func ScrollDown(x, y int) Event {
	return Event{Type: EventMouse, Mouse: Mouse{Action: MouseScrollDown, Button: ButtonNone, X: x, Y: y}}
}

// Resize returns a terminal resize event.
func Resize(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// FocusGained returns a focus-gained event.
func FocusGained() Event {
	return Event{Type: EventFocusGained}
}

// FocusLost returns a focus-lost event.
func FocusLost() Event {
	return Event{Type: EventFocusLost}
}

// Paste returns a bracketed-paste event.
func Paste(text string) Event {
	return Event{Type: EventPaste, Text: text}
}

// F returns a function key press for F1 through F12.
func F(n int) Event {
	if n < 1 || n > 12 {
		return KeyEvent(KeyF1)
	}
	return KeyEvent(KeyF1 + KeyCode(n-1))
}
