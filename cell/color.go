// Package cell defines the terminal cell model: symbols, colors and text
// modifiers, together with their JSON and ANSI encodings.
package cell

import (
	"encoding/json"
	"fmt"

	"github.com/muesli/termenv"
)

type colorKind uint8

const (
	kindReset colorKind = iota
	kindNamed
	kindIndexed
	kindRGB
)

// Color is a terminal color: the terminal default ("reset"), one of the 16
// named ANSI colors, a 256-palette index, or a 24-bit RGB value.
type Color struct {
	kind    colorKind
	n       uint8
	r, g, b uint8
}

var (
	Reset        = Color{}
	Black        = Color{kind: kindNamed, n: 0}
	Red          = Color{kind: kindNamed, n: 1}
	Green        = Color{kind: kindNamed, n: 2}
	Yellow       = Color{kind: kindNamed, n: 3}
	Blue         = Color{kind: kindNamed, n: 4}
	Magenta      = Color{kind: kindNamed, n: 5}
	Cyan         = Color{kind: kindNamed, n: 6}
	Gray         = Color{kind: kindNamed, n: 7}
	DarkGray     = Color{kind: kindNamed, n: 8}
	LightRed     = Color{kind: kindNamed, n: 9}
	LightGreen   = Color{kind: kindNamed, n: 10}
	LightYellow  = Color{kind: kindNamed, n: 11}
	LightBlue    = Color{kind: kindNamed, n: 12}
	LightMagenta = Color{kind: kindNamed, n: 13}
	LightCyan    = Color{kind: kindNamed, n: 14}
	White        = Color{kind: kindNamed, n: 15}
)

var colorNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "gray",
	"dark_gray", "light_red", "light_green", "light_yellow", "light_blue",
	"light_magenta", "light_cyan", "white",
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// Indexed returns a color from the 256-color palette.
func Indexed(n uint8) Color {
	return Color{kind: kindIndexed, n: n}
}

func (c Color) IsReset() bool {
	return c.kind == kindReset
}

// RGBValues returns the components of a 24-bit color. ok is false for
// reset, named and indexed colors.
func (c Color) RGBValues() (r, g, b uint8, ok bool) {
	if c.kind != kindRGB {
		return 0, 0, 0, false
	}
	return c.r, c.g, c.b, true
}

func (c Color) String() string {
	switch c.kind {
	case kindNamed:
		return colorNames[c.n]
	case kindIndexed:
		return fmt.Sprintf("indexed(%d)", c.n)
	case kindRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	default:
		return "reset"
	}
}

func (c Color) termenv() termenv.Color {
	switch c.kind {
	case kindNamed:
		return termenv.ANSIColor(c.n)
	case kindIndexed:
		return termenv.ANSI256Color(c.n)
	default:
		return termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b))
	}
}

// ForegroundSequence returns the full SGR escape selecting this color as
// the foreground. Reset maps to the default-foreground escape.
func (c Color) ForegroundSequence() string {
	if c.kind == kindReset {
		return termenv.CSI + "39m"
	}
	return termenv.CSI + c.termenv().Sequence(false) + "m"
}

// BackgroundSequence returns the full SGR escape selecting this color as
// the background. Reset maps to the default-background escape.
func (c Color) BackgroundSequence() string {
	if c.kind == kindReset {
		return termenv.CSI + "49m"
	}
	return termenv.CSI + c.termenv().Sequence(true) + "m"
}

type rgbJSON struct {
	RGB [3]uint8 `json:"rgb"`
}

type indexedJSON struct {
	Indexed uint8 `json:"indexed"`
}

func (c Color) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case kindReset:
		return json.Marshal("reset")
	case kindNamed:
		return json.Marshal(colorNames[c.n])
	case kindIndexed:
		return json.Marshal(indexedJSON{Indexed: c.n})
	default:
		return json.Marshal(rgbJSON{RGB: [3]uint8{c.r, c.g, c.b}})
	}
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name == "reset" {
			*c = Reset
			return nil
		}
		for i, n := range colorNames {
			if n == name {
				*c = Color{kind: kindNamed, n: uint8(i)}
				return nil
			}
		}
		return fmt.Errorf("unknown color name %q", name)
	}

	var idx indexedJSON
	if err := json.Unmarshal(data, &idx); err == nil && jsonHasKey(data, "indexed") {
		*c = Indexed(idx.Indexed)
		return nil
	}

	var rgb rgbJSON
	if err := json.Unmarshal(data, &rgb); err == nil && jsonHasKey(data, "rgb") {
		*c = RGB(rgb.RGB[0], rgb.RGB[1], rgb.RGB[2])
		return nil
	}

	return fmt.Errorf("invalid color value %s", data)
}

func jsonHasKey(data []byte, key string) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}
