package cell

import (
	"encoding/json"
	"strings"

	"github.com/muesli/termenv"
)

// Modifiers is a set of SGR text attributes.
type Modifiers uint16

const (
	Bold Modifiers = 1 << iota
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reversed
	Hidden
	CrossedOut
)

// In SGR parameter order.
var modifierCodes = []struct {
	flag Modifiers
	code string
}{
	{Bold, "1"},
	{Dim, "2"},
	{Italic, "3"},
	{Underlined, "4"},
	{SlowBlink, "5"},
	{RapidBlink, "6"},
	{Reversed, "7"},
	{Hidden, "8"},
	{CrossedOut, "9"},
}

func (m Modifiers) Contains(other Modifiers) bool {
	return m&other == other
}

func (m Modifiers) Union(other Modifiers) Modifiers {
	return m | other
}

func (m Modifiers) Difference(other Modifiers) Modifiers {
	return m &^ other
}

func (m Modifiers) IsEmpty() bool {
	return m == 0
}

// Sequence returns the combined SGR escape for the set, or the empty
// string when no modifier is set.
func (m Modifiers) Sequence() string {
	if m == 0 {
		return ""
	}
	codes := make([]string, 0, 4)
	for _, mc := range modifierCodes {
		if m&mc.flag != 0 {
			codes = append(codes, mc.code)
		}
	}
	return termenv.CSI + strings.Join(codes, ";") + "m"
}

type modifiersJSON struct {
	Bold       bool `json:"bold,omitempty"`
	Dim        bool `json:"dim,omitempty"`
	Italic     bool `json:"italic,omitempty"`
	Underlined bool `json:"underlined,omitempty"`
	SlowBlink  bool `json:"slow_blink,omitempty"`
	RapidBlink bool `json:"rapid_blink,omitempty"`
	Reversed   bool `json:"reversed,omitempty"`
	Hidden     bool `json:"hidden,omitempty"`
	CrossedOut bool `json:"crossed_out,omitempty"`
}

func (m Modifiers) MarshalJSON() ([]byte, error) {
	return json.Marshal(modifiersJSON{
		Bold:       m&Bold != 0,
		Dim:        m&Dim != 0,
		Italic:     m&Italic != 0,
		Underlined: m&Underlined != 0,
		SlowBlink:  m&SlowBlink != 0,
		RapidBlink: m&RapidBlink != 0,
		Reversed:   m&Reversed != 0,
		Hidden:     m&Hidden != 0,
		CrossedOut: m&CrossedOut != 0,
	})
}

func (m *Modifiers) UnmarshalJSON(data []byte) error {
	var v modifiersJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	var out Modifiers
	set := func(flag Modifiers, on bool) {
		if on {
			out |= flag
		}
	}
	set(Bold, v.Bold)
	set(Dim, v.Dim)
	set(Italic, v.Italic)
	set(Underlined, v.Underlined)
	set(SlowBlink, v.SlowBlink)
	set(RapidBlink, v.RapidBlink)
	set(Reversed, v.Reversed)
	set(Hidden, v.Hidden)
	set(CrossedOut, v.CrossedOut)
	*m = out
	return nil
}
