package cell

import (
	"github.com/mattn/go-runewidth"
)

// Cell is a single terminal cell: a grapheme cluster plus its styling and
// capture metadata.
type Cell struct {
	// Symbol is the grapheme cluster displayed in this cell.
	Symbol string

	FG   Color
	BG   Color
	Mods Modifiers

	// UnderlineColor overrides FG for the underline when set.
	UnderlineColor *Color

	// LastModified is the frame number of the last write to this cell.
	// It is capture metadata and excluded from equality.
	LastModified uint64

	// Skip marks the continuation cell of a wide grapheme.
	Skip bool
}

// New returns an empty cell: a space with default styling.
func New() Cell {
	return Cell{Symbol: " "}
}

// WithSymbol returns an otherwise empty cell holding the given symbol.
func WithSymbol(symbol string) Cell {
	c := New()
	c.Symbol = symbol
	return c
}

// Styled returns a cell with the given symbol and colors.
func Styled(symbol string, fg, bg Color) Cell {
	return Cell{Symbol: symbol, FG: fg, BG: bg}
}

// Width reports the display width of the symbol: 0, 1 or 2 columns.
func (c Cell) Width() int {
	return min(runewidth.StringWidth(c.Symbol), 2)
}

// IsEmpty reports whether the cell is a space with default styling.
func (c Cell) IsEmpty() bool {
	return c.Symbol == " " && c.FG.IsReset() && c.BG.IsReset() && c.Mods.IsEmpty()
}

// IsDefault reports whether every field holds its zero-frame default,
// which lets JSON output omit the cell entirely.
func (c Cell) IsDefault() bool {
	return c.IsEmpty() && c.UnderlineColor == nil && !c.Skip
}

// Reset restores the cell to the empty state. LastModified is preserved.
func (c *Cell) Reset() {
	c.Symbol = " "
	c.FG = Reset
	c.BG = Reset
	c.Mods = 0
	c.UnderlineColor = nil
	c.Skip = false
}

// Equal compares everything except LastModified, so frame diffs see only
// visible changes.
func (c Cell) Equal(other Cell) bool {
	if c.Symbol != other.Symbol || c.FG != other.FG || c.BG != other.BG ||
		c.Mods != other.Mods || c.Skip != other.Skip {
		return false
	}
	switch {
	case c.UnderlineColor == nil && other.UnderlineColor == nil:
		return true
	case c.UnderlineColor == nil || other.UnderlineColor == nil:
		return false
	default:
		return *c.UnderlineColor == *other.UnderlineColor
	}
}

// SameStyle reports whether two cells render with identical SGR state.
func (c Cell) SameStyle(other Cell) bool {
	return c.FG == other.FG && c.BG == other.BG && c.Mods == other.Mods
}
