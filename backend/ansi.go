package backend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tuilab/loom/cell"
	"github.com/tuilab/loom/layout"
)

const sgrReset = "\x1b[0m"

// cursorSuffix restores the cursor after the grid content: a 1-based
// CUP move to its position, then the DECTCEM show/hide sequence.
func cursorSuffix(pos layout.Position, visible bool) string {
	seq := fmt.Sprintf("\x1b[%d;%dH", pos.Y+1, pos.X+1)
	if visible {
		return seq + "\x1b[?25h"
	}
	return seq + "\x1b[?25l"
}

// renderANSI produces styled terminal output. Styling is run-length
// encoded: the SGR state is reset and reapplied only when a cell's style
// differs from its left neighbour, and each styled row ends with a reset.
func renderANSI(width, height int, at func(x, y int) cell.Cell) string {
	var b strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		last := cell.New()
		for x := 0; x < width; x++ {
			c := at(x, y)
			if !c.SameStyle(last) {
				b.WriteString(sgrReset)
				if !c.Mods.IsEmpty() {
					b.WriteString(c.Mods.Sequence())
				}
				if !c.FG.IsReset() {
					b.WriteString(c.FG.ForegroundSequence())
				}
				if !c.BG.IsReset() {
					b.WriteString(c.BG.BackgroundSequence())
				}
				last = c
			}
			b.WriteString(c.Symbol)
		}
		if !last.FG.IsReset() || !last.BG.IsReset() || !last.Mods.IsEmpty() {
			b.WriteString(sgrReset)
		}
	}
	return b.String()
}

// ANSI renders the grid with SGR styling, followed by the cursor
// position and visibility.
func (c *Capture) ANSI() string {
	return renderANSI(c.width, c.height, func(x, y int) cell.Cell {
		return c.cells[c.index(x, y)]
	}) + cursorSuffix(c.cursor, c.cursorVisible)
}

// ANSIWithLegend appends a listing of the colors in use, as a debugging
// aid when eyeballing captured output.
func (c *Capture) ANSIWithLegend() string {
	out := c.ANSI()

	seen := map[string]struct{}{}
	for _, cl := range c.cells {
		if !cl.FG.IsReset() {
			seen["FG: "+cl.FG.String()] = struct{}{}
		}
		if !cl.BG.IsReset() {
			seen["BG: "+cl.BG.String()] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return out
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(out)
	b.WriteString("\n\n--- Colors Used ---\n")
	for _, name := range names {
		fmt.Fprintf(&b, "%s\n", name)
	}
	return b.String()
}
