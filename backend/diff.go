package backend

import (
	"fmt"
	"strings"

	"github.com/tuilab/loom/cell"
	"github.com/tuilab/loom/layout"
)

// CellChange records one cell that differs between two frames.
type CellChange struct {
	Position layout.Position `json:"position"`
	Old      cell.Cell       `json:"old"`
	New      cell.Cell       `json:"new"`
}

// FrameDiff is the visible difference between a snapshot and the current
// grid. Cell comparison ignores the LastModified stamp.
type FrameDiff struct {
	FromFrame   uint64       `json:"from_frame"`
	ToFrame     uint64       `json:"to_frame"`
	Changed     []CellChange `json:"changed_cells"`
	SizeChanged bool         `json:"size_changed"`
	CursorMoved bool         `json:"cursor_moved"`
}

func (d FrameDiff) HasChanges() bool {
	return len(d.Changed) > 0 || d.SizeChanged || d.CursorMoved
}

func (d FrameDiff) ChangedCount() int {
	return len(d.Changed)
}

func (d FrameDiff) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "frame %d -> %d:\n", d.FromFrame, d.ToFrame)
	if d.SizeChanged {
		b.WriteString("  [size changed]\n")
	}
	if d.CursorMoved {
		b.WriteString("  [cursor moved]\n")
	}
	for _, ch := range d.Changed {
		fmt.Fprintf(&b, "  (%d,%d) %q -> %q\n",
			ch.Position.X, ch.Position.Y, ch.Old.Symbol, ch.New.Symbol)
	}
	return b.String()
}

// DiffFrom compares the current grid against an earlier snapshot.
func (c *Capture) DiffFrom(previous *Snapshot) (FrameDiff, error) {
	if previous.Width != c.width || previous.Height != c.height {
		return FrameDiff{}, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, previous.Width, previous.Height, c.width, c.height)
	}

	diff := FrameDiff{
		FromFrame:   previous.Frame,
		ToFrame:     c.frame,
		CursorMoved: c.cursor != previous.Cursor.Position,
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cur := c.cells[c.index(x, y)]
			prev := previous.Cells[y*previous.Width+x]
			if !cur.Equal(prev) {
				diff.Changed = append(diff.Changed, CellChange{
					Position: layout.Pos(x, y),
					Old:      prev,
					New:      cur,
				})
			}
		}
	}
	return diff, nil
}

// DiffFromPrevious diffs against the most recent history entry. ok is
// false when history is empty.
func (c *Capture) DiffFromPrevious() (FrameDiff, bool) {
	if len(c.history) == 0 {
		return FrameDiff{}, false
	}
	diff, err := c.DiffFrom(&c.history[len(c.history)-1])
	if err != nil {
		return FrameDiff{}, false
	}
	return diff, true
}
