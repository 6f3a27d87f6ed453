// Package backend implements the in-memory capture backend: a dense cell
// grid that records every draw, keeps frame history, and renders to
// plain text, ANSI or JSON.
package backend

import (
	"errors"
	"fmt"

	"github.com/tuilab/loom/annotation"
	"github.com/tuilab/loom/cell"
	"github.com/tuilab/loom/layout"
)

// MaxCells bounds the grid size accepted at construction.
const MaxCells = 1 << 20

var (
	// ErrInvalidGeometry is returned for zero-sized or oversized grids.
	ErrInvalidGeometry = errors.New("invalid capture geometry")

	// ErrDimensionMismatch is returned when diffing snapshots of
	// different sizes.
	ErrDimensionMismatch = errors.New("snapshot dimensions differ")
)

// ClearRegion selects which part of the grid Clear operates on.
type ClearRegion uint8

const (
	ClearAll ClearRegion = iota
	ClearAfterCursor
	ClearBeforeCursor
	ClearCurrentLine
	ClearUntilNewLine
)

// Capture is a headless terminal: a width×height cell grid with cursor
// state, a monotonically increasing frame counter, and an optional FIFO
// history of flushed frames.
type Capture struct {
	cells         []cell.Cell
	width         int
	height        int
	cursor        layout.Position
	cursorVisible bool
	frame         uint64
	history       []Snapshot
	historyCap    int
	annotations   *annotation.Registry
}

// New creates a capture grid of the given size.
func New(width, height int) (*Capture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, width, height)
	}
	if width*height > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidGeometry, width, height, MaxCells)
	}
	cells := make([]cell.Cell, width*height)
	for i := range cells {
		cells[i] = cell.New()
	}
	return &Capture{
		cells:         cells,
		width:         width,
		height:        height,
		cursorVisible: true,
	}, nil
}

// WithHistory creates a capture grid that keeps up to capacity flushed
// frames for diffing.
func WithHistory(width, height, capacity int) (*Capture, error) {
	c, err := New(width, height)
	if err != nil {
		return nil, err
	}
	c.historyCap = max(capacity, 0)
	return c, nil
}

func (c *Capture) Width() int  { return c.width }
func (c *Capture) Height() int { return c.height }

// CurrentFrame returns the number of the frame being drawn. It advances
// on every Flush and is never reset.
func (c *Capture) CurrentFrame() uint64 { return c.frame }

func (c *Capture) index(x, y int) int {
	return y*c.width + x
}

func (c *Capture) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Draw writes a cell. Out-of-bounds writes are silently skipped. The
// cell is stamped with the current frame number.
func (c *Capture) Draw(x, y int, cl cell.Cell) {
	if !c.inBounds(x, y) {
		return
	}
	cl.LastModified = c.frame
	c.cells[c.index(x, y)] = cl
}

// Cell returns a copy of the cell at the given position.
func (c *Capture) Cell(x, y int) (cell.Cell, bool) {
	if !c.inBounds(x, y) {
		return cell.Cell{}, false
	}
	return c.cells[c.index(x, y)], true
}

// CellAt returns a pointer into the grid for in-place mutation, or nil
// when out of bounds.
func (c *Capture) CellAt(x, y int) *cell.Cell {
	if !c.inBounds(x, y) {
		return nil
	}
	return &c.cells[c.index(x, y)]
}

// Cells exposes the backing grid in row-major order.
func (c *Capture) Cells() []cell.Cell {
	return c.cells
}

// Clear resets every cell to the empty state.
func (c *Capture) Clear() {
	for i := range c.cells {
		c.cells[i].Reset()
	}
}

// ClearPart resets the cells selected by the region, relative to the
// cursor where applicable.
func (c *Capture) ClearPart(region ClearRegion) {
	var start, end int
	switch region {
	case ClearAfterCursor:
		start, end = c.index(c.cursor.X, c.cursor.Y), len(c.cells)
	case ClearBeforeCursor:
		start, end = 0, c.index(c.cursor.X, c.cursor.Y)
	case ClearCurrentLine:
		start = c.index(0, c.cursor.Y)
		end = start + c.width
	case ClearUntilNewLine:
		start = c.index(c.cursor.X, c.cursor.Y)
		end = c.index(0, c.cursor.Y) + c.width
	default:
		start, end = 0, len(c.cells)
	}
	end = min(end, len(c.cells))
	for i := start; i < end; i++ {
		c.cells[i].Reset()
	}
}

// SetCursor moves the cursor, clamping to the grid edge.
func (c *Capture) SetCursor(x, y int) {
	c.cursor = layout.Position{
		X: min(max(x, 0), c.width-1),
		Y: min(max(y, 0), c.height-1),
	}
}

func (c *Capture) CursorPosition() layout.Position { return c.cursor }
func (c *Capture) CursorVisible() bool             { return c.cursorVisible }
func (c *Capture) HideCursor()                     { c.cursorVisible = false }
func (c *Capture) ShowCursor()                     { c.cursorVisible = true }

// SetAnnotations attaches the semantic region registry included in
// snapshots and JSON output.
func (c *Capture) SetAnnotations(reg *annotation.Registry) {
	c.annotations = reg
}

func (c *Capture) Annotations() *annotation.Registry {
	return c.annotations
}

// Flush completes the current frame: it is appended to history (when
// enabled) and the frame counter advances. Frame numbers are strictly
// increasing and never reindexed by eviction.
func (c *Capture) Flush() {
	if c.historyCap > 0 {
		if len(c.history) >= c.historyCap {
			c.history = c.history[1:]
		}
		c.history = append(c.history, c.Snapshot())
	}
	c.frame++
}

// History returns the retained snapshots, oldest first.
func (c *Capture) History() []Snapshot {
	return c.history
}

// Snapshot copies the full grid and cursor state.
func (c *Capture) Snapshot() Snapshot {
	cells := make([]cell.Cell, len(c.cells))
	copy(cells, c.cells)
	var regions []annotation.Region
	if c.annotations != nil && !c.annotations.IsEmpty() {
		regions = append(regions, c.annotations.Regions()...)
	}
	return Snapshot{
		Frame:       c.frame,
		Width:       c.width,
		Height:      c.height,
		Cursor:      CursorState{Position: c.cursor, Visible: c.cursorVisible},
		Cells:       cells,
		Annotations: regions,
	}
}

// RowContent concatenates the symbols of one row.
func (c *Capture) RowContent(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	return rowString(c.cells[c.index(0, y):c.index(0, y)+c.width])
}

// ContentLines returns every row as a string.
func (c *Capture) ContentLines() []string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		lines[y] = c.RowContent(y)
	}
	return lines
}

// FindText returns the positions where needle starts, scanning by row.
func (c *Capture) FindText(needle string) []layout.Position {
	return findText(c.ContentLines(), needle)
}

// ContainsText reports whether any row contains the needle.
func (c *Capture) ContainsText(needle string) bool {
	return len(c.FindText(needle)) > 0
}

func (c *Capture) String() string {
	return renderPlain(c.ContentLines())
}

// StringTrimmed renders plain text with trailing spaces removed per row.
func (c *Capture) StringTrimmed() string {
	return renderTrimmed(c.ContentLines())
}
