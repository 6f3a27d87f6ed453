package backend

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/tuilab/loom/annotation"
	"github.com/tuilab/loom/cell"
	"github.com/tuilab/loom/layout"
)

// Frame is the drawing surface handed to views and overlays. It writes
// through to the capture grid, clipped to its area.
type Frame struct {
	capture *Capture
	area    layout.Rect
}

// Frame returns a drawing surface covering the whole grid.
func (c *Capture) Frame() *Frame {
	return &Frame{
		capture: c,
		area:    layout.NewRect(0, 0, c.width, c.height),
	}
}

// Sub returns a frame clipped to the given area. Coordinates stay
// absolute; writes outside the area are dropped.
func (f *Frame) Sub(area layout.Rect) *Frame {
	return &Frame{capture: f.capture, area: f.area.Intersection(area)}
}

func (f *Frame) Area() layout.Rect {
	return f.area
}

// SetCell writes one cell at an absolute position, clipped to the frame
// area.
func (f *Frame) SetCell(x, y int, c cell.Cell) {
	if !f.area.Contains(layout.Pos(x, y)) {
		return
	}
	f.capture.Draw(x, y, c)
}

// SetString writes a string starting at (x, y), splitting it into
// grapheme clusters. Wide clusters occupy two cells; the continuation
// cell is marked Skip. Returns the number of columns written.
func (f *Frame) SetString(x, y int, s string, style cell.Style) int {
	if y < f.area.Y || y >= f.area.Bottom() {
		return 0
	}
	col := x
	right := f.area.Right()
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if w <= 0 {
			// Zero-width clusters attach to the previous cell.
			if prev := f.capture.CellAt(col-1, y); prev != nil && col-1 >= f.area.X {
				prev.Symbol += cluster
			}
			continue
		}
		if col+w > right {
			break
		}
		c := cell.WithSymbol(cluster)
		style.Apply(&c)
		f.SetCell(col, y, c)
		if w == 2 {
			cont := cell.New()
			style.Apply(&cont)
			cont.Skip = true
			f.SetCell(col+1, y, cont)
		}
		col += w
	}
	return col - x
}

// Fill writes the same cell across a region.
func (f *Frame) Fill(area layout.Rect, c cell.Cell) {
	clipped := f.area.Intersection(area)
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			f.capture.Draw(x, y, c)
		}
	}
}

// FillStyle applies a style to every cell in a region without touching
// symbols.
func (f *Frame) FillStyle(area layout.Rect, style cell.Style) {
	clipped := f.area.Intersection(area)
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			if c := f.capture.CellAt(x, y); c != nil {
				style.Apply(c)
				c.LastModified = f.capture.CurrentFrame()
			}
		}
	}
}

func (f *Frame) SetCursor(x, y int) {
	f.capture.SetCursor(x, y)
}

func (f *Frame) ShowCursor() {
	f.capture.ShowCursor()
}

func (f *Frame) HideCursor() {
	f.capture.HideCursor()
}

// Annotations exposes the capture's annotation registry, creating it on
// first use.
func (f *Frame) Annotations() *annotation.Registry {
	if f.capture.annotations == nil {
		f.capture.annotations = annotation.NewRegistry()
	}
	return f.capture.annotations
}
