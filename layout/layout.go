// Package layout provides the geometry primitives shared by the backend,
// overlays and widgets.
package layout

// Position is a cell coordinate, column-major from the top-left corner.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Rect is a rectangular region of the terminal grid.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Right() int {
	return r.X + r.Width
}

func (r Rect) Bottom() int {
	return r.Y + r.Height
}

func (r Rect) Area() int {
	return r.Width * r.Height
}

func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersection returns the overlapping region of two rects. The zero Rect
// is returned when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Inner shrinks the rect by the given margin on every side.
func (r Rect) Inner(margin int) Rect {
	if r.Width < 2*margin || r.Height < 2*margin {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
}

// Centered returns a width×height rect centered inside r, clamped to r.
func (r Rect) Centered(width, height int) Rect {
	width = min(width, r.Width)
	height = min(height, r.Height)
	return Rect{
		X:      r.X + (r.Width-width)/2,
		Y:      r.Y + (r.Height-height)/2,
		Width:  width,
		Height: height,
	}
}
