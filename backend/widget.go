package backend

import (
	"github.com/tuilab/loom/layout"
	"github.com/tuilab/loom/theme"
)

// Widget is anything that can draw itself into a region of a frame.
type Widget interface {
	Render(f *Frame, area layout.Rect, th *theme.Theme)
}

// WidgetFunc adapts a function to the Widget interface.
type WidgetFunc func(f *Frame, area layout.Rect, th *theme.Theme)

func (fn WidgetFunc) Render(f *Frame, area layout.Rect, th *theme.Theme) {
	fn(f, area, th)
}

// RenderWidget draws a widget into the given area, clipped to the
// frame. Empty intersections draw nothing.
func (f *Frame) RenderWidget(w Widget, area layout.Rect, th *theme.Theme) {
	sub := f.Sub(area)
	if sub.Area().IsEmpty() {
		return
	}
	w.Render(sub, sub.Area(), th)
}
