package annotation

import (
	"fmt"
	"strings"

	"github.com/tuilab/loom/layout"
)

// Region is an annotated rectangular area of the frame. Parent is the
// index of the enclosing region, or -1 for roots.
type Region struct {
	Area       layout.Rect `json:"area"`
	Annotation Annotation  `json:"annotation"`
	Parent     int         `json:"parent"`
}

// Registry collects the annotated regions of a single frame. Nesting is
// expressed with Open/Close pairs around child registrations.
type Registry struct {
	regions []Region
	stack   []int
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Clear() {
	r.regions = r.regions[:0]
	r.stack = r.stack[:0]
}

func (r *Registry) Len() int {
	return len(r.regions)
}

func (r *Registry) IsEmpty() bool {
	return len(r.regions) == 0
}

// Register records an annotated region as a child of the currently open
// region and returns its index.
func (r *Registry) Register(area layout.Rect, a Annotation) int {
	parent := -1
	if len(r.stack) > 0 {
		parent = r.stack[len(r.stack)-1]
	}
	r.regions = append(r.regions, Region{Area: area, Annotation: a, Parent: parent})
	return len(r.regions) - 1
}

// Open registers a region and makes it the parent of subsequent
// registrations until the matching Close.
func (r *Registry) Open(area layout.Rect, a Annotation) int {
	idx := r.Register(area, a)
	r.stack = append(r.stack, idx)
	return idx
}

// Close ends the innermost open region. Closing with nothing open is a
// no-op.
func (r *Registry) Close() {
	if len(r.stack) > 0 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// Regions returns all registered regions in registration order.
func (r *Registry) Regions() []Region {
	return r.regions
}

func (r *Registry) Get(index int) (Region, bool) {
	if index < 0 || index >= len(r.regions) {
		return Region{}, false
	}
	return r.regions[index], true
}

// RegionAt returns the innermost (most recently registered) region
// containing the position.
func (r *Registry) RegionAt(p layout.Position) (Region, bool) {
	for i := len(r.regions) - 1; i >= 0; i-- {
		if r.regions[i].Area.Contains(p) {
			return r.regions[i], true
		}
	}
	return Region{}, false
}

// RegionsAt returns every region containing the position, outermost
// first.
func (r *Registry) RegionsAt(p layout.Position) []Region {
	var out []Region
	for _, reg := range r.regions {
		if reg.Area.Contains(p) {
			out = append(out, reg)
		}
	}
	return out
}

// FindByID returns all regions whose annotation carries the given id.
func (r *Registry) FindByID(id string) []Region {
	var out []Region
	for _, reg := range r.regions {
		if reg.Annotation.ID == id {
			out = append(out, reg)
		}
	}
	return out
}

// GetByID returns the first region with the given id.
func (r *Registry) GetByID(id string) (Region, bool) {
	for _, reg := range r.regions {
		if reg.Annotation.ID == id {
			return reg, true
		}
	}
	return Region{}, false
}

// FindByType returns all regions of the given widget type.
func (r *Registry) FindByType(t WidgetType) []Region {
	var out []Region
	for _, reg := range r.regions {
		if reg.Annotation.Type == t {
			out = append(out, reg)
		}
	}
	return out
}

// Interactive returns every region whose widget type accepts input.
func (r *Registry) Interactive() []Region {
	var out []Region
	for _, reg := range r.regions {
		if reg.Annotation.Type.IsInteractive() {
			out = append(out, reg)
		}
	}
	return out
}

// Focused returns the region marked focused, if any.
func (r *Registry) Focused() (Region, bool) {
	for _, reg := range r.regions {
		if reg.Annotation.Focused {
			return reg, true
		}
	}
	return Region{}, false
}

// Roots returns the regions without a parent.
func (r *Registry) Roots() []Region {
	var out []Region
	for _, reg := range r.regions {
		if reg.Parent == -1 {
			out = append(out, reg)
		}
	}
	return out
}

// ChildrenOf returns the direct children of the region at index.
func (r *Registry) ChildrenOf(index int) []Region {
	var out []Region
	for _, reg := range r.regions {
		if reg.Parent == index {
			out = append(out, reg)
		}
	}
	return out
}

// FormatTree renders the region hierarchy as an indented listing.
func (r *Registry) FormatTree() string {
	var b strings.Builder
	var walk func(index, depth int)
	walk = func(index, depth int) {
		reg := r.regions[index]
		fmt.Fprintf(&b, "%s%s", strings.Repeat("  ", depth), reg.Annotation.Type)
		if reg.Annotation.ID != "" {
			fmt.Fprintf(&b, " #%s", reg.Annotation.ID)
		}
		if reg.Annotation.Label != "" {
			fmt.Fprintf(&b, " %q", reg.Annotation.Label)
		}
		fmt.Fprintf(&b, " [%d,%d %dx%d]\n",
			reg.Area.X, reg.Area.Y, reg.Area.Width, reg.Area.Height)
		for i, child := range r.regions {
			if child.Parent == index {
				walk(i, depth+1)
			}
		}
	}
	for i, reg := range r.regions {
		if reg.Parent == -1 {
			walk(i, 0)
		}
	}
	return b.String()
}
