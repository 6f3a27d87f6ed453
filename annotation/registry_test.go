package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuilab/loom/layout"
)

func TestWidgetTypeClassification(t *testing.T) {
	assert.True(t, Button.IsInteractive())
	assert.True(t, Tree.IsInteractive())
	assert.False(t, Label.IsInteractive())
	assert.False(t, Container.IsInteractive())

	assert.True(t, Dialog.IsContainer())
	assert.True(t, Scroll.IsContainer())
	assert.False(t, Button.IsContainer())
}

func TestRegistryNesting(t *testing.T) {
	r := NewRegistry()
	dialog := r.Open(layout.NewRect(10, 5, 40, 10), New(Dialog).WithLabel("Confirm"))
	ok := r.Register(layout.NewRect(12, 12, 8, 1), New(Button).WithID("ok"))
	r.Close()
	root := r.Register(layout.NewRect(0, 0, 80, 1), New(StatusBar))

	require.Equal(t, 3, r.Len())

	okRegion, found := r.Get(ok)
	require.True(t, found)
	assert.Equal(t, dialog, okRegion.Parent)

	rootRegion, found := r.Get(root)
	require.True(t, found)
	assert.Equal(t, -1, rootRegion.Parent)

	children := r.ChildrenOf(dialog)
	require.Len(t, children, 1)
	assert.Equal(t, "ok", children[0].Annotation.ID)

	assert.Len(t, r.Roots(), 2)
}

func TestRegistryQueries(t *testing.T) {
	r := NewRegistry()
	r.Register(layout.NewRect(0, 0, 10, 1), New(Input).WithID("name").WithFocus())
	r.Register(layout.NewRect(0, 2, 10, 1), New(Button).WithID("submit"))
	r.Register(layout.NewRect(0, 4, 10, 1), New(Label).WithLabel("hint"))

	region, found := r.GetByID("submit")
	require.True(t, found)
	assert.Equal(t, Button, region.Annotation.Type)

	assert.Len(t, r.Interactive(), 2)
	assert.Len(t, r.FindByType(Label), 1)

	focused, found := r.Focused()
	require.True(t, found)
	assert.Equal(t, "name", focused.Annotation.ID)
}

func TestRegistryRegionAt(t *testing.T) {
	r := NewRegistry()
	r.Register(layout.NewRect(0, 0, 20, 10), New(Container).WithID("outer"))
	r.Register(layout.NewRect(5, 5, 5, 2), New(Button).WithID("inner"))

	inner, found := r.RegionAt(layout.Pos(6, 5))
	require.True(t, found)
	assert.Equal(t, "inner", inner.Annotation.ID)

	both := r.RegionsAt(layout.Pos(6, 5))
	require.Len(t, both, 2)
	assert.Equal(t, "outer", both[0].Annotation.ID)

	_, found = r.RegionAt(layout.Pos(50, 50))
	assert.False(t, found)
}

func TestRegistryFormatTree(t *testing.T) {
	r := NewRegistry()
	r.Open(layout.NewRect(0, 0, 40, 10), New(Dialog).WithLabel("Save"))
	r.Register(layout.NewRect(2, 8, 6, 1), New(Button).WithID("yes"))
	r.Close()

	tree := r.FormatTree()
	assert.Contains(t, tree, `dialog "Save"`)
	assert.Contains(t, tree, "  button #yes")
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	r.Open(layout.NewRect(0, 0, 10, 10), New(Container))
	r.Clear()
	assert.True(t, r.IsEmpty())

	// After clear the open stack is gone too.
	r.Register(layout.NewRect(0, 0, 1, 1), New(Label))
	region, _ := r.Get(0)
	assert.Equal(t, -1, region.Parent)
}
