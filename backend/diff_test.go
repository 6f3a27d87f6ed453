package backend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuilab/loom/cell"
	"github.com/tuilab/loom/layout"
)

func TestDiffFromReportsChangedCells(t *testing.T) {
	c, err := New(10, 4)
	require.NoError(t, err)

	snap := c.Snapshot()
	c.Draw(1, 1, cell.WithSymbol("a"))
	c.Draw(2, 1, cell.WithSymbol("b"))
	c.Flush()

	diff, err := c.DiffFrom(&snap)
	require.NoError(t, err)
	assert.True(t, diff.HasChanges())
	require.Equal(t, 2, diff.ChangedCount())
	assert.Equal(t, layout.Pos(1, 1), diff.Changed[0].Position)
	assert.Equal(t, " ", diff.Changed[0].Old.Symbol)
	assert.Equal(t, "a", diff.Changed[0].New.Symbol)
	assert.Equal(t, uint64(0), diff.FromFrame)
	assert.Equal(t, uint64(1), diff.ToFrame)
}

func TestDiffIgnoresLastModified(t *testing.T) {
	c, err := New(4, 2)
	require.NoError(t, err)
	snap := c.Snapshot()

	// Rewriting identical content on a later frame changes only the
	// modification stamp, which must not show up as a diff.
	c.Flush()
	c.Draw(0, 0, cell.New())

	diff, err := c.DiffFrom(&snap)
	require.NoError(t, err)
	assert.Zero(t, diff.ChangedCount())
	assert.False(t, diff.HasChanges())
}

func TestDiffDimensionMismatch(t *testing.T) {
	a, err := New(10, 4)
	require.NoError(t, err)
	b, err := New(8, 4)
	require.NoError(t, err)

	snap := b.Snapshot()
	_, err = a.DiffFrom(&snap)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestDiffCursorMoved(t *testing.T) {
	c, err := New(10, 4)
	require.NoError(t, err)
	snap := c.Snapshot()
	c.SetCursor(3, 2)

	diff, err := c.DiffFrom(&snap)
	require.NoError(t, err)
	assert.True(t, diff.CursorMoved)
	assert.Zero(t, diff.ChangedCount())
}

func TestDiffFromPrevious(t *testing.T) {
	c, err := WithHistory(10, 4, 5)
	require.NoError(t, err)

	_, ok := c.DiffFromPrevious()
	assert.False(t, ok)

	c.Draw(0, 0, cell.WithSymbol("x"))
	c.Flush()
	c.Draw(1, 0, cell.WithSymbol("y"))

	diff, ok := c.DiffFromPrevious()
	require.True(t, ok)
	assert.Equal(t, 1, diff.ChangedCount())
	assert.Equal(t, layout.Pos(1, 0), diff.Changed[0].Position)
}

// Redrawing a full column yields one change per row.
func TestColumnRedrawDiff(t *testing.T) {
	c, err := New(80, 24)
	require.NoError(t, err)

	snap := c.Snapshot()
	for y := 0; y < 24; y++ {
		c.Draw(40, y, cell.Styled("|", cell.Blue, cell.Reset))
	}

	diff, err := c.DiffFrom(&snap)
	require.NoError(t, err)
	require.Equal(t, 24, diff.ChangedCount())
	for i, change := range diff.Changed {
		assert.Equal(t, layout.Pos(40, i), change.Position)
	}
}

func TestDiffString(t *testing.T) {
	c, err := New(4, 2)
	require.NoError(t, err)
	snap := c.Snapshot()
	c.Draw(0, 0, cell.WithSymbol("z"))
	c.SetCursor(1, 1)

	diff, err := c.DiffFrom(&snap)
	require.NoError(t, err)

	out := diff.String()
	assert.Contains(t, out, fmt.Sprintf("frame %d -> %d", snap.Frame, c.CurrentFrame()))
	assert.Contains(t, out, "[cursor moved]")
	assert.Contains(t, out, `(0,0) " " -> "z"`)
}
