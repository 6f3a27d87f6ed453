package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuilab/loom/cell"
)

func TestDefaultTheme(t *testing.T) {
	th := Default()
	assert.Equal(t, cell.Yellow, th.Focused)
	assert.Equal(t, cell.DarkGray, th.Disabled)
	assert.Equal(t, cell.Red, th.Error)
	assert.True(t, th.Background.IsReset())
}

func TestNordTheme(t *testing.T) {
	th := Nord()
	assert.Equal(t, Nord8, th.Focused)
	assert.Equal(t, Nord11, th.Error)
	assert.Equal(t, Nord14, th.Success)
	assert.Equal(t, Nord0, th.Background)
}

func TestStyleHelpers(t *testing.T) {
	th := Nord()

	s := th.FocusedBoldStyle()
	assert.Equal(t, th.Focused, s.FG)
	assert.True(t, s.Mods.Contains(cell.Bold))

	sel := th.SelectedHighlightStyle(true)
	assert.Equal(t, th.Selected, sel.BG)
	assert.True(t, sel.Mods.Contains(cell.Bold))

	unfocused := th.SelectedHighlightStyle(false)
	assert.Equal(t, th.Disabled, unfocused.BG)
	assert.False(t, unfocused.Mods.Contains(cell.Bold))
}

func TestLightenDarken(t *testing.T) {
	base := cell.RGB(100, 100, 100)

	lighter := Lighten(base, 0.2)
	lr, _, _, ok := lighter.RGBValues()
	assert.True(t, ok)
	assert.Greater(t, lr, uint8(100))

	darker := Darken(base, 0.2)
	dr, _, _, ok := darker.RGBValues()
	assert.True(t, ok)
	assert.Less(t, dr, uint8(100))

	// Non-RGB colors pass through untouched.
	assert.Equal(t, cell.Blue, Lighten(cell.Blue, 0.5))
	assert.Equal(t, cell.Reset, Darken(cell.Reset, 0.5))
}
