// Package theme defines the semantic color sets used by overlays and
// widgets.
package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tuilab/loom/cell"
)

// Nord palette.
var (
	Nord0  = cell.RGB(46, 52, 64)
	Nord1  = cell.RGB(59, 66, 82)
	Nord2  = cell.RGB(67, 76, 94)
	Nord3  = cell.RGB(76, 86, 106)
	Nord4  = cell.RGB(216, 222, 233)
	Nord5  = cell.RGB(229, 233, 240)
	Nord6  = cell.RGB(236, 239, 244)
	Nord7  = cell.RGB(143, 188, 187)
	Nord8  = cell.RGB(136, 192, 208)
	Nord9  = cell.RGB(129, 161, 193)
	Nord10 = cell.RGB(94, 129, 172)
	Nord11 = cell.RGB(191, 97, 106)
	Nord12 = cell.RGB(208, 135, 112)
	Nord13 = cell.RGB(235, 203, 139)
	Nord14 = cell.RGB(163, 190, 140)
	Nord15 = cell.RGB(180, 142, 173)
)

// Theme is the semantic color scheme shared by all components.
type Theme struct {
	Background cell.Color
	Foreground cell.Color
	Border     cell.Color

	Focused     cell.Color
	Selected    cell.Color
	Disabled    cell.Color
	Placeholder cell.Color

	Primary cell.Color
	Success cell.Color
	Warning cell.Color
	Error   cell.Color
	Info    cell.Color

	ProgressFilled cell.Color
	ProgressEmpty  cell.Color
}

// Default returns a theme built from the standard ANSI colors.
func Default() Theme {
	return Theme{
		Background: cell.Reset,
		Foreground: cell.Reset,
		Border:     cell.Reset,

		Focused:     cell.Yellow,
		Selected:    cell.Reset,
		Disabled:    cell.DarkGray,
		Placeholder: cell.DarkGray,

		Primary: cell.Cyan,
		Success: cell.Green,
		Warning: cell.Yellow,
		Error:   cell.Red,
		Info:    cell.Cyan,

		ProgressFilled: cell.Cyan,
		ProgressEmpty:  cell.Black,
	}
}

// Nord returns a theme built on the Nord palette.
func Nord() Theme {
	return Theme{
		Background: Nord0,
		Foreground: Nord6,
		Border:     Nord3,

		Focused:     Nord8,
		Selected:    Nord9,
		Disabled:    Nord3,
		Placeholder: Nord3,

		Primary: Nord10,
		Success: Nord14,
		Warning: Nord13,
		Error:   Nord11,
		Info:    Nord8,

		ProgressFilled: Nord8,
		ProgressEmpty:  Nord1,
	}
}

func (t Theme) FocusedStyle() cell.Style {
	return cell.NewStyle().Foreground(t.Focused)
}

func (t Theme) FocusedBoldStyle() cell.Style {
	return cell.NewStyle().Foreground(t.Focused).Bold()
}

// SelectedStyle highlights a selected item; focused selections also take
// the focus color.
func (t Theme) SelectedStyle(focused bool) cell.Style {
	if focused {
		return cell.NewStyle().Foreground(t.Focused).Bold()
	}
	return cell.NewStyle().Bold()
}

// SelectedHighlightStyle renders a selected row with a filled background.
func (t Theme) SelectedHighlightStyle(focused bool) cell.Style {
	if focused {
		return cell.NewStyle().Background(t.Selected).Foreground(t.Foreground).Bold()
	}
	return cell.NewStyle().Background(t.Disabled).Foreground(t.Foreground)
}

func (t Theme) DisabledStyle() cell.Style {
	return cell.NewStyle().Foreground(t.Disabled)
}

func (t Theme) PlaceholderStyle() cell.Style {
	return cell.NewStyle().Foreground(t.Placeholder)
}

func (t Theme) ErrorStyle() cell.Style {
	return cell.NewStyle().Foreground(t.Error).Bold()
}

func (t Theme) SuccessStyle() cell.Style {
	return cell.NewStyle().Foreground(t.Success)
}

func (t Theme) WarningStyle() cell.Style {
	return cell.NewStyle().Foreground(t.Warning)
}

func (t Theme) InfoStyle() cell.Style {
	return cell.NewStyle().Foreground(t.Info)
}

// Lighten derives a brighter variant of a 24-bit color. Named, indexed
// and reset colors are returned unchanged.
func Lighten(c cell.Color, amount float64) cell.Color {
	return adjust(c, amount)
}

// Darken derives a dimmer variant of a 24-bit color. Named, indexed and
// reset colors are returned unchanged.
func Darken(c cell.Color, amount float64) cell.Color {
	return adjust(c, -amount)
}

func adjust(c cell.Color, amount float64) cell.Color {
	r, g, b, ok := c.RGBValues()
	if !ok {
		return c
	}
	col, err := colorful.Hex(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	if err != nil {
		return c
	}
	h, s, l := col.Hsl()
	l = min(max(l+amount, 0), 1)
	nr, ng, nb := colorful.Hsl(h, s, l).Clamped().RGB255()
	return cell.RGB(nr, ng, nb)
}
