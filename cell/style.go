package cell

// Style bundles the attributes applied when writing cells.
type Style struct {
	FG   Color
	BG   Color
	Mods Modifiers
}

func NewStyle() Style {
	return Style{}
}

func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

func (s Style) Bold() Style {
	s.Mods |= Bold
	return s
}

func (s Style) Italic() Style {
	s.Mods |= Italic
	return s
}

func (s Style) Underlined() Style {
	s.Mods |= Underlined
	return s
}

func (s Style) Reversed() Style {
	s.Mods |= Reversed
	return s
}

func (s Style) With(mods Modifiers) Style {
	s.Mods |= mods
	return s
}

// Apply overlays the style onto a cell. Reset colors leave the existing
// cell colors untouched; modifiers are unioned.
func (s Style) Apply(c *Cell) {
	if !s.FG.IsReset() {
		c.FG = s.FG
	}
	if !s.BG.IsReset() {
		c.BG = s.BG
	}
	c.Mods = c.Mods.Union(s.Mods)
}
