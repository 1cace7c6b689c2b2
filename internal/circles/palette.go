package circles

// PaletteIndex is the active table.
func (s *Set) PaletteIndex() int { return s.active }

func (s *Set) PaletteName() string {
	if s.palettes.Len() == 0 {
		return ""
	}
	return s.palettes.Name(s.active)
}

func (s *Set) PaletteCount() int { return s.palettes.Len() }

// SetPalette selects table i (wrapped into range) and recolours.
func (s *Set) SetPalette(i int) {
	s.active = wrapIndex(i, s.palettes.Len())
	s.updateColors()
}

// CyclePalette advances to the next table, wrapping after the last.
func (s *Set) CyclePalette() {
	s.SetPalette(s.active + 1)
}

func (s *Set) updateColors() {
	if s.palettes.Len() == 0 {
		return
	}
	p := s.palettes.Palette(s.active)
	for i := range s.circles {
		s.circles[i].color = p[i]
	}
}
