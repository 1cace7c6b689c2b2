package palette

// Set holds one ramp per table, all built for the same circle count so
// switching tables keeps every circle's rank colour in step.
type Set struct {
	names    []string
	palettes []Palette
}

func NewSet(tables []Table, n int) *Set {
	s := &Set{
		names:    make([]string, len(tables)),
		palettes: make([]Palette, len(tables)),
	}
	for i, t := range tables {
		s.names[i] = t.Name
		s.palettes[i] = Build(t.Anchors, n)
	}
	return s
}

func (s *Set) Len() int { return len(s.palettes) }

func (s *Set) Name(i int) string { return s.names[i] }

func (s *Set) Palette(i int) Palette { return s.palettes[i] }

// Index finds a table by name.
func (s *Set) Index(name string) (int, bool) {
	for i, n := range s.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
