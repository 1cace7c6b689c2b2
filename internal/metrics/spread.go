package metrics

import (
	"github.com/san-kum/circlefun/internal/engine"
	"github.com/san-kum/circlefun/internal/torus"
	"gonum.org/v1/gonum/spatial/r2"
)

// Spread is the mean wrapped distance of circle centres from a focus,
// taken on the last observed frame. An attractor shrinks it and a
// repeller grows it.
type Spread struct {
	surface torus.Surface
	focus   r2.Vec
	value   float64
}

func NewSpread(s torus.Surface, focus r2.Vec) *Spread {
	return &Spread{surface: s, focus: focus}
}

func (s *Spread) Name() string { return "spread" }

// Observe only counts the primary drawable of each circle; wrap copies
// share its index and follow it in the frame.
func (s *Spread) Observe(f engine.Frame) {
	var sum float64
	n := 0
	last := -1
	for _, d := range f.Circles {
		if d.Index == last {
			continue
		}
		last = d.Index
		c := s.surface.Wrap(d.Center())
		sum += r2.Norm(s.surface.ShortestDelta(r2.Sub(c, s.focus)))
		n++
	}
	s.value = 0
	if n > 0 {
		s.value = sum / float64(n)
	}
}

func (s *Spread) Value() float64 { return s.value }

func (s *Spread) Reset() { s.value = 0 }
