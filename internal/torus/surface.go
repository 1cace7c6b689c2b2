package torus

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

type Surface struct {
	W, H float64
}

func NewSurface(dims r2.Vec) Surface { return Surface{W: dims.X, H: dims.Y} }

func (s Surface) Dims() r2.Vec { return r2.Vec{X: s.W, Y: s.H} }

func (s Surface) Center() r2.Vec { return r2.Vec{X: s.W / 2, Y: s.H / 2} }

// Wrap maps p into [0,W)x[0,H).
func (s Surface) Wrap(p r2.Vec) r2.Vec {
	return r2.Vec{X: wrapAxis(p.X, s.W), Y: wrapAxis(p.Y, s.H)}
}

func wrapAxis(v, extent float64) float64 {
	if extent <= 0 {
		return v
	}
	v = math.Mod(v, extent)
	if v < 0 {
		v += extent
	}
	if v >= extent {
		v = 0
	}
	return v
}

// ShortestDelta replaces each component of d with its wrapped
// alternative when that one is shorter.
func (s Surface) ShortestDelta(d r2.Vec) r2.Vec {
	return r2.Vec{X: shortestAxis(d.X, s.W), Y: shortestAxis(d.Y, s.H)}
}

func shortestAxis(d, extent float64) float64 {
	test := d + extent
	if d > 0 {
		test = d - extent
	}
	if math.Abs(test) < math.Abs(d) {
		return test
	}
	return d
}

// Copies returns every top-left position a circle of radius r at pos
// must be drawn at. The first entry is the wrapped primary; a circle
// whose bounding box crosses the right or bottom seam gets a copy on the
// opposite side, and one crossing both also gets the diagonal copy.
func (s Surface) Copies(pos r2.Vec, r float64) []r2.Vec {
	return s.AppendCopies(make([]r2.Vec, 0, 4), pos, r)
}

// AppendCopies is Copies without the allocation.
func (s Surface) AppendCopies(dst []r2.Vec, pos r2.Vec, r float64) []r2.Vec {
	p := s.Wrap(pos)
	dst = append(dst, p)

	dia := 2 * r
	if dia <= 0 {
		return dst
	}

	alt := p
	crossX := p.X > s.W-dia
	crossY := p.Y > s.H-dia
	if crossX {
		alt.X = p.X - s.W
		dst = append(dst, r2.Vec{X: alt.X, Y: p.Y})
	}
	if crossY {
		alt.Y = p.Y - s.H
		dst = append(dst, r2.Vec{X: p.X, Y: alt.Y})
	}
	if crossX && crossY {
		dst = append(dst, alt)
	}
	return dst
}
