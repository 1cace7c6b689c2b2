package circles

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Advance adds this tick's periodic drift to every velocity accumulator:
// the unit vector (cos(rateX*t), cos(rateY*t)) scaled by dt*speed and
// signed per axis by the circle's direction flags.
func (s *Set) Advance(dt, t, speed float64) {
	for i := range s.circles {
		c := &s.circles[i]
		v := r2.Vec{
			X: math.Cos(c.motion.RateX * t),
			Y: math.Cos(c.motion.RateY * t),
		}
		norm := r2.Norm(v)
		if norm == 0 {
			continue
		}
		v = r2.Scale(dt*speed/norm, v)
		if !c.motion.DirX {
			v.X = -v.X
		}
		if !c.motion.DirY {
			v.Y = -v.Y
		}
		c.vel = r2.Add(c.vel, v)
	}
}

// Integrate moves every circle by its accumulated velocity and clears the
// accumulator. A non-finite velocity is dropped rather than applied.
// It returns the mean distance moved.
func (s *Set) Integrate() float64 {
	if len(s.circles) == 0 {
		return 0
	}
	var total float64
	for i := range s.circles {
		c := &s.circles[i]
		if !finite(c.vel) {
			c.vel = r2.Vec{}
		}
		c.pos = r2.Add(c.pos, c.vel)
		total += r2.Norm(c.vel)
		c.vel = r2.Vec{}
	}
	return total / float64(len(s.circles))
}

// Recenter puts every circle's centre on the middle of the surface.
func (s *Set) Recenter() {
	half := r2.Scale(0.5, s.dims)
	for i := range s.circles {
		r := s.circles[i].radius
		s.circles[i].pos = r2.Sub(half, r2.Vec{X: r, Y: r})
	}
}

func finite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
