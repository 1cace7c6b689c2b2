package torus

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

type Mode int

const (
	Repel Mode = iota
	Attract
)

func (m Mode) String() string {
	if m == Attract {
		return "attract"
	}
	return "repel"
}

// minDist2 is the squared distance below which the direction to the
// focus is undefined and the circle feels nothing.
const minDist2 = 1e-9

// Bodies is what the field needs from a circle collection.
type Bodies interface {
	Len() int
	Radius(i int) float64
	Position(i int) r2.Vec
	MaxRadius() float64
	AddVelocity(i int, v r2.Vec)
}

// Field is one tick's mouse force. Strength is the push or pull constant;
// PullCap bounds attraction to PullCap*dt per tick.
type Field struct {
	Surface  Surface
	Focus    r2.Vec
	Mode     Mode
	Strength float64
	PullCap  float64
}

// Apply adds the field's contribution to every body's velocity.
func (f Field) Apply(b Bodies, dt, speed float64) {
	maxR := b.MaxRadius()
	for i := 0; i < b.Len(); i++ {
		v := f.Velocity(b.Position(i), b.Radius(i), maxR, dt, speed)
		if v != (r2.Vec{}) {
			b.AddVelocity(i, v)
		}
	}
}

// Velocity is the change for a single circle. The force acts from the
// circle's centre, uses the shortest wrapped path to the focus, and
// scales with speed*dt*Strength/(mass*dist^2) where mass is (r/maxR)^2.
func (f Field) Velocity(pos r2.Vec, r, maxR, dt, speed float64) r2.Vec {
	if r <= 0 || maxR <= 0 {
		return r2.Vec{}
	}
	centre := r2.Add(f.Surface.Wrap(pos), r2.Vec{X: r, Y: r})
	d := f.Surface.ShortestDelta(r2.Sub(centre, f.Focus))

	dist2 := r2.Norm2(d)
	if dist2 < minDist2 {
		return r2.Vec{}
	}
	dir := r2.Scale(1/math.Sqrt(dist2), d)

	rel := r / maxR
	mass := rel * rel
	mag := speed * dt * f.Strength / (mass * dist2)

	if f.Mode == Attract {
		mag = math.Min(mag, f.PullCap*dt)
		dir = r2.Scale(-1, dir)
	}
	if math.IsNaN(mag) || math.IsInf(mag, 0) {
		return r2.Vec{}
	}
	return r2.Scale(mag, dir)
}
