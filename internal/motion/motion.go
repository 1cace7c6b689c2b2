// Package motion generates the per-circle oscillation parameters that
// drive periodic drift, plus the smoothstep curve used to ease it.
package motion

import "math/rand"

const (
	// Denom is the resolution of a period draw.
	Denom = 1000
	// DefaultMaxTimeSecs scales a draw of Denom to a period in seconds.
	DefaultMaxTimeSecs = 30.0
)

// Params are fixed at creation. RateX and RateY are reciprocal periods;
// DirX and DirY pick the sign of each axis' contribution.
type Params struct {
	RateX, RateY float64
	DirX, DirY   bool
}

// Generate draws n parameter sets from rng. Each axis takes a draw d in
// [Denom/50, Denom+Denom/50), giving a period of maxTimeSecs*d/Denom;
// an odd draw means the axis moves in the positive direction.
func Generate(rng *rand.Rand, n int, maxTimeSecs float64) []Params {
	if n <= 0 {
		return nil
	}
	out := make([]Params, n)
	for i := range out {
		dx := draw(rng)
		dy := draw(rng)

		periodX := maxTimeSecs * float64(dx) / Denom
		periodY := maxTimeSecs * float64(dy) / Denom

		out[i] = Params{
			RateX: 1 / periodX,
			RateY: 1 / periodY,
			DirX:  dx%2 == 1,
			DirY:  dy%2 == 1,
		}
	}
	return out
}

func draw(rng *rand.Rand) int {
	return rng.Intn(Denom) + Denom/50
}

// RateBounds returns the slowest and fastest rate Generate can produce.
func RateBounds(maxTimeSecs float64) (lo, hi float64) {
	minDraw := float64(Denom / 50)
	maxDraw := float64(Denom + Denom/50 - 1)
	return Denom / (maxTimeSecs * maxDraw), Denom / (maxTimeSecs * minDraw)
}
