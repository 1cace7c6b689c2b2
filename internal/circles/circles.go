// Package circles owns the circle arena: radii, positions, velocity
// accumulators, palette colours and motion parameters, all indexed by
// size rank (0 is the largest circle).
//
// Positions are the top-left corner of each circle's bounding square;
// the visual centre is Position+Radius on both axes.
package circles

import (
	"math"
	"math/rand"

	"github.com/san-kum/circlefun/internal/motion"
	"github.com/san-kum/circlefun/internal/palette"
	"gonum.org/v1/gonum/spatial/r2"
)

// Options fixes everything a Set needs at construction.
type Options struct {
	Count        int
	MinRadius    float64
	MaxRadius    float64
	Dims         r2.Vec
	Tables       []palette.Table
	PaletteIndex int
	MaxTimeSecs  float64
}

type circle struct {
	radius float64
	pos    r2.Vec
	vel    r2.Vec
	color  palette.Color
	motion motion.Params
}

// Set is not safe for concurrent use.
type Set struct {
	circles   []circle
	dims      r2.Vec
	minRadius float64
	maxRadius float64
	palettes  *palette.Set
	active    int
}

// New builds palettes, radii, random positions and motion parameters.
// A zero count is valid and yields an empty set.
func New(opts Options, rng *rand.Rand) *Set {
	n := opts.Count
	if n < 0 {
		n = 0
	}
	tables := opts.Tables
	if len(tables) == 0 {
		tables = palette.Builtin
	}
	maxTime := opts.MaxTimeSecs
	if maxTime <= 0 {
		maxTime = motion.DefaultMaxTimeSecs
	}

	s := &Set{
		circles:   make([]circle, n),
		dims:      opts.Dims,
		minRadius: opts.MinRadius,
		maxRadius: opts.MaxRadius,
		palettes:  palette.NewSet(tables, n),
	}
	s.active = wrapIndex(opts.PaletteIndex, s.palettes.Len())

	radii := Radii(n, opts.MinRadius, opts.MaxRadius)
	params := motion.Generate(rng, n, maxTime)
	for i := range s.circles {
		s.circles[i] = circle{
			radius: radii[i],
			pos:    r2.Vec{X: randCoord(rng, opts.Dims.X), Y: randCoord(rng, opts.Dims.Y)},
			motion: params[i],
		}
	}
	s.updateColors()
	return s
}

// Radii spaces circle areas evenly from maxR down to minR:
// r(i)^2 = maxR^2 - i*(maxR^2-minR^2)/(n-1). A single circle gets maxR.
func Radii(n int, minR, maxR float64) []float64 {
	if n <= 0 {
		return nil
	}
	hi, lo := maxR*maxR, minR*minR
	var step float64
	if n > 1 {
		step = (hi - lo) / float64(n-1)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sqrt(math.Max(0, hi-float64(i)*step))
	}
	return out
}

func randCoord(rng *rand.Rand, extent float64) float64 {
	if extent < 1 {
		return 0
	}
	return float64(rng.Intn(int(extent)))
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func (s *Set) Len() int { return len(s.circles) }

func (s *Set) Dims() r2.Vec { return s.dims }

func (s *Set) MinRadius() float64 { return s.minRadius }

// MaxRadius is the configured radius of circle 0; the field normalises
// mass against it.
func (s *Set) MaxRadius() float64 { return s.maxRadius }

func (s *Set) Radius(i int) float64 { return s.circles[i].radius }

func (s *Set) Position(i int) r2.Vec { return s.circles[i].pos }

func (s *Set) Velocity(i int) r2.Vec { return s.circles[i].vel }

func (s *Set) Color(i int) palette.Color { return s.circles[i].color }

func (s *Set) Motion(i int) motion.Params { return s.circles[i].motion }

// AddVelocity accumulates v into circle i's velocity for this tick.
func (s *Set) AddVelocity(i int, v r2.Vec) {
	s.circles[i].vel = r2.Add(s.circles[i].vel, v)
}
