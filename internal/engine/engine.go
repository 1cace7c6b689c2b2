package engine

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/san-kum/circlefun/internal/circles"
	"github.com/san-kum/circlefun/internal/config"
	"github.com/san-kum/circlefun/internal/logging"
	"github.com/san-kum/circlefun/internal/motion"
	"github.com/san-kum/circlefun/internal/palette"
	"github.com/san-kum/circlefun/internal/torus"
	"gonum.org/v1/gonum/spatial/r2"
)

// Options are the fixed physical parameters. Radii and speed are derived
// from Dims so a reshaped surface keeps the same look.
type Options struct {
	Dims            r2.Vec
	MinRadiusFrac   float64
	MaxRadiusFrac   float64
	CrossSecs       float64
	MaxPeriodSecs   float64
	PushForce       float64
	PullForce       float64
	PullSpeedCap    float64
	Tables          []palette.Table
	PaletteIndex    int
	PauseEaseFrames int
}

// OptionsFromConfig validates cfg and converts it for a surface of the
// given size.
func OptionsFromConfig(cfg *config.Config, dims r2.Vec) (Options, error) {
	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}
	tables, err := cfg.Tables()
	if err != nil {
		return Options{}, err
	}
	idx, err := cfg.PaletteIndex()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Dims:            dims,
		MinRadiusFrac:   cfg.MinRadiusFrac,
		MaxRadiusFrac:   cfg.MaxRadiusFrac,
		CrossSecs:       cfg.CrossSecs,
		MaxPeriodSecs:   cfg.MaxPeriodSecs,
		PushForce:       cfg.PushForce,
		PullForce:       cfg.PullForce,
		PullSpeedCap:    cfg.PullSpeedCap,
		Tables:          tables,
		PaletteIndex:    idx,
		PauseEaseFrames: cfg.PauseEaseFrames,
	}, nil
}

type Engine struct {
	opts    Options
	surface torus.Surface
	set     *circles.Set
	rng     *rand.Rand
	log     *log.Logger

	paused  bool
	ease    []float64
	easeIdx int

	frame   []Drawable
	scratch []r2.Vec
}

// New builds an engine with count circles. rng is owned by the engine
// from here on; every regeneration draws from it. A nil logger discards.
func New(opts Options, count int, rng *rand.Rand, logger *log.Logger) *Engine {
	if logger == nil {
		logger = logging.Discard()
	}
	e := &Engine{
		opts:    opts,
		surface: torus.NewSurface(opts.Dims),
		rng:     rng,
		log:     logger,
		ease:    motion.SmoothCurve(opts.PauseEaseFrames + 1),
		scratch: make([]r2.Vec, 0, 4),
	}
	if opts.PauseEaseFrames == 0 {
		e.ease = nil
	}
	e.easeIdx = len(e.ease) - 1
	e.regenerate(count, opts.PaletteIndex)
	return e
}

func (e *Engine) regenerate(count, paletteIdx int) {
	if count < 0 {
		count = 0
	}
	minR, maxR := e.radii()
	e.set = circles.New(circles.Options{
		Count:        count,
		MinRadius:    minR,
		MaxRadius:    maxR,
		Dims:         e.opts.Dims,
		Tables:       e.opts.Tables,
		PaletteIndex: paletteIdx,
		MaxTimeSecs:  e.opts.MaxPeriodSecs,
	}, e.rng)
	e.log.Debug("regenerated circles", "count", count, "min_radius", minR, "max_radius", maxR)
}

func (e *Engine) radii() (float64, float64) {
	h := e.opts.Dims.Y
	return h * e.opts.MinRadiusFrac, h * e.opts.MaxRadiusFrac
}

// Speed is the drift speed in px/s.
func (e *Engine) Speed() float64 {
	if e.opts.CrossSecs <= 0 {
		return 0
	}
	return e.opts.Dims.X / e.opts.CrossSecs
}

func (e *Engine) Count() int { return e.set.Len() }

func (e *Engine) Paused() bool { return e.paused }

func (e *Engine) Surface() torus.Surface { return e.surface }

// Circles exposes the set for read-only inspection.
func (e *Engine) Circles() *circles.Set { return e.set }

// Reshape changes the surface size and regenerates the set at the same
// count and palette.
func (e *Engine) Reshape(dims r2.Vec) {
	if dims == e.opts.Dims {
		return
	}
	e.opts.Dims = dims
	e.surface = torus.NewSurface(dims)
	e.regenerate(e.set.Len(), e.set.PaletteIndex())
	e.log.Info("surface reshaped", "width", dims.X, "height", dims.Y)
}

// Apply executes a single command immediately.
func (e *Engine) Apply(cmd Command) {
	switch cmd.Kind {
	case Resize:
		e.regenerate(cmd.N, e.set.PaletteIndex())
		e.log.Info("resized", "circles", e.set.Len())
	case Grow:
		e.regenerate(e.set.Len()+cmd.N, e.set.PaletteIndex())
		e.log.Info("resized", "circles", e.set.Len())
	case Shrink:
		e.regenerate(max(0, e.set.Len()-cmd.N), e.set.PaletteIndex())
		e.log.Info("resized", "circles", e.set.Len())
	case Recenter:
		e.set.Recenter()
		e.log.Debug("recentered")
	case CyclePalette:
		e.set.CyclePalette()
		e.log.Info("palette", "name", e.set.PaletteName())
	case SetPalette:
		e.set.SetPalette(cmd.N)
		e.log.Info("palette", "name", e.set.PaletteName())
	case TogglePause:
		e.paused = !e.paused
		e.log.Info("pause", "paused", e.paused)
	case DumpPositions:
		for i := 0; i < e.set.Len(); i++ {
			p := e.set.Position(i)
			e.log.Info("circle", "index", i, "x", p.X, "y", p.Y)
		}
	default:
		e.log.Warn("ignored command", "kind", cmd.Kind)
	}
}

// Tick advances the simulation by one frame: commands, mouse field,
// periodic drift, then integration.
func (e *Engine) Tick(in Input) Frame {
	for _, cmd := range in.Commands {
		e.Apply(cmd)
	}

	speed := e.Speed()
	if in.Mouse != nil {
		if in.Attract {
			e.field(torus.Attract, *in.Mouse).Apply(e.set, in.Dt, speed)
		}
		if in.Repel {
			e.field(torus.Repel, *in.Mouse).Apply(e.set, in.Dt, speed)
		}
	}

	if scale := e.motionScale(); scale > 0 {
		e.set.Advance(in.Dt, in.Time, speed*scale)
	}
	step := e.set.Integrate()

	f := e.Frame()
	f.Time = in.Time
	f.MeanStep = step
	return f
}

func (e *Engine) field(mode torus.Mode, focus r2.Vec) torus.Field {
	strength := e.opts.PushForce
	if mode == torus.Attract {
		strength = e.opts.PullForce
	}
	return torus.Field{
		Surface:  e.surface,
		Focus:    focus,
		Mode:     mode,
		Strength: strength,
		PullCap:  e.opts.PullSpeedCap,
	}
}

// motionScale eases periodic drift in and out of a pause along the
// smoothstep curve, one sample per tick.
func (e *Engine) motionScale() float64 {
	if len(e.ease) == 0 {
		if e.paused {
			return 0
		}
		return 1
	}
	if e.paused && e.easeIdx > 0 {
		e.easeIdx--
	} else if !e.paused && e.easeIdx < len(e.ease)-1 {
		e.easeIdx++
	}
	return e.ease[e.easeIdx]
}

// Frame lists every circle to draw, largest first, with wrap copies.
func (e *Engine) Frame() Frame {
	e.frame = e.frame[:0]
	for i := 0; i < e.set.Len(); i++ {
		r := e.set.Radius(i)
		col := e.set.Color(i)
		e.scratch = e.surface.AppendCopies(e.scratch[:0], e.set.Position(i), r)
		for _, p := range e.scratch {
			e.frame = append(e.frame, Drawable{Position: p, Radius: r, Color: col, Index: i})
		}
	}
	return Frame{
		Circles: e.frame,
		Count:   e.set.Len(),
		Paused:  e.paused,
		Palette: e.set.PaletteName(),
	}
}
