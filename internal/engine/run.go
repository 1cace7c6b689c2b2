package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/san-kum/circlefun/internal/logging"
	"gonum.org/v1/gonum/spatial/r2"
)

var ErrInvalidScript = errors.New("engine: invalid script")

// Script describes a headless run. Mouse stays fixed for the whole run;
// Schedule queues commands before the given step.
type Script struct {
	Dt        float64
	Duration  float64
	StartTime float64
	Mouse     *r2.Vec
	Attract   bool
	Repel     bool
	Schedule  map[int][]Command
}

// maxSteps bounds a single script run.
const maxSteps = 1 << 30

// Steps is the number of ticks in the run, 0 when Dt or Duration is
// unusable.
func (s Script) Steps() int {
	if s.timing() != nil {
		return 0
	}
	return int(s.Duration / s.Dt)
}

// Validate reports a script that cannot be run, wrapping ErrInvalidScript.
func (s Script) Validate() error {
	if err := s.timing(); err != nil {
		return err
	}
	if s.StartTime < 0 {
		return fmt.Errorf("%w: start time must be non-negative, got %f", ErrInvalidScript, s.StartTime)
	}
	if (s.Attract || s.Repel) && s.Mouse == nil {
		return fmt.Errorf("%w: attract/repel needs a mouse position", ErrInvalidScript)
	}
	return nil
}

func (s Script) timing() error {
	if !(s.Dt > 0) || math.IsInf(s.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidScript, s.Dt)
	}
	if !(s.Duration > 0) || math.IsInf(s.Duration, 0) {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidScript, s.Duration)
	}
	if s.Duration/s.Dt > maxSteps {
		return fmt.Errorf("%w: %g / %g is too many steps", ErrInvalidScript, s.Duration, s.Dt)
	}
	return nil
}

// Run ticks the engine through the script, handing each frame to fn.
// fn returning false stops the run early without error.
func (e *Engine) Run(ctx context.Context, s Script, fn func(step int, f Frame) bool) error {
	if err := s.Validate(); err != nil {
		return err
	}

	clock := NewClock(s.StartTime)
	steps := s.Steps()
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		in := Input{
			Dt:       s.Dt,
			Time:     clock.Advance(s.Dt),
			Mouse:    s.Mouse,
			Attract:  s.Attract,
			Repel:    s.Repel,
			Commands: s.Schedule[i],
		}
		if !fn(i, e.Tick(in)) {
			return nil
		}
	}
	return nil
}

// Sample is one tick of a headless trace.
type Sample struct {
	Step     int
	Time     float64
	MeanStep float64
	Count    int
}

// Trace runs the script and records one Sample per tick.
func (e *Engine) Trace(ctx context.Context, s Script) ([]Sample, error) {
	out := make([]Sample, 0, s.Steps())
	err := e.Run(ctx, s, func(step int, f Frame) bool {
		out = append(out, Sample{Step: step, Time: f.Time, MeanStep: f.MeanStep, Count: f.Count})
		return true
	})
	return out, err
}

// Ensemble runs the same script over several seeds in parallel, one
// engine per seed.
type Ensemble struct {
	opts   Options
	count  int
	seeds  []int64
	logger *log.Logger
}

func NewEnsemble(opts Options, count int, seeds []int64, logger *log.Logger) *Ensemble {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Ensemble{opts: opts, count: count, seeds: seeds, logger: logger}
}

func (en *Ensemble) Run(ctx context.Context, s Script) ([][]Sample, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	results := make([][]Sample, len(en.seeds))
	errs := make([]error, len(en.seeds))

	var wg sync.WaitGroup
	for i, seed := range en.seeds {
		wg.Add(1)
		go func(idx int, seed int64) {
			defer wg.Done()
			e := New(en.opts, en.count, rand.New(rand.NewSource(seed)), en.logger.With("seed", seed))
			results[idx], errs[idx] = e.Trace(ctx, s)
		}(i, seed)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}
