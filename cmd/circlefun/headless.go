package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/circlefun/internal/analysis"
	"github.com/san-kum/circlefun/internal/automation"
	"github.com/san-kum/circlefun/internal/config"
	"github.com/san-kum/circlefun/internal/engine"
	"github.com/san-kum/circlefun/internal/export"
	"github.com/san-kum/circlefun/internal/metrics"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

// headless builds an engine on the configured surface, or the default
// headless size when the config leaves it to the display.
func headless(cmd *cobra.Command) (*config.Config, *engine.Engine, engine.Options, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, engine.Options{}, err
	}
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return nil, nil, engine.Options{}, err
	}
	w, h := cfg.HeadlessDims()
	opts, err := engine.OptionsFromConfig(cfg, r2.Vec{X: w, Y: h})
	if err != nil {
		return nil, nil, engine.Options{}, err
	}
	logger.Debug("headless", "seed", cfg.Seed, "width", w, "height", h)
	eng := engine.New(opts, cfg.Circles, rand.New(rand.NewSource(cfg.Seed)), logger)
	return cfg, eng, opts, nil
}

func script(cfg *config.Config) (engine.Script, error) {
	if scenarioPath != "" {
		sc, err := automation.LoadScenario(scenarioPath)
		if err != nil {
			return engine.Script{}, err
		}
		s, err := sc.Script(cfg.StartTime)
		if err != nil {
			return s, err
		}
		return s, s.Validate()
	}

	s := engine.Script{Dt: dt, Duration: duration, StartTime: cfg.StartTime}
	attract, err := parseVec(attractAt)
	if err != nil {
		return s, err
	}
	repel, err := parseVec(repelAt)
	if err != nil {
		return s, err
	}
	switch {
	case attract != nil && repel != nil && *attract != *repel:
		return s, fmt.Errorf("--attract and --repel must share a point, the surface has one pointer")
	case attract != nil:
		s.Mouse, s.Attract = attract, true
		s.Repel = repel != nil
	case repel != nil:
		s.Mouse, s.Repel = repel, true
	}
	return s, s.Validate()
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, eng, opts, err := headless(cmd)
	if err != nil {
		return err
	}
	s, err := script(cfg)
	if err != nil {
		return err
	}

	if runs > 1 {
		return runEnsemble(ctx(cmd), cfg, opts, s)
	}

	focus := eng.Surface().Center()
	if s.Mouse != nil {
		focus = *s.Mouse
	}
	ms := []metrics.Metric{
		metrics.NewMeanStep(),
		metrics.NewPeakStep(),
		metrics.NewSpread(eng.Surface(), focus),
	}

	start := time.Now()
	trace := make([]engine.Sample, 0, s.Steps())
	err = eng.Run(ctx(cmd), s, func(step int, f engine.Frame) bool {
		trace = append(trace, engine.Sample{Step: step, Time: f.Time, MeanStep: f.MeanStep, Count: f.Count})
		metrics.Observe(ms, f)
		return true
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	data := make([]float64, len(trace))
	for i, smp := range trace {
		data[i] = smp.MeanStep
	}
	fmt.Printf("circles: %d  palette: %s  seed: %d\n", eng.Count(), eng.Frame().Palette, cfg.Seed)
	fmt.Printf("steps: %d  elapsed: %s\n\n", len(trace), elapsed.Round(time.Millisecond))
	if len(data) > 0 {
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("mean step per tick (px)"),
		))
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nMETRIC\tVALUE")
	for _, m := range ms {
		fmt.Fprintf(tw, "%s\t%.4f\n", m.Name(), m.Value())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if csvPath != "" {
		if err := writeFile(csvPath, func(w io.Writer) error { return export.WriteTraceCSV(w, trace) }); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", csvPath)
	}
	if jsonPath != "" {
		w, h := cfg.HeadlessDims()
		r := export.NewReport(trace)
		r.Seed, r.Circles, r.Width, r.Height = cfg.Seed, cfg.Circles, w, h
		r.Palette, r.Dt, r.Duration = cfg.Palette, s.Dt, s.Duration
		if err := export.ExportJSON(jsonPath, r); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	return nil
}

func runEnsemble(c context.Context, cfg *config.Config, opts engine.Options, s engine.Script) error {
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	seeds := make([]int64, runs)
	for i := range seeds {
		seeds[i] = cfg.Seed + int64(i)
	}
	results, err := engine.NewEnsemble(opts, cfg.Circles, seeds, logger).Run(c, s)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tSTEPS\tMEAN STEP\tMAX STEP")
	mean, peak := metrics.NewMeanStep(), metrics.NewPeakStep()
	for i, trace := range results {
		mean.Reset()
		peak.Reset()
		for _, smp := range trace {
			f := engine.Frame{MeanStep: smp.MeanStep}
			mean.Observe(f)
			peak.Observe(f)
		}
		fmt.Fprintf(tw, "%d\t%d\t%.4f\t%.4f\n", seeds[i], len(trace), mean.Value(), peak.Value())
	}
	return tw.Flush()
}

// analyzeCircle records one circle's per-tick displacement and compares
// its dominant frequency with the one its motion parameters predict.
func analyzeCircle(cmd *cobra.Command, args []string) error {
	cfg, eng, _, err := headless(cmd)
	if err != nil {
		return err
	}
	if circleIdx < 0 || circleIdx >= eng.Count() {
		return fmt.Errorf("circle %d out of range [0, %d)", circleIdx, eng.Count())
	}
	s := engine.Script{Dt: dt, Duration: duration, StartTime: cfg.StartTime}
	if err := s.Validate(); err != nil {
		return err
	}

	xs := make([]float64, 0, s.Steps())
	ys := make([]float64, 0, s.Steps())
	err = eng.Run(ctx(cmd), s, func(_ int, _ engine.Frame) bool {
		p := eng.Circles().Position(circleIdx)
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
		return true
	})
	if err != nil {
		return err
	}

	dx, dy := analysis.Differences(xs), analysis.Differences(ys)
	rate := 1 / dt
	fx, err := analysis.DominantFrequency(dx, rate)
	if err != nil {
		return err
	}
	fy, err := analysis.DominantFrequency(dy, rate)
	if err != nil {
		return err
	}

	m := eng.Circles().Motion(circleIdx)
	res := rate / float64(len(dx))
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "circle %d\tradius %.1f\tresolution %.4f Hz\n", circleIdx, eng.Circles().Radius(circleIdx), res)
	fmt.Fprintln(tw, "AXIS\tEXPECTED (Hz)\tMEASURED (Hz)\tPERIOD (s)")
	fmt.Fprintf(tw, "x\t%.4f\t%.4f\t%.2f\n", analysis.ExpectedFrequency(m.RateX), fx, 1/m.RateX)
	fmt.Fprintf(tw, "y\t%.4f\t%.4f\t%.2f\n", analysis.ExpectedFrequency(m.RateY), fy, 1/m.RateY)
	if err := tw.Flush(); err != nil {
		return err
	}

	ps := analysis.PowerSpectrum(dx)
	limit := min(len(ps), 80)
	if limit > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(ps[:limit],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (x displacement)"),
		))
	}
	return nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, eng, _, err := headless(cmd)
	if err != nil {
		return err
	}
	s := engine.Script{Dt: dt, Duration: duration, StartTime: cfg.StartTime}
	var last engine.Frame
	if err := eng.Run(ctx(cmd), s, func(_ int, f engine.Frame) bool {
		last = f
		return true
	}); err != nil {
		return err
	}
	if last.Circles == nil {
		last = eng.Frame()
	}
	dims := eng.Surface().Dims()
	return writeFile(outPath, func(w io.Writer) error { return export.FrameSVG(w, last, dims) })
}

func bench(cmd *cobra.Command, args []string) error {
	_, eng, _, err := headless(cmd)
	if err != nil {
		return err
	}
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	clock := engine.NewClock(0)
	const step = 1.0 / 60

	start := time.Now()
	for i := 0; i < steps; i++ {
		eng.Tick(engine.Input{Dt: step, Time: clock.Advance(step)})
	}
	elapsed := time.Since(start)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CIRCLES\tTICKS\tTOTAL\tPER TICK\tTICKS/S")
	per := elapsed / time.Duration(steps)
	fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%.0f\n", eng.Count(), steps, elapsed.Round(time.Microsecond), per, float64(steps)/elapsed.Seconds())
	return tw.Flush()
}

func ctx(cmd *cobra.Command) context.Context {
	if c := cmd.Context(); c != nil {
		return c
	}
	return context.Background()
}

func writeFile(path string, fn func(io.Writer) error) error {
	if path == "-" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
