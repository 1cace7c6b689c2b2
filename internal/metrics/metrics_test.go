package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/circlefun/internal/engine"
	"github.com/san-kum/circlefun/internal/torus"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestMeanStep(t *testing.T) {
	m := NewMeanStep()
	if m.Value() != 0 {
		t.Errorf("expected 0 before samples, got %f", m.Value())
	}
	m.Observe(engine.Frame{MeanStep: 1})
	m.Observe(engine.Frame{MeanStep: 3})
	if m.Value() != 2 {
		t.Errorf("expected 2, got %f", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}

func TestPeakStep(t *testing.T) {
	p := NewPeakStep()
	for _, v := range []float64{1, 4, 2} {
		p.Observe(engine.Frame{MeanStep: v})
	}
	if p.Value() != 4 {
		t.Errorf("expected 4, got %f", p.Value())
	}
}

func TestSpread(t *testing.T) {
	s := torus.NewSurface(r2.Vec{X: 100, Y: 100})
	tests := []struct {
		name    string
		circles []engine.Drawable
		want    float64
	}{
		{"empty", nil, 0},
		{
			"single at focus",
			[]engine.Drawable{{Position: r2.Vec{X: 45, Y: 45}, Radius: 5}},
			0,
		},
		{
			"copies counted once",
			[]engine.Drawable{
				{Position: r2.Vec{X: 85, Y: 40}, Radius: 10, Index: 0},
				{Position: r2.Vec{X: -15, Y: 40}, Radius: 10, Index: 0},
				{Position: r2.Vec{X: 5, Y: 45}, Radius: 5, Index: 1},
			},
			// centres at x=95 and x=10: wrapped distances 45 and 40.
			42.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSpread(s, r2.Vec{X: 50, Y: 50})
			m.Observe(engine.Frame{Circles: tt.circles})
			if math.Abs(m.Value()-tt.want) > 1e-9 {
				t.Errorf("expected %f, got %f", tt.want, m.Value())
			}
		})
	}
}

func TestValues(t *testing.T) {
	ms := []Metric{NewMeanStep(), NewPeakStep()}
	Observe(ms, engine.Frame{MeanStep: 2})
	v := Values(ms)
	if v["mean_step"] != 2 || v["peak_step"] != 2 {
		t.Errorf("unexpected values %v", v)
	}
}
