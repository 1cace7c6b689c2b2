package metrics

import "github.com/san-kum/circlefun/internal/engine"

// Metric accumulates a scalar over the frames of a run.
type Metric interface {
	Name() string
	Observe(f engine.Frame)
	Value() float64
	Reset()
}

// Observe feeds f to every metric.
func Observe(ms []Metric, f engine.Frame) {
	for _, m := range ms {
		m.Observe(f)
	}
}

// Values collects each metric's value by name.
func Values(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
