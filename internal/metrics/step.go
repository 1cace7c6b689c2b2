package metrics

import (
	"math"

	"github.com/san-kum/circlefun/internal/engine"
)

// MeanStep is the average per-tick mean displacement.
type MeanStep struct {
	sum     float64
	samples int
}

func NewMeanStep() *MeanStep { return &MeanStep{} }

func (m *MeanStep) Name() string { return "mean_step" }

func (m *MeanStep) Observe(f engine.Frame) {
	m.sum += f.MeanStep
	m.samples++
}

func (m *MeanStep) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanStep) Reset() {
	m.sum = 0
	m.samples = 0
}

// PeakStep is the largest per-tick mean displacement seen.
type PeakStep struct {
	peak float64
}

func NewPeakStep() *PeakStep { return &PeakStep{} }

func (p *PeakStep) Name() string { return "peak_step" }

func (p *PeakStep) Observe(f engine.Frame) {
	p.peak = math.Max(p.peak, f.MeanStep)
}

func (p *PeakStep) Value() float64 { return p.peak }

func (p *PeakStep) Reset() { p.peak = 0 }
