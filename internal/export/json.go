package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/circlefun/internal/engine"
)

// Report summarises a headless run.
type Report struct {
	Seed     int64     `json:"seed"`
	Circles  int       `json:"circles"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Palette  string    `json:"palette"`
	Dt       float64   `json:"dt"`
	Duration float64   `json:"duration"`
	Steps    int       `json:"steps"`
	Times    []float64 `json:"times"`
	MeanStep []float64 `json:"mean_step"`
}

func NewReport(samples []engine.Sample) Report {
	r := Report{
		Steps:    len(samples),
		Times:    make([]float64, len(samples)),
		MeanStep: make([]float64, len(samples)),
	}
	for i, s := range samples {
		r.Times[i] = s.Time
		r.MeanStep[i] = s.MeanStep
	}
	return r
}

func WriteJSON(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func ExportJSON(path string, r Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, r)
}
