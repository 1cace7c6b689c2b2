package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/circlefun/internal/engine"
)

var traceHeader = []string{"step", "time", "mean_step", "circles"}

// WriteTraceCSV writes one row per sample after a header row.
func WriteTraceCSV(w io.Writer, samples []engine.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(traceHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Step),
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.FormatFloat(s.MeanStep, 'f', 6, 64),
			strconv.Itoa(s.Count),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
