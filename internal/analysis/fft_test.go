package analysis

import (
	"errors"
	"math"
	"testing"
)

func sine(freq, rate float64, n int, offset float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = offset + math.Sin(2*math.Pi*freq*float64(i)/rate)
	}
	return out
}

func TestDominantFrequency(t *testing.T) {
	tests := []struct {
		name   string
		freq   float64
		rate   float64
		n      int
		offset float64
	}{
		{"power of two", 8, 128, 256, 0},
		{"odd length", 5, 100, 1001, 0},
		{"dc offset", 3, 60, 600, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DominantFrequency(sine(tt.freq, tt.rate, tt.n, tt.offset), tt.rate)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			res := tt.rate / float64(tt.n)
			if math.Abs(got-tt.freq) > res {
				t.Errorf("expected %f Hz (±%f), got %f", tt.freq, res, got)
			}
		})
	}
}

func TestDominantFrequency_TooFew(t *testing.T) {
	_, err := DominantFrequency([]float64{1, 2, 3}, 10)
	if !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("expected ErrTooFewSamples, got %v", err)
	}
}

func TestPowerSpectrum(t *testing.T) {
	ps := PowerSpectrum(sine(4, 64, 64, 10))
	if len(ps) != 33 {
		t.Fatalf("expected 33 bins, got %d", len(ps))
	}
	if ps[0] > 1e-9 {
		t.Errorf("expected DC removed, got %f", ps[0])
	}
	if ps[4] < 31 || ps[4] > 33 {
		t.Errorf("expected bin 4 near 32, got %f", ps[4])
	}
	if PowerSpectrum(nil) != nil {
		t.Error("expected nil spectrum for no data")
	}
}

func TestExpectedFrequency(t *testing.T) {
	if got := ExpectedFrequency(2 * math.Pi); math.Abs(got-1) > 1e-12 {
		t.Errorf("expected 1 Hz, got %f", got)
	}
}

func TestDifferences(t *testing.T) {
	got := Differences([]float64{1, 4, 9, 16})
	want := []float64{3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %f, got %f", i, want[i], got[i])
		}
	}
	if Differences([]float64{1}) != nil {
		t.Error("expected nil for a single sample")
	}
}
