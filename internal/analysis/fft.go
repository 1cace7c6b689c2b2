package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

const minSamples = 4

var ErrTooFewSamples = errors.New("analysis: too few samples")

// PowerSpectrum returns the magnitude of the first n/2+1 bins of the
// real FFT of data, with the mean removed first.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	var mean float64
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centred := make([]float64, len(data))
	for i, v := range data {
		centred[i] = v - mean
	}

	spectrum := fft.FFTReal(centred)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency is the frequency in Hz of the strongest non-DC bin.
// Its resolution is sampleRate/len(samples).
func DominantFrequency(samples []float64, sampleRate float64) (float64, error) {
	if len(samples) < minSamples {
		return 0, ErrTooFewSamples
	}
	ps := PowerSpectrum(samples)

	peak := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	return BinFrequency(peak, len(samples), sampleRate), nil
}

func BinFrequency(bin, n int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(n)
}

// ExpectedFrequency converts an angular rate (rad/s) to Hz.
func ExpectedFrequency(rate float64) float64 {
	return rate / (2 * math.Pi)
}

// Differences returns x[i+1]-x[i].
func Differences(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}
	out := make([]float64, len(x)-1)
	for i := range out {
		out[i] = x[i+1] - x[i]
	}
	return out
}
