package motion

import "math"

// SmoothStep is the cubic Hermite 3x^2-2x^3 with x clamped to [0,1].
func SmoothStep(x float64) float64 {
	x = math.Max(0, math.Min(1, x))
	return x * x * (3 - 2*x)
}

// SmoothCurve samples SmoothStep at n evenly spaced points from 0 to 1.
func SmoothCurve(n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{1}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = SmoothStep(float64(i) / float64(n-1))
	}
	return out
}
