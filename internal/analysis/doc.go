// Package analysis inspects headless traces of the circle simulation.
//
// Each circle drifts along (cos(rateX*t), cos(rateY*t)), so the per-tick
// displacement of a circle is periodic with frequency rateX/2π on the x
// axis. [DominantFrequency] recovers that frequency from a sampled
// signal, which is how the analyze command checks a run against the
// circle's motion parameters:
//
//	f, err := analysis.DominantFrequency(dx, 1/dt)
//	want := analysis.ExpectedFrequency(params.RateX)
package analysis
