// Package series provides the sampled-curve primitives shared by the
// calculation packages.
//
// Every panel of the calculator produces fixed-length (x, y) sample pairs:
//
//   - [Linspace]: evenly spaced samples over a closed interval
//   - [Series]: an ordered set of (x, y) pairs with bounds and validity checks
//   - [Parallel]: runs independent evaluations concurrently
//
// # Example
//
//	xs := series.Linspace(0, 24, series.DefaultSamples)
//	s := series.Map(xs, func(t float64) float64 { return math.Exp(-t) })
package series
