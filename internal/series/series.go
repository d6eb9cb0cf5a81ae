package series

import "math"

// DefaultSamples is the resolution of every sweep and profile.
const DefaultSamples = 100

// Linspace returns n evenly spaced values over [start, stop], both ends
// included. The last sample is exactly stop.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := 0; i < n-1; i++ {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

type Series struct {
	X []float64
	Y []float64
}

// Map evaluates fn at every x.
func Map(xs []float64, fn func(float64) float64) Series {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = fn(x)
	}
	return Series{X: xs, Y: ys}
}

func (s Series) Len() int { return len(s.X) }

func (s Series) Clone() Series {
	x := make([]float64, len(s.X))
	y := make([]float64, len(s.Y))
	copy(x, s.X)
	copy(y, s.Y)
	return Series{X: x, Y: y}
}

func (s Series) IsValid() bool {
	if len(s.X) != len(s.Y) {
		return false
	}
	for i := range s.X {
		if math.IsNaN(s.X[i]) || math.IsInf(s.X[i], 0) || math.IsNaN(s.Y[i]) || math.IsInf(s.Y[i], 0) {
			return false
		}
	}
	return true
}

// ArgMin returns the index of the smallest y, or -1 for an empty series.
func (s Series) ArgMin() int {
	idx := -1
	best := math.Inf(1)
	for i, v := range s.Y {
		if v < best {
			best, idx = v, i
		}
	}
	return idx
}

// Bounds returns min and max of y.
func (s Series) Bounds() (lo, hi float64) {
	if len(s.Y) == 0 {
		return 0, 0
	}
	lo, hi = s.Y[0], s.Y[0]
	for _, v := range s.Y[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Monotonic reports the direction of y: 1 non-decreasing, -1
// non-increasing, 0 constant. ok is false when the series changes direction.
func (s Series) Monotonic() (dir int, ok bool) {
	for i := 1; i < len(s.Y); i++ {
		d := s.Y[i] - s.Y[i-1]
		switch {
		case d > 0 && dir >= 0:
			dir = 1
		case d < 0 && dir <= 0:
			dir = -1
		case d == 0:
		default:
			return dir, false
		}
	}
	return dir, true
}

// Trapezoid integrates y over x with the trapezoidal rule.
func (s Series) Trapezoid() float64 {
	sum := 0.0
	for i := 1; i < len(s.X) && i < len(s.Y); i++ {
		sum += 0.5 * (s.Y[i] + s.Y[i-1]) * (s.X[i] - s.X[i-1])
	}
	return sum
}
