package geometry

import "math"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Circumradius is the distance from the base center to its outline.
func Circumradius(shape Shape, d float64) float64 {
	if shape.Kind == KindPrism && shape.Sides >= 3 {
		return d / (2 * math.Sin(math.Pi/float64(shape.Sides)))
	}
	return d
}

// Outline returns a closed polyline of the base; the last point repeats
// the first. Prisms always yield Sides+1 points; segments only applies to
// cylinders.
func Outline(shape Shape, d float64, segments int) []Point {
	n := segments
	if shape.Kind == KindPrism {
		n = shape.Sides
	}
	if n < 3 {
		n = 3
	}

	r := Circumradius(shape, d)
	pts := make([]Point, n+1)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	pts[n] = pts[0]
	return pts
}
