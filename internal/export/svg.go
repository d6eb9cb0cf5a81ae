package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/tanklab/internal/geometry"
	"github.com/san-kum/tanklab/internal/series"
)

// SeriesToSVG draws s as a polyline. marker, when in range, is highlighted
// with a dot (the cost minimum or the threshold crossing).
func SeriesToSVG(s series.Series, width, height int, strokeColor string, marker int) string {
	if s.Len() < 2 {
		return ""
	}

	minX, maxX := s.X[0], s.X[s.Len()-1]
	minY, maxY := s.Bounds()

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	px := func(i int) (float64, float64) {
		x := (s.X[i] - minX) / rangeX * float64(width)
		y := float64(height) - (s.Y[i]-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := range s.X {
		x, y := px(i)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString(`"/>
`)

	if marker >= 0 && marker < s.Len() {
		x, y := px(marker)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="#dc3545"/>
`, x, y))
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// OutlineToSVG draws the closed base outline centered in a size×size box.
func OutlineToSVG(pts []geometry.Point, size int, strokeColor string) string {
	if len(pts) < 2 {
		return ""
	}

	extent := 0.0
	for _, p := range pts {
		extent = max(extent, math.Abs(p.X), math.Abs(p.Y))
	}
	if extent == 0 {
		extent = 1
	}
	half := float64(size) / 2
	scale := half * 0.9 / extent

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<polygon fill="#cfe2ff" stroke="%s" stroke-width="2" points="`, size, size, size, size, strokeColor))

	for i, p := range pts[:len(pts)-1] {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", half+p.X*scale, half-p.Y*scale))
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
