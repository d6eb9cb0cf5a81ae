package viz

import (
	"math"
	"strconv"

	"github.com/san-kum/tanklab/internal/geometry"
	"github.com/san-kum/tanklab/internal/tank"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is the prefix used by FormatMoney.
var Currency = "R$"

var grouped = message.NewPrinter(language.English)

// FormatThousands renders v with comma thousands separators.
func FormatThousands(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}
	return grouped.Sprintf("%.*f", prec, v)
}

func FormatMoney(v float64) string {
	return Currency + " " + FormatThousands(v, 2)
}

func outlineFor(d *tank.Design) []geometry.Point {
	return geometry.Outline(d.Optimal.Shape, d.Optimal.Dimension, 48)
}
