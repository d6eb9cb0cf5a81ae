package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Kind int

const (
	KindCylinder Kind = iota
	KindPrism
)

func (k Kind) String() string {
	switch k {
	case KindCylinder:
		return "cylinder"
	case KindPrism:
		return "prism"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if k != KindCylinder && k != KindPrism {
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownShape, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "cylinder":
		*k = KindCylinder
	case "prism":
		*k = KindPrism
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, text)
	}
	return nil
}

// Shape is the cross-section variant. Sides is only read for prisms.
type Shape struct {
	Kind  Kind `json:"kind" yaml:"kind"`
	Sides int  `json:"sides,omitempty" yaml:"sides,omitempty"`
}

func Cylinder() Shape { return Shape{Kind: KindCylinder} }

func Prism(sides int) Shape { return Shape{Kind: KindPrism, Sides: sides} }

// ParseShape accepts "cylinder", "prism" with the given side count, "box"
// as a four-sided prism, or the inline form "prism:6".
func ParseShape(name string, sides int) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if before, after, ok := strings.Cut(name, ":"); ok {
		n, err := strconv.Atoi(after)
		if err != nil {
			return Shape{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
		}
		name, sides = before, n
	}
	switch name {
	case "cylinder", "cyl", "":
		return Cylinder(), nil
	case "prism", "polygon":
		s := Prism(sides)
		return s, s.Validate()
	case "box", "square":
		return Prism(4), nil
	default:
		return Shape{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

func (s Shape) Validate() error {
	switch s.Kind {
	case KindCylinder:
		return nil
	case KindPrism:
		if s.Sides < 3 {
			return &ParamError{Param: "sides", Value: float64(s.Sides), Wrapped: ErrSideCount}
		}
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownShape, int(s.Kind))
	}
}

// AreaConstant is k in base area = k·d².
func (s Shape) AreaConstant() float64 {
	if s.Kind == KindPrism {
		n := float64(s.Sides)
		return n / (4 * math.Tan(math.Pi/n))
	}
	return math.Pi
}

// PerimeterFactor is p in base perimeter = p·d.
func (s Shape) PerimeterFactor() float64 {
	if s.Kind == KindPrism {
		return float64(s.Sides)
	}
	return 2 * math.Pi
}

// DimensionLabel names the characteristic dimension.
func (s Shape) DimensionLabel() string {
	if s.Kind == KindPrism {
		return "side (L)"
	}
	return "radius (r)"
}

func (s Shape) String() string {
	if s.Kind == KindPrism {
		return fmt.Sprintf("prism(n=%d)", s.Sides)
	}
	return s.Kind.String()
}
