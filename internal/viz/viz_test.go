package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/tanklab/internal/geometry"
	"github.com/san-kum/tanklab/internal/tank"
	"github.com/san-kum/tanklab/internal/thermal"
)

func design(t *testing.T, shape geometry.Shape) *tank.Design {
	t.Helper()
	d, err := tank.Evaluate(tank.Params{
		Geometry:    geometry.Spec{Shape: shape, Volume: 1000, BaseCost: 20, SideCost: 10},
		BaseDensity: 8000,
		TopDensity:  7500,
		Thermal:     thermal.DefaultSpec(),
	})
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	return d
}

func TestCanvasSetAndLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Set(3, 7)
	if !c.isSet(3, 7) {
		t.Error("expected pixel to be set")
	}
	c.Set(-1, 2)
	c.Set(100, 100)

	c.DrawLine(0, 0, 19, 19)
	if !c.isSet(0, 0) || !c.isSet(19, 19) {
		t.Error("line endpoints should be set")
	}

	c.Clear()
	if c.isSet(0, 0) {
		t.Error("clear should reset pixels")
	}
	if lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n"); len(lines) != 5 {
		t.Errorf("expected 5 rows, got %d", len(lines))
	}
}

func TestDrawOutline(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawOutline(geometry.Outline(geometry.Prism(4), 1, 0))
	lit := 0
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			if c.isSet(x, y) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("outline drew nothing")
	}
}

func TestTankWireframe(t *testing.T) {
	prism := TankWireframe(geometry.Prism(6), 2, 5, 0)
	// 6 bottom + 6 top + 6 vertical edges
	if prism.Len() != 18 {
		t.Errorf("expected 18 edges, got %d", prism.Len())
	}
	cyl := TankWireframe(geometry.Cylinder(), 2, 5, 48)
	if cyl.Len() != 48+48+12 {
		t.Errorf("expected 108 edges, got %d", cyl.Len())
	}
	for _, e := range cyl.Edges {
		for _, v := range []Vec3{e.Start, e.End} {
			if v.X < -1-1e-9 || v.X > 1+1e-9 || v.Y < -1-1e-9 || v.Y > 1+1e-9 {
				t.Fatalf("vertex %+v outside normalized space", v)
			}
		}
	}
	if TankWireframe(geometry.Cylinder(), 1, 0, 12).Len() != 0 {
		t.Error("zero height should produce no edges")
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{6974.684, 2, "6,974.68"},
		{7750000, 2, "7,750,000.00"},
		{12, 0, "12"},
		{-1234.5, 1, "-1,234.5"},
		{100, 2, "100.00"},
		{999.996, 2, "1,000.00"},
		{1234567.891, 0, "1,234,568"},
	}

	for _, tt := range tests {
		if got := FormatThousands(tt.v, tt.prec); got != tt.want {
			t.Errorf("%f: expected %q, got %q", tt.v, tt.want, got)
		}
	}
}

func TestPanelsRender(t *testing.T) {
	d := design(t, geometry.Prism(5))
	size := ChartSize{Width: 40, Height: 6}

	if out := OptimizationPanel(d, size); !strings.Contains(out, "minimum cost") {
		t.Errorf("optimization panel missing metrics:\n%s", out)
	}
	if out := MassPanel(d, size); !strings.Contains(out, "center of mass") {
		t.Errorf("mass panel missing metrics:\n%s", out)
	}
	if out := ThermalPanel(d, size); !strings.Contains(out, thermal.StatusCritical) {
		t.Errorf("thermal panel should be critical:\n%s", out)
	}
	if TankSketch(d, NewCamera(), 20, 8) == "" {
		t.Error("expected a sketch")
	}
}

func TestPanelsShowErrors(t *testing.T) {
	d, _ := tank.Evaluate(tank.Params{
		Geometry:    geometry.Spec{Shape: geometry.Prism(2), Volume: 1, BaseCost: 1, SideCost: 1},
		BaseDensity: 1,
		TopDensity:  1,
		Thermal:     thermal.DefaultSpec(),
	})
	if out := OptimizationPanel(d, DefaultChartSize); !strings.Contains(out, "invalid parameters") {
		t.Errorf("expected error block, got:\n%s", out)
	}
	if out := MassPanel(d, DefaultChartSize); !strings.Contains(out, "invalid parameters") {
		t.Errorf("expected error block, got:\n%s", out)
	}
	if TankSketch(d, NewCamera(), 10, 5) != "" {
		t.Error("no sketch expected for invalid geometry")
	}
}

func TestNextTheme(t *testing.T) {
	defer SetTheme(ThemeBlueprint.Name)
	SetTheme("blueprint")
	if NextTheme().Name != "retro" {
		t.Errorf("expected retro after blueprint")
	}
	if GetTheme("nope").Name != "blueprint" {
		t.Error("unknown theme should fall back to blueprint")
	}
}

func (c *Canvas) isSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}
