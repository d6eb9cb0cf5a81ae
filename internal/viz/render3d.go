package viz

import (
	"math"
	"sort"

	"github.com/san-kum/tanklab/internal/geometry"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Camera projects normalized model space ([-1, 1] on every axis) onto a canvas.
type Camera struct {
	Distance   float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 5, RotX: 0.45, RotY: 0.6, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(4, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.25, c.Zoom/1.2) }

func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	return p
}

// Project maps p to sub-pixel coordinates of a sw×sh grid. ok is false
// when the point is behind the camera.
func (c *Camera) Project(p Vec3, sw, sh int) (x, y int, depth float64, ok bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	half := float64(min(sw, sh)) / 2.6
	x = int(math.Round(rot.X*scale*half)) + sw/2
	y = int(math.Round(-rot.Y*scale*half)) + sh/2
	return x, y, rot.Z, true
}

type Edge struct {
	Start, End Vec3
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe         { return &Wireframe{} }
func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }
func (w *Wireframe) Len() int          { return len(w.Edges) }
func (w *Wireframe) Clear()            { w.Edges = w.Edges[:0] }

// Render3D draws the wireframe far-to-near.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	type projected struct {
		x1, y1, x2, y2 int
		depth          float64
	}
	pw, ph := c.PixelWidth(), c.PixelHeight()
	proj := make([]projected, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, ok1 := cam.Project(e.Start, pw, ph)
		x2, y2, d2, ok2 := cam.Project(e.End, pw, ph)
		if ok1 && ok2 {
			proj = append(proj, projected{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		c.DrawLine(e.x1, e.y1, e.x2, e.y2)
	}
}

// TankWireframe builds the caps and walls of a tank with characteristic
// dimension d and height h, normalized so the larger extent spans [-1, 1].
// Cylinders get a vertical edge every fourth segment.
func TankWireframe(shape geometry.Shape, d, h float64, segments int) *Wireframe {
	base := geometry.Outline(shape, d, segments)
	w := NewWireframe()
	if len(base) < 2 || !(h > 0) {
		return w
	}

	r := geometry.Circumradius(shape, d)
	extent := math.Max(r, h/2)
	at := func(p geometry.Point, z float64) Vec3 {
		return Vec3{p.X / extent, (z - h/2) / extent, p.Y / extent}
	}

	step := 1
	if shape.Kind == geometry.KindCylinder {
		step = 4
	}
	for i := 1; i < len(base); i++ {
		w.AddEdge(at(base[i-1], 0), at(base[i], 0))
		w.AddEdge(at(base[i-1], h), at(base[i], h))
		if (i-1)%step == 0 {
			w.AddEdge(at(base[i-1], 0), at(base[i-1], h))
		}
	}
	return w
}
