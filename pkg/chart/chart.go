// Package chart maps an integer dataset onto a pixel viewport and draws a
// grid, point markers, a smoothed curve and the axes on a Surface.
//
// A Renderer is not safe for concurrent use, SetData and Render must be
// called from the goroutine owning the surface.
package chart

import (
	"math"
	"strconv"
)

type Option func(*Renderer)

// WithInvalidator registers f to be called whenever SetData makes earlier output stale.
func WithInvalidator(f func()) Option {
	return func(r *Renderer) {
		r.invalidate = f
	}
}

type Renderer struct {
	cfg        Config
	data       Dataset
	invalidate func()
}

func New(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Renderer{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Config() Config {
	return r.cfg
}

func (r *Renderer) Dataset() Dataset {
	return r.data
}

func (r *Renderer) Bounds() Bounds {
	return r.data.Bounds()
}

// SetData replaces the dataset with a copy of points and invalidates the host.
func (r *Renderer) SetData(points []DataPoint) {
	r.data = NewDataset(points)
	if r.invalidate != nil {
		r.invalidate()
	}
}

// Render draws the current dataset on s for a width x height viewport.
func (r *Renderer) Render(s Surface, width, height float32) {
	r.drawVerticalGrid(s, width, height)
	r.drawHorizontalGrid(s, width, height)
	r.drawData(s, width, height)
	r.drawAxes(s, width, height)
}

func (r *Renderer) drawVerticalGrid(s Surface, width, height float32) {
	n := r.cfg.GridLines
	spacing := width / float32(n)
	step := r.cfg.AxisBoundX / n
	for i := 1; i <= n; i++ {
		x := float32(i) * spacing
		s.DrawLine(Pt(x, 0), Pt(x, height), r.cfg.Grid)
		s.DrawText(strconv.Itoa(i*step), Pt(x, height), r.cfg.Text)
	}
}

func (r *Renderer) drawHorizontalGrid(s Surface, width, height float32) {
	n := r.cfg.GridLines
	spacing := height / float32(n)
	step := r.cfg.AxisBoundY / n
	for i := 1; i <= n; i++ {
		y := float32(i) * spacing
		s.DrawLine(Pt(0, y), Pt(width, y), r.cfg.Grid)
		// labels count upwards from the bottom edge
		s.DrawText(strconv.Itoa(i*step), Pt(0, height-y), r.cfg.Text)
	}
}

func (r *Renderer) drawData(s Surface, width, height float32) {
	n := r.data.Len()
	if n == 0 {
		return
	}
	var path Path
	for i := 0; i < n; i++ {
		cur := r.ToScreen(r.data.At(i), width, height)
		if i < n-1 {
			next := r.ToScreen(r.data.At(i+1), width, height)
			if i == 0 {
				path.MoveTo(cur)
			}
			ctrl := Pt(cur.X+(next.X-cur.X)/2, cur.Y)
			path.QuadTo(ctrl, next)
		}
		s.DrawCircle(cur, r.cfg.MarkerRadius, r.cfg.PointFill)
		s.DrawCircle(cur, r.cfg.MarkerRadius, r.cfg.PointOutline)
	}
	if path.Len() > 0 {
		s.DrawPath(&path, r.cfg.Curve)
	}
}

func (r *Renderer) drawAxes(s Surface, width, height float32) {
	s.DrawLine(Pt(0, 0), Pt(0, height), r.cfg.Axis)
	s.DrawLine(Pt(0, height), Pt(width, height), r.cfg.Axis)
}

// ToScreen maps p to pixel space against the dataset bounds, y flipped so it grows upwards.
// A zero bound maps the coordinate onto the origin edge.
func (r *Renderer) ToScreen(p DataPoint, width, height float32) Point {
	b := r.data.Bounds()
	return Point{
		X: scale(p.X, b.XMax, width),
		Y: height - scale(p.Y, b.YMax, height),
	}
}

func scale(v, bound int, extent float32) float32 {
	if bound == 0 {
		return 0
	}
	f := float32(v) / float32(bound) * extent
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return 0
	}
	return f
}
