package raster

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// box is an axis aligned clip rectangle in float pixel space.
type box struct {
	x0, y0, x1, y1 float64
}

// padded returns r grown by pad pixels on every side.
func padded(r image.Rectangle, pad float64) box {
	return box{
		x0: float64(r.Min.X) - pad,
		y0: float64(r.Min.Y) - pad,
		x1: float64(r.Max.X) + pad,
		y1: float64(r.Max.Y) + pad,
	}
}

func (b box) contains(pts ...gg.Point) bool {
	for _, p := range pts {
		if !(p.X >= b.x0 && p.X <= b.x1 && p.Y >= b.y0 && p.Y <= b.y1) {
			return false
		}
	}
	return true
}

// clipLine cuts the segment a-b down to the part inside b using Liang-Barsky.
// ok is false when no part of the segment is inside. Endpoints that are
// already inside are returned unchanged.
func clipLine(a, b gg.Point, bx box) (gg.Point, gg.Point, bool) {
	if !finite(a) || !finite(b) {
		return a, b, false
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, a.X - bx.x0},
		{dx, bx.x1 - a.X},
		{-dy, a.Y - bx.y0},
		{dy, bx.y1 - a.Y},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = min(t1, r)
		}
	}
	from, to := a, b
	if t0 > 0 {
		from = gg.Point{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	if t1 < 1 {
		to = gg.Point{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}
	return from, to, true
}

func finite(p gg.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
