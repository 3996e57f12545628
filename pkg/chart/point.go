package chart

import "fmt"

// DataPoint is a raw sample in data space.
type DataPoint struct {
	X, Y int
}

func (d DataPoint) String() string {
	return fmt.Sprintf("(%d,%d)", d.X, d.Y)
}

// Point is a position in pixel space, y growing downwards.
type Point struct {
	X, Y float32
}

func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Bounds holds the min/max of X and Y across a dataset. All zero for an empty dataset.
type Bounds struct {
	XMin, XMax int
	YMin, YMax int
}

// Dataset is an immutable ordered snapshot of data points.
type Dataset struct {
	points []DataPoint
	bounds Bounds
}

// NewDataset copies points, order preserved, and computes their bounds.
func NewDataset(points []DataPoint) Dataset {
	d := Dataset{points: make([]DataPoint, len(points))}
	copy(d.points, points)
	d.bounds = boundsOf(d.points)
	return d
}

func (d Dataset) Len() int {
	return len(d.points)
}

func (d Dataset) At(i int) DataPoint {
	return d.points[i]
}

func (d Dataset) Bounds() Bounds {
	return d.bounds
}

// Points returns a copy of the points.
func (d Dataset) Points() []DataPoint {
	out := make([]DataPoint, len(d.points))
	copy(out, d.points)
	return out
}

func boundsOf(points []DataPoint) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{
		XMin: points[0].X, XMax: points[0].X,
		YMin: points[0].Y, YMax: points[0].Y,
	}
	for _, p := range points[1:] {
		b.XMin = min(b.XMin, p.X)
		b.XMax = max(b.XMax, p.X)
		b.YMin = min(b.YMin, p.Y)
		b.YMax = max(b.YMax, p.Y)
	}
	return b
}
