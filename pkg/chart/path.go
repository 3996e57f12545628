package chart

// Segment is one quadratic Bézier piece of a Path.
type Segment struct {
	Start, Ctrl, End Point
}

// At evaluates the segment at t in [0,1].
func (s Segment) At(t float32) Point {
	u := 1 - t
	return Point{
		X: u*u*s.Start.X + 2*u*t*s.Ctrl.X + t*t*s.End.X,
		Y: u*u*s.Start.Y + 2*u*t*s.Ctrl.Y + t*t*s.End.Y,
	}
}

// Path is a builder for a sequence of quadratic curves.
// A QuadTo without a preceding MoveTo starts at the origin.
type Path struct {
	cur      Point
	segments []Segment
}

func (p *Path) MoveTo(pt Point) {
	p.cur = pt
}

func (p *Path) QuadTo(ctrl, end Point) {
	p.segments = append(p.segments, Segment{Start: p.cur, Ctrl: ctrl, End: end})
	p.cur = end
}

func (p *Path) Len() int {
	return len(p.segments)
}

func (p *Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}
