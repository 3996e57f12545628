package chart

import (
	"fmt"
	"strings"

	"github.com/roffe/graphview/pkg/colors"
)

var _ Surface = (*Recorder)(nil)

type Kind int

const (
	KindLine Kind = iota
	KindText
	KindPath
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindText:
		return "text"
	case KindPath:
		return "path"
	case KindCircle:
		return "circle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Primitive is one recorded draw call.
type Primitive struct {
	Kind     Kind
	Points   []Point
	Radius   float32
	Text     string
	Segments []Segment
	Paint    Paint
}

func (p Primitive) String() string {
	var sb strings.Builder
	sb.WriteString(p.Kind.String())
	switch p.Kind {
	case KindLine:
		fmt.Fprintf(&sb, " %s-%s", p.Points[0], p.Points[1])
	case KindText:
		fmt.Fprintf(&sb, " %q at %s", p.Text, p.Points[0])
	case KindCircle:
		fmt.Fprintf(&sb, " %s r=%g", p.Points[0], p.Radius)
	case KindPath:
		fmt.Fprintf(&sb, " segments=%d", len(p.Segments))
		for _, s := range p.Segments {
			fmt.Fprintf(&sb, " %s~%s~%s", s.Start, s.Ctrl, s.End)
		}
	}
	fmt.Fprintf(&sb, " %s %s w=%g", p.Paint.Style, colors.Hex(p.Paint.Color), p.Paint.StrokeWidth)
	return sb.String()
}

// Recorder is a Surface that keeps every draw call in order.
type Recorder struct {
	Primitives []Primitive
}

func (r *Recorder) DrawLine(from, to Point, p Paint) {
	r.Primitives = append(r.Primitives, Primitive{Kind: KindLine, Points: []Point{from, to}, Paint: p})
}

func (r *Recorder) DrawText(text string, at Point, p Paint) {
	r.Primitives = append(r.Primitives, Primitive{Kind: KindText, Points: []Point{at}, Text: text, Paint: p})
}

func (r *Recorder) DrawPath(path *Path, p Paint) {
	r.Primitives = append(r.Primitives, Primitive{Kind: KindPath, Segments: path.Segments(), Paint: p})
}

func (r *Recorder) DrawCircle(center Point, radius float32, p Paint) {
	r.Primitives = append(r.Primitives, Primitive{Kind: KindCircle, Points: []Point{center}, Radius: radius, Paint: p})
}

func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, p := range r.Primitives {
		if p.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded primitives of kind k.
func (r *Recorder) Filter(k Kind) []Primitive {
	var out []Primitive
	for _, p := range r.Primitives {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.Primitives = r.Primitives[:0]
}

func (r *Recorder) String() string {
	var sb strings.Builder
	for _, p := range r.Primitives {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
