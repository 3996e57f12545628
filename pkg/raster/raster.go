// Package raster draws chart primitives into an *image.RGBA.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/roffe/graphview/pkg/chart"
	"github.com/roffe/graphview/pkg/colors"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var _ chart.Surface = (*Canvas)(nil)

// curveSteps is the number of line pieces a quadratic segment is split into
// when it reaches outside the image and has to be clipped.
const curveSteps = 24

type Canvas struct {
	img  *image.RGBA
	face font.Face
	dc   *gg.Context
}

func New(img *image.RGBA) *Canvas {
	return &Canvas{
		img:  img,
		face: basicfont.Face7x13,
		dc:   gg.NewContextForRGBA(img),
	}
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Clear(col color.Color) {
	xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, xdraw.Src)
}

// SetRGBA blends col over the pixel at x, y. Out of bounds writes are dropped.
func (c *Canvas) SetRGBA(x, y int, col color.RGBA) {
	if !(image.Point{x, y}.In(c.img.Rect)) {
		return
	}
	switch col.A {
	case 0:
		return
	case 0xff:
		c.img.SetRGBA(x, y, col)
		return
	}
	dst := c.img.RGBAAt(x, y)
	inv := uint32(0xff - col.A)
	c.img.SetRGBA(x, y, color.RGBA{
		R: uint8(uint32(col.R) + uint32(dst.R)*inv/0xff),
		G: uint8(uint32(col.G) + uint32(dst.G)*inv/0xff),
		B: uint8(uint32(col.B) + uint32(dst.B)*inv/0xff),
		A: uint8(uint32(col.A) + uint32(dst.A)*inv/0xff),
	})
}

// DrawLine draws a straight line with Bresenham, clipped to the image first.
func (c *Canvas) DrawLine(from, to chart.Point, p chart.Paint) {
	thick := thickness(p)
	a, b, ok := clipLine(pt(from), pt(to), padded(c.img.Rect, float64(thick)))
	if !ok {
		return
	}
	BresenhamThick(c, roundf(a.X), roundf(a.Y), roundf(b.X), roundf(b.Y), thick, colors.ToRGBA(p.Color))
}

func (c *Canvas) DrawCircle(center chart.Point, radius float32, p chart.Paint) {
	o := pt(center)
	r := math.Max(float64(radius), 0)
	ext := r + lineWidth(p)/2 + 1
	if !finite(o) || !padded(c.img.Rect, ext).contains(o) {
		return
	}
	area := image.Rect(
		int(math.Floor(o.X-ext)), int(math.Floor(o.Y-ext)),
		int(math.Ceil(o.X+ext)), int(math.Ceil(o.Y+ext)),
	)
	c.shape(area, p, func(dc *gg.Context) {
		dc.DrawCircle(o.X, o.Y, r)
	})
}

// DrawPath draws the quadratic segments of path. Segments that stay near the
// image are handed to gg as curves; the rest are split into line pieces and
// clipped so the rasterizer never walks far outside the image.
func (c *Canvas) DrawPath(path *chart.Path, p chart.Paint) {
	segs := path.Segments()
	if len(segs) == 0 {
		return
	}
	bx := padded(c.img.Rect, lineWidth(p)+1)
	c.shape(c.img.Rect, p, func(dc *gg.Context) {
		var pen gg.Point
		open := false
		lineTo := func(a, b gg.Point) {
			if !open || a != pen {
				dc.MoveTo(a.X, a.Y)
			}
			dc.LineTo(b.X, b.Y)
			pen, open = b, true
		}
		for _, s := range segs {
			start, ctrl, end := pt(s.Start), pt(s.Ctrl), pt(s.End)
			if bx.contains(start, ctrl, end) {
				if !open || start != pen {
					dc.MoveTo(start.X, start.Y)
				}
				dc.QuadraticTo(ctrl.X, ctrl.Y, end.X, end.Y)
				pen, open = end, true
				continue
			}
			prev := start
			for i := 1; i <= curveSteps; i++ {
				next := pt(s.At(float32(i) / curveSteps))
				if a, b, ok := clipLine(prev, next, bx); ok {
					lineTo(a, b)
				}
				prev = next
			}
		}
	})
}

// shape traces a gg path and paints it with p. Antialiased paints are drawn
// straight into the image. Otherwise the path is rasterized into a scratch
// mask covering area and every pixel with at least half coverage is set.
func (c *Canvas) shape(area image.Rectangle, p chart.Paint, trace func(dc *gg.Context)) {
	area = area.Intersect(c.img.Rect)
	if area.Empty() {
		return
	}
	col := colors.ToRGBA(p.Color)
	if p.AntiAlias {
		c.dc.SetColor(col)
		finish(c.dc, p, trace)
		return
	}

	mask := gg.NewContext(area.Dx(), area.Dy())
	mask.Translate(float64(-area.Min.X), float64(-area.Min.Y))
	mask.SetColor(color.White)
	finish(mask, p, trace)

	m, ok := mask.Image().(*image.RGBA)
	if !ok {
		return
	}
	for y := 0; y < area.Dy(); y++ {
		for x := 0; x < area.Dx(); x++ {
			if m.Pix[m.PixOffset(x, y)+3] >= 0x80 {
				c.SetRGBA(area.Min.X+x, area.Min.Y+y, col)
			}
		}
	}
}

func finish(dc *gg.Context, p chart.Paint, trace func(dc *gg.Context)) {
	trace(dc)
	if p.Style == chart.Stroke {
		dc.SetLineWidth(lineWidth(p))
		dc.SetLineCap(gg.LineCapButt)
		dc.SetLineJoin(gg.LineJoinRound)
		dc.Stroke()
		return
	}
	dc.Fill()
}

// DrawText renders text with its baseline at the anchor, scaled to the paint text size.
// The text box is kept inside the image so edge labels stay readable.
func (c *Canvas) DrawText(text string, at chart.Point, p chart.Paint) {
	if text == "" {
		return
	}
	metrics := c.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	w := font.MeasureString(c.face, text).Ceil()
	h := metrics.Height.Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(p.Color),
		Face: c.face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)

	scale := float64(p.TextSize) / float64(h)
	if scale <= 0 {
		scale = 1
	}
	dw := max(int(math.Round(float64(w)*scale)), 1)
	dh := max(int(math.Round(float64(h)*scale)), 1)

	b := c.img.Bounds()
	x := clamp(round(at.X), b.Min.X, b.Max.X-dw)
	y := clamp(round(at.Y)-int(math.Round(float64(ascent)*scale)), b.Min.Y, b.Max.Y-dh)

	xdraw.ApproxBiLinear.Scale(c.img, image.Rect(x, y, x+dw, y+dh), glyphs, glyphs.Bounds(), xdraw.Over, nil)
}

func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func thickness(p chart.Paint) int {
	return max(round(p.StrokeWidth), 1)
}

// lineWidth is the gg stroke width, a zero width strokes a hairline.
func lineWidth(p chart.Paint) float64 {
	return math.Max(float64(p.StrokeWidth), 1)
}

func pt(p chart.Point) gg.Point {
	return gg.Point{X: float64(p.X), Y: float64(p.Y)}
}

func roundf(f float64) int {
	return int(math.Round(f))
}

func round(f float32) int {
	return int(math.Round(float64(f)))
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
