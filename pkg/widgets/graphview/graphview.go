// Package graphview is a fyne widget showing a chart.Renderer output.
package graphview

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/graphview/pkg/chart"
	"github.com/roffe/graphview/pkg/colors"
	"github.com/roffe/graphview/pkg/raster"
)

var _ fyne.Widget = (*GraphView)(nil)

type GraphView struct {
	widget.BaseWidget

	chart       *chart.Renderer
	canvasImage *canvas.Image
	frame       *image.RGBA

	background           color.Color
	plotResolutionFactor float32
	minSize              fyne.Size

	size fyne.Size
}

type Opt func(*GraphView)

// WithResolutionFactor renders the chart at size*factor pixels.
func WithResolutionFactor(factor float32) Opt {
	return func(g *GraphView) {
		if factor > 0 {
			g.plotResolutionFactor = factor
		}
	}
}

func WithBackground(c color.Color) Opt {
	return func(g *GraphView) {
		g.background = c
	}
}

func WithMinSize(size fyne.Size) Opt {
	return func(g *GraphView) {
		g.minSize = size
	}
}

func New(cfg chart.Config, opts ...Opt) (*GraphView, error) {
	g := &GraphView{
		canvasImage:          canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
		background:           colors.White,
		plotResolutionFactor: 1.0,
		minSize:              fyne.NewSize(200, 200),
	}
	r, err := chart.New(cfg, chart.WithInvalidator(g.refreshImage))
	if err != nil {
		return nil, err
	}
	g.chart = r
	g.ExtendBaseWidget(g)

	g.canvasImage.FillMode = canvas.ImageFillStretch
	g.canvasImage.ScaleMode = canvas.ImageScaleFastest

	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// SetData replaces the plotted points and repaints. Call from the UI goroutine.
func (g *GraphView) SetData(points []chart.DataPoint) {
	g.chart.SetData(points)
}

func (g *GraphView) Chart() *chart.Renderer {
	return g.chart
}

// Frame returns the last rendered image, nil before the first layout.
func (g *GraphView) Frame() *image.RGBA {
	return g.frame
}

func (g *GraphView) CreateRenderer() fyne.WidgetRenderer {
	return &graphViewRenderer{g}
}

func (g *GraphView) refreshImage() {
	w := int(g.size.Width * g.plotResolutionFactor)
	h := int(g.size.Height * g.plotResolutionFactor)
	if w <= 0 || h <= 0 {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c := raster.New(img)
	c.Clear(g.background)
	g.chart.Render(c, float32(w), float32(h))

	g.frame = img
	g.canvasImage.Image = img
	g.canvasImage.Refresh()
}

type graphViewRenderer struct {
	*GraphView
}

func (r *graphViewRenderer) MinSize() fyne.Size {
	return r.minSize
}

func (r *graphViewRenderer) Layout(size fyne.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.canvasImage.Resize(size)
	r.refreshImage()
}

func (r *graphViewRenderer) Refresh() {
	r.canvasImage.Refresh()
}

func (r *graphViewRenderer) Destroy() {
}

func (r *graphViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvasImage}
}
