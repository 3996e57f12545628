package chart_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/roffe/graphview/pkg/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T, opts ...chart.Option) *chart.Renderer {
	t.Helper()
	r, err := chart.New(chart.DefaultConfig(), opts...)
	require.NoError(t, err)
	return r
}

func render(r *chart.Renderer, w, h float32) *chart.Recorder {
	rec := &chart.Recorder{}
	r.Render(rec, w, h)
	return rec
}

func TestSetDataBounds(t *testing.T) {
	tests := []struct {
		name   string
		points []chart.DataPoint
		want   chart.Bounds
	}{
		{
			name: "empty",
			want: chart.Bounds{},
		},
		{
			name:   "single",
			points: []chart.DataPoint{{X: 3, Y: -4}},
			want:   chart.Bounds{XMin: 3, XMax: 3, YMin: -4, YMax: -4},
		},
		{
			name:   "scenario",
			points: []chart.DataPoint{{0, 1}, {5, 10}, {10, 5}},
			want:   chart.Bounds{XMin: 0, XMax: 10, YMin: 1, YMax: 10},
		},
		{
			name:   "unsorted",
			points: []chart.DataPoint{{7, 2}, {-3, 9}, {4, -1}},
			want:   chart.Bounds{XMin: -3, XMax: 7, YMin: -1, YMax: 9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRenderer(t)
			r.SetData(tt.points)
			assert.Equal(t, tt.want, r.Bounds())
			assert.Equal(t, len(tt.points), r.Dataset().Len())
		})
	}
}

func TestBoundsMatchTrueMinMax(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	r := newRenderer(t)
	for range 50 {
		n := 1 + rnd.IntN(40)
		points := make([]chart.DataPoint, n)
		xMin, xMax, yMin, yMax := math.MaxInt, math.MinInt, math.MaxInt, math.MinInt
		for i := range points {
			points[i] = chart.DataPoint{X: rnd.IntN(200) - 100, Y: rnd.IntN(200) - 100}
			xMin, xMax = min(xMin, points[i].X), max(xMax, points[i].X)
			yMin, yMax = min(yMin, points[i].Y), max(yMax, points[i].Y)
		}
		r.SetData(points)
		assert.Equal(t, chart.Bounds{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}, r.Bounds())
	}
}

func TestSetDataCopiesInput(t *testing.T) {
	r := newRenderer(t)
	points := []chart.DataPoint{{1, 1}, {2, 2}}
	r.SetData(points)
	points[0] = chart.DataPoint{X: 100, Y: 100}

	assert.Equal(t, chart.DataPoint{X: 1, Y: 1}, r.Dataset().At(0))
	assert.Equal(t, 2, r.Bounds().XMax)

	out := r.Dataset().Points()
	out[1] = chart.DataPoint{}
	assert.Equal(t, chart.DataPoint{X: 2, Y: 2}, r.Dataset().At(1))
}

func TestSetDataInvalidates(t *testing.T) {
	calls := 0
	r := newRenderer(t, chart.WithInvalidator(func() { calls++ }))
	r.SetData(nil)
	r.SetData([]chart.DataPoint{{1, 2}})
	assert.Equal(t, 2, calls)
}

func TestRenderScenario(t *testing.T) {
	cfg := chart.DefaultConfig()
	cfg.AxisBoundX = 10
	cfg.AxisBoundY = 30
	r, err := chart.New(cfg)
	require.NoError(t, err)
	r.SetData([]chart.DataPoint{{0, 1}, {5, 10}, {10, 5}})

	assert.Equal(t, chart.Bounds{XMin: 0, XMax: 10, YMin: 1, YMax: 10}, r.Bounds())

	p := r.ToScreen(chart.DataPoint{X: 5, Y: 10}, 100, 100)
	assert.InDelta(t, 50, p.X, 1e-4)
	assert.InDelta(t, 0, p.Y, 1e-4)
	p = r.ToScreen(chart.DataPoint{X: 10, Y: 5}, 100, 100)
	assert.InDelta(t, 100, p.X, 1e-4)
	assert.InDelta(t, 50, p.Y, 1e-4)

	rec := render(r, 100, 100)
	circles := rec.Filter(chart.KindCircle)
	require.Len(t, circles, 6)
	want := []chart.Point{{0, 90}, {50, 0}, {100, 50}}
	for i, w := range want {
		fill, outline := circles[2*i], circles[2*i+1]
		assert.InDelta(t, w.X, fill.Points[0].X, 1e-4)
		assert.InDelta(t, w.Y, fill.Points[0].Y, 1e-4)
		assert.Equal(t, fill.Points[0], outline.Points[0])
		assert.Equal(t, chart.Fill, fill.Paint.Style)
		assert.Equal(t, chart.Stroke, outline.Paint.Style)
		assert.Equal(t, float32(7), fill.Radius)
	}

	paths := rec.Filter(chart.KindPath)
	require.Len(t, paths, 1)
	segs := paths[0].Segments
	require.Len(t, segs, 2)
	assert.InDelta(t, 25, segs[0].Ctrl.X, 1e-4)
	assert.InDelta(t, 90, segs[0].Ctrl.Y, 1e-4)
	assert.InDelta(t, 75, segs[1].Ctrl.X, 1e-4)
	assert.InDelta(t, 0, segs[1].Ctrl.Y, 1e-4)
	assert.Equal(t, segs[0].End, segs[1].Start)

	texts := rec.Filter(chart.KindText)
	require.Len(t, texts, 20)
	assert.Equal(t, "1", texts[0].Text)
	assert.Equal(t, chart.Pt(10, 100), texts[0].Points[0])
	assert.Equal(t, "10", texts[9].Text)
	assert.Equal(t, "3", texts[10].Text)
	assert.Equal(t, chart.Pt(0, 90), texts[10].Points[0])
	assert.Equal(t, "30", texts[19].Text)
}

func TestRenderOrder(t *testing.T) {
	r := newRenderer(t)
	r.SetData([]chart.DataPoint{{0, 1}, {5, 10}, {10, 5}})
	rec := render(r, 100, 100)

	var kinds []chart.Kind
	for _, p := range rec.Primitives {
		kinds = append(kinds, p.Kind)
	}
	var want []chart.Kind
	for range 20 {
		want = append(want, chart.KindLine, chart.KindText)
	}
	for range 3 {
		want = append(want, chart.KindCircle, chart.KindCircle)
	}
	want = append(want, chart.KindPath, chart.KindLine, chart.KindLine)
	assert.Equal(t, want, kinds)

	n := len(rec.Primitives)
	cfg := r.Config()
	assert.Equal(t, []chart.Point{{0, 0}, {0, 100}}, rec.Primitives[n-2].Points)
	assert.Equal(t, []chart.Point{{0, 100}, {100, 100}}, rec.Primitives[n-1].Points)
	assert.Equal(t, cfg.Axis, rec.Primitives[n-1].Paint)
}

func TestRenderEmpty(t *testing.T) {
	r := newRenderer(t)
	r.SetData(nil)
	rec := render(r, 200, 200)

	assert.Equal(t, 22, rec.Count(chart.KindLine))
	assert.Equal(t, 20, rec.Count(chart.KindText))
	assert.Equal(t, 0, rec.Count(chart.KindCircle))
	assert.Equal(t, 0, rec.Count(chart.KindPath))

	grid := 0
	for _, l := range rec.Filter(chart.KindLine) {
		if l.Paint == r.Config().Grid {
			grid++
		}
	}
	assert.Equal(t, 20, grid)
}

func TestRenderSinglePoint(t *testing.T) {
	r := newRenderer(t)
	r.SetData([]chart.DataPoint{{4, 8}})
	rec := render(r, 100, 100)

	assert.Equal(t, 2, rec.Count(chart.KindCircle))
	assert.Equal(t, 0, rec.Count(chart.KindPath))
	c := rec.Filter(chart.KindCircle)[0]
	assert.Equal(t, chart.Pt(100, 0), c.Points[0])
}

func TestCurveSegmentCount(t *testing.T) {
	r := newRenderer(t)
	for n := 0; n <= 12; n++ {
		points := make([]chart.DataPoint, n)
		for i := range points {
			points[i] = chart.DataPoint{X: i, Y: i%3 + 1}
		}
		r.SetData(points)
		rec := render(r, 320, 240)
		segments := 0
		for _, p := range rec.Filter(chart.KindPath) {
			segments += len(p.Segments)
		}
		assert.Equal(t, max(0, n-1), segments, "n=%d", n)
	}
}

func TestMarkerScreenY(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	r := newRenderer(t)
	points := make([]chart.DataPoint, 25)
	for i := range points {
		points[i] = chart.DataPoint{X: i, Y: 1 + rnd.IntN(30)}
	}
	r.SetData(points)
	const w, h = 640, 480
	rec := render(r, w, h)
	circles := rec.Filter(chart.KindCircle)
	require.Len(t, circles, 2*len(points))
	yMax := float64(r.Bounds().YMax)
	for i, p := range points {
		want := h - float64(p.Y)/yMax*h
		assert.InDelta(t, want, circles[2*i].Points[0].Y, 1e-3)
	}
}

func TestRenderDegenerateBounds(t *testing.T) {
	tests := []struct {
		name   string
		points []chart.DataPoint
	}{
		{name: "all zero", points: []chart.DataPoint{{0, 0}, {0, 0}, {0, 0}}},
		{name: "zero x", points: []chart.DataPoint{{0, 3}, {0, 6}}},
		{name: "zero y", points: []chart.DataPoint{{2, 0}, {4, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRenderer(t)
			r.SetData(tt.points)
			rec := render(r, 100, 50)
			for _, p := range rec.Primitives {
				for _, pt := range p.Points {
					assert.False(t, math.IsNaN(float64(pt.X)) || math.IsNaN(float64(pt.Y)), p.String())
					assert.False(t, math.IsInf(float64(pt.X), 0) || math.IsInf(float64(pt.Y), 0), p.String())
				}
			}
			b := r.Bounds()
			for _, c := range rec.Filter(chart.KindCircle) {
				if b.XMax == 0 {
					assert.Equal(t, float32(0), c.Points[0].X)
				}
				if b.YMax == 0 {
					assert.Equal(t, float32(50), c.Points[0].Y)
				}
			}
			assert.Equal(t, len(tt.points)-1, len(rec.Filter(chart.KindPath)[0].Segments))
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	r := newRenderer(t)
	r.SetData([]chart.DataPoint{{0, 3}, {1, 7}, {2, 2}, {3, 9}})
	assert.Equal(t, render(r, 300, 200).Primitives, render(r, 300, 200).Primitives)
}

func TestSetDataReplaces(t *testing.T) {
	b := []chart.DataPoint{{0, 2}, {4, 4}}

	r := newRenderer(t)
	r.SetData([]chart.DataPoint{{0, 100}, {50, 1}, {100, 30}, {7, 7}})
	render(r, 300, 200)
	r.SetData(b)

	fresh := newRenderer(t)
	fresh.SetData(b)

	assert.Equal(t, render(fresh, 300, 200).Primitives, render(r, 300, 200).Primitives)
}

func TestGridLines(t *testing.T) {
	cfg := chart.DefaultConfig()
	cfg.GridLines = 4
	cfg.AxisBoundX = 100
	cfg.AxisBoundY = 8
	r, err := chart.New(cfg)
	require.NoError(t, err)
	rec := render(r, 200, 100)

	texts := rec.Filter(chart.KindText)
	require.Len(t, texts, 8)
	var labels []string
	for _, tx := range texts {
		labels = append(labels, tx.Text)
	}
	assert.Equal(t, []string{"25", "50", "75", "100", "2", "4", "6", "8"}, labels)

	lines := rec.Filter(chart.KindLine)
	require.Len(t, lines, 10)
	assert.Equal(t, []chart.Point{{50, 0}, {50, 100}}, lines[0].Points)
	assert.Equal(t, []chart.Point{{0, 25}, {200, 25}}, lines[4].Points)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := chart.DefaultConfig()
	cfg.GridLines = -1
	r, err := chart.New(cfg)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, chart.ErrInvalidConfig)
}
