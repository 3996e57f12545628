package chart

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/roffe/graphview/pkg/colors"
)

var ErrInvalidConfig = errors.New("invalid graph config")

type PaintStyle int

const (
	Fill PaintStyle = iota
	Stroke
)

func (s PaintStyle) String() string {
	switch s {
	case Fill:
		return "fill"
	case Stroke:
		return "stroke"
	}
	return fmt.Sprintf("PaintStyle(%d)", int(s))
}

// Paint describes how a primitive is drawn.
type Paint struct {
	Color       color.Color
	StrokeWidth float32
	Style       PaintStyle
	TextSize    float32
	AntiAlias   bool
}

// Config holds the graph layout and paints.
//
// AxisBoundX and AxisBoundY only scale the grid labels, points are placed
// relative to the dataset bounds.
type Config struct {
	AxisBoundX int
	AxisBoundY int

	// GridLines is the number of grid bands on each axis.
	GridLines    int
	MarkerRadius float32

	PointOutline Paint
	PointFill    Paint
	Text         Paint
	Curve        Paint
	Grid         Paint
	Axis         Paint
}

const (
	DefaultAxisBoundX   = 10
	DefaultAxisBoundY   = 30
	DefaultGridLines    = 10
	DefaultMarkerRadius = 7

	// Upper limits accepted by Validate, raster cost grows with their square.
	MaxMarkerRadius = 1000
	MaxStrokeWidth  = 1000
	MaxTextSize     = 1000
)

func DefaultConfig() Config {
	return Config{
		AxisBoundX:   DefaultAxisBoundX,
		AxisBoundY:   DefaultAxisBoundY,
		GridLines:    DefaultGridLines,
		MarkerRadius: DefaultMarkerRadius,
		PointOutline: Paint{Color: colors.Blue, StrokeWidth: 7, Style: Stroke},
		PointFill:    Paint{Color: colors.White, Style: Fill},
		Text:         Paint{Color: colors.Black, TextSize: 25, Style: Fill},
		Curve:        Paint{Color: colors.Blue, StrokeWidth: 7, Style: Stroke, AntiAlias: true},
		Grid:         Paint{Color: colors.Gray, StrokeWidth: 1, Style: Fill},
		Axis:         Paint{Color: colors.Black, StrokeWidth: 10, Style: Fill},
	}
}

func (c Config) Validate() error {
	if c.GridLines < 1 {
		return fmt.Errorf("%w: grid line count must be at least 1, got %d", ErrInvalidConfig, c.GridLines)
	}
	if c.AxisBoundX < 0 {
		return fmt.Errorf("%w: x axis bound must not be negative, got %d", ErrInvalidConfig, c.AxisBoundX)
	}
	if c.AxisBoundY < 0 {
		return fmt.Errorf("%w: y axis bound must not be negative, got %d", ErrInvalidConfig, c.AxisBoundY)
	}
	if c.MarkerRadius < 0 {
		return fmt.Errorf("%w: marker radius must not be negative, got %g", ErrInvalidConfig, c.MarkerRadius)
	}
	if !(c.MarkerRadius <= MaxMarkerRadius) {
		return fmt.Errorf("%w: marker radius must be at most %d, got %g", ErrInvalidConfig, MaxMarkerRadius, c.MarkerRadius)
	}
	for _, p := range []struct {
		name  string
		paint Paint
	}{
		{"point outline", c.PointOutline},
		{"point fill", c.PointFill},
		{"text", c.Text},
		{"curve", c.Curve},
		{"grid", c.Grid},
		{"axis", c.Axis},
	} {
		if p.paint.Color == nil {
			return fmt.Errorf("%w: %s paint has no color", ErrInvalidConfig, p.name)
		}
		if p.paint.StrokeWidth < 0 {
			return fmt.Errorf("%w: %s stroke width must not be negative, got %g", ErrInvalidConfig, p.name, p.paint.StrokeWidth)
		}
		if !(p.paint.StrokeWidth <= MaxStrokeWidth) {
			return fmt.Errorf("%w: %s stroke width must be at most %d, got %g", ErrInvalidConfig, p.name, MaxStrokeWidth, p.paint.StrokeWidth)
		}
	}
	if c.Text.TextSize <= 0 {
		return fmt.Errorf("%w: text size must be positive, got %g", ErrInvalidConfig, c.Text.TextSize)
	}
	if !(c.Text.TextSize <= MaxTextSize) {
		return fmt.Errorf("%w: text size must be at most %d, got %g", ErrInvalidConfig, MaxTextSize, c.Text.TextSize)
	}
	return nil
}
