// Package settings persists the graph configuration in the fyne preferences store.
package settings

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"github.com/roffe/graphview/pkg/chart"
	"github.com/roffe/graphview/pkg/colors"
)

const (
	prefsAxisBoundX     = "axisBoundX"
	prefsAxisBoundY     = "axisBoundY"
	prefsGridLineCount  = "gridLineCount"
	prefsMarkerRadius   = "markerRadius"
	prefsPointColor     = "pointColor"
	prefsPointFillColor = "pointFillColor"
	prefsGridColor      = "gridColor"
	prefsAxisColor      = "axisColor"
	prefsCurveColor     = "curveColor"
	prefsTextColor      = "textColor"

	prefsPointStrokeWidth = "pointStrokeWidth"
	prefsCurveStrokeWidth = "curveStrokeWidth"
	prefsGridStrokeWidth  = "gridStrokeWidth"
	prefsAxisStrokeWidth  = "axisStrokeWidth"
	prefsTextSize         = "textSize"
	prefsCurveAntiAlias   = "curveAntiAlias"
)

// floatKeys maps the float preferences onto their config fields.
func floatKeys(cfg *chart.Config) []struct {
	key string
	dst *float32
} {
	return []struct {
		key string
		dst *float32
	}{
		{prefsMarkerRadius, &cfg.MarkerRadius},
		{prefsPointStrokeWidth, &cfg.PointOutline.StrokeWidth},
		{prefsCurveStrokeWidth, &cfg.Curve.StrokeWidth},
		{prefsGridStrokeWidth, &cfg.Grid.StrokeWidth},
		{prefsAxisStrokeWidth, &cfg.Axis.StrokeWidth},
		{prefsTextSize, &cfg.Text.TextSize},
	}
}

// Load builds a chart config from p, falling back to chart.DefaultConfig for missing keys.
func Load(p fyne.Preferences) (chart.Config, error) {
	cfg := chart.DefaultConfig()
	cfg.AxisBoundX = p.IntWithFallback(prefsAxisBoundX, cfg.AxisBoundX)
	cfg.AxisBoundY = p.IntWithFallback(prefsAxisBoundY, cfg.AxisBoundY)
	cfg.GridLines = p.IntWithFallback(prefsGridLineCount, cfg.GridLines)
	for _, f := range floatKeys(&cfg) {
		*f.dst = float32(p.FloatWithFallback(f.key, float64(*f.dst)))
	}
	cfg.Curve.AntiAlias = p.BoolWithFallback(prefsCurveAntiAlias, cfg.Curve.AntiAlias)

	for _, c := range []struct {
		key string
		dst *color.Color
	}{
		{prefsPointColor, &cfg.PointOutline.Color},
		{prefsPointFillColor, &cfg.PointFill.Color},
		{prefsGridColor, &cfg.Grid.Color},
		{prefsAxisColor, &cfg.Axis.Color},
		{prefsCurveColor, &cfg.Curve.Color},
		{prefsTextColor, &cfg.Text.Color},
	} {
		raw := p.String(c.key)
		if raw == "" {
			continue
		}
		col, err := colors.Parse(raw)
		if err != nil {
			return cfg, fmt.Errorf("setting %s: %w", c.key, err)
		}
		*c.dst = col
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to p after validating it.
func Save(p fyne.Preferences, cfg chart.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.SetInt(prefsAxisBoundX, cfg.AxisBoundX)
	p.SetInt(prefsAxisBoundY, cfg.AxisBoundY)
	p.SetInt(prefsGridLineCount, cfg.GridLines)
	for _, f := range floatKeys(&cfg) {
		p.SetFloat(f.key, float64(*f.dst))
	}
	p.SetBool(prefsCurveAntiAlias, cfg.Curve.AntiAlias)
	p.SetString(prefsPointColor, colors.Hex(cfg.PointOutline.Color))
	p.SetString(prefsPointFillColor, colors.Hex(cfg.PointFill.Color))
	p.SetString(prefsGridColor, colors.Hex(cfg.Grid.Color))
	p.SetString(prefsAxisColor, colors.Hex(cfg.Axis.Color))
	p.SetString(prefsCurveColor, colors.Hex(cfg.Curve.Color))
	p.SetString(prefsTextColor, colors.Hex(cfg.Text.Color))
	return nil
}
