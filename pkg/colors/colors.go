package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Android graphics palette used by the graph defaults.
var (
	Black = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	White = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Gray  = color.RGBA{0x88, 0x88, 0x88, 0xFF}
	Blue  = color.RGBA{0x00, 0x00, 0xFF, 0xFF}
	Red   = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	Green = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
)

var colorMap = map[string]color.RGBA{
	"black": Black,
	"white": White,
	"gray":  Gray,
	"grey":  Gray,
	"blue":  Blue,
	"red":   Red,
	"green": Green,
}

// Parse accepts a palette name or a hex string in RRGGBB / RRGGBBAA form, with or without a leading #.
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colorMap[strings.ToLower(s)]; ok {
		return c, nil
	}
	hash := strings.TrimPrefix(s, "#")
	if len(hash) != 6 && len(hash) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	c := color.RGBA{A: 0xFF}
	cs := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i := 0; i < len(hash); i += 2 {
		ui, err := strconv.ParseUint(hash[i:i+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		*cs[i/2] = uint8(ui)
	}
	return c, nil
}

// Hex formats c as #RRGGBBAA.
func Hex(c color.Color) string {
	rgba := ToRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", rgba.R, rgba.G, rgba.B, rgba.A)
}

func ToRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
