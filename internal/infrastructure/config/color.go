package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa" into an opaque or translucent RGBA.
// The result is premultiplied, as image/color expects.
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("color %q must start with #", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q has invalid length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("failed to parse color %q: %w", s, err)
	}
	c := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}, nil
}

// MustColor is ParseColor for values already checked by Validate.
// Invalid input yields opaque magenta.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.RGBA{R: 255, B: 255, A: 255}
	}
	return c
}

// colors returns every color string the world references, with its location
func (c *WorldConfig) colors() map[string]string {
	out := map[string]string{}
	if c.Background != "" {
		out["background"] = c.Background
	}
	for i, l := range c.Terrain.Layers {
		out[fmt.Sprintf("layers[%d].color", i)] = l.Color
		if l.Stroke != "" {
			out[fmt.Sprintf("layers[%d].stroke", i)] = l.Stroke
		}
		if l.Basement != nil {
			out[fmt.Sprintf("layers[%d].basement.color", i)] = l.Basement.Color
			out[fmt.Sprintf("layers[%d].basement.windows", i)] = l.Basement.Windows
		}
	}
	for i, s := range c.Smoke {
		out[fmt.Sprintf("smoke[%d].color", i)] = s.Color
	}
	return out
}
