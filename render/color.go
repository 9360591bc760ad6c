package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Highlight blends toward white by level in [0, 1]
func (dst RGB) Highlight(level float64) RGB {
	return dst.Blend(RGBWhite, level)
}

// Tcell converts to a true color tcell value
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// ParseColor resolves a W3C/X11 color name or #rrggbb, unknown names fall back to white
func ParseColor(name string) RGB {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault || !c.Valid() {
		return RGBWhite
	}
	r, g, b := c.RGB()
	if r < 0 {
		return RGBWhite
	}
	return RGB{uint8(r), uint8(g), uint8(b)}
}
