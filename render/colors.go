package render

import (
	"github.com/gdamore/tcell/v2"
)

// Screen palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbHeart      = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbPrompt     = tcell.NewRGBColor(255, 255, 255)
	RgbPromptDim  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// Glyphs
const (
	GlyphBody  = '█'
	GlyphBall  = '●'
	GlyphHeart = '♥'
)
