package render

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/parameter"
	"github.com/lixenwraith/pong-patrol/vmath"
)

// Renderer draws scenes to a tcell screen
// All methods must be called from the goroutine that owns the screen
type Renderer struct {
	screen tcell.Screen
	proj   Projection
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize recomputes the projection from the current screen size
func (r *Renderer) Resize() {
	cols, rows := r.screen.Size()
	r.proj = NewProjection(cols, rows)
}

// Viewport returns the visible play plane in world units
func (r *Renderer) Viewport() engine.Viewport {
	return r.proj.Viewport()
}

// Projection returns the current cell mapping
func (r *Renderer) Projection() Projection {
	return r.proj
}

// HideCursor hides the terminal cursor
func (r *Renderer) HideCursor() {
	r.screen.HideCursor()
}

// Draw renders one frame: bodies, then the status overlay, then the startup prompt
func (r *Renderer) Draw(scene engine.Scene) {
	r.proj.CameraX = scene.CameraX
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	for _, s := range scene.Sprites {
		r.drawSprite(s, bg)
	}

	r.drawStatus(scene.Points, bg)
	if scene.Startup {
		r.drawPrompt(scene.Elapsed, bg)
	}

	r.screen.Show()
}

func (r *Renderer) drawSprite(s engine.Sprite, bg tcell.Style) {
	color := ParseColor(s.Color).Highlight(s.Highlight)
	style := bg.Foreground(color.Tcell())

	glyph := GlyphBody
	inside := func(local vmath.Vec3F) bool {
		return math.Abs(local.X) <= s.Extents.X && math.Abs(local.Y) <= s.Extents.Y
	}
	reach := math.Hypot(s.Extents.X, s.Extents.Y)

	switch s.Shape {
	case engine.ShapeSphere:
		glyph = GlyphBall
		inside = func(local vmath.Vec3F) bool {
			return local.X*local.X+local.Y*local.Y <= s.Extents.X*s.Extents.X
		}
		reach = s.Extents.X
	case engine.ShapeBox:
	default:
		return
	}

	c0, r0 := r.proj.ToCell(s.Position.X-reach, s.Position.Y+reach)
	c1, r1 := r.proj.ToCell(s.Position.X+reach, s.Position.Y-reach)

	drawn := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !r.proj.Contains(col, row) {
				continue
			}
			x, y := r.proj.ToWorld(col, row)
			local := vmath.RotateZ(vmath.V3FSub(vmath.V3F(x, y, 0), vmath.V3F(s.Position.X, s.Position.Y, 0)), -s.Rotation.Z)
			if inside(local) {
				r.screen.SetContent(col, row, glyph, nil, style)
				drawn = true
			}
		}
	}

	// Bodies smaller than a cell still occupy the cell under their center
	if !drawn {
		col, row := r.proj.ToCell(s.Position.X, s.Position.Y)
		if r.proj.Contains(col, row) {
			r.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

// drawStatus shows the score top-left and the hearts top-right
func (r *Renderer) drawStatus(points int, bg tcell.Style) {
	r.drawText(1, 0, strconv.Itoa(points), bg.Foreground(RgbStatusBar).Bold(true))

	heart := bg.Foreground(RgbHeart)
	start := r.proj.Cols - 2*parameter.StatusHearts
	for i := 0; i < parameter.StatusHearts; i++ {
		col := start + 2*i
		if col >= 0 {
			r.screen.SetContent(col, 0, GlyphHeart, nil, heart)
		}
	}
}

// drawPrompt centers the start prompt, pulsing its emphasis over time
func (r *Renderer) drawPrompt(elapsed float64, bg tcell.Style) {
	style := bg.Foreground(RgbPromptDim)
	if PromptPulse(elapsed) > 1.02 {
		style = bg.Foreground(RgbPrompt).Bold(true)
	}

	text := parameter.StartupPrompt
	col := (r.proj.Cols - len(text)) / 2
	if col < 0 {
		col = 0
	}
	r.drawText(col, r.proj.Rows/2, text, style)
}

// PromptPulse returns the prompt scale factor at time t
func PromptPulse(t float64) float64 {
	return 1 + 0.02*(1+math.Sin(parameter.StartupPulseRate*t))
}

func (r *Renderer) drawText(col, row int, text string, style tcell.Style) {
	for _, ch := range text {
		if col >= r.proj.Cols {
			return
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}
