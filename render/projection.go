package render

import (
	"math"

	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/parameter"
)

// Projection maps the play plane onto terminal cells
// World origin sits at the screen center, Y up; the visible height is fixed
type Projection struct {
	Cols, Rows  int
	UnitsPerRow float64
	UnitsPerCol float64
	CameraX     float64
}

// NewProjection sizes the projection for a cols x rows terminal
func NewProjection(cols, rows int) Projection {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	perRow := parameter.ViewportHeight / float64(rows)
	return Projection{
		Cols:        cols,
		Rows:        rows,
		UnitsPerRow: perRow,
		UnitsPerCol: perRow / parameter.CellAspect,
	}
}

// Viewport returns the visible play plane in world units
func (p Projection) Viewport() engine.Viewport {
	return engine.Viewport{
		Width:  float64(p.Cols) * p.UnitsPerCol,
		Height: float64(p.Rows) * p.UnitsPerRow,
	}
}

// ToCell returns the cell containing world point (x, y)
func (p Projection) ToCell(x, y float64) (col, row int) {
	sx := (x-p.CameraX*parameter.CameraParallax)/p.UnitsPerCol + float64(p.Cols)/2
	sy := float64(p.Rows)/2 - y/p.UnitsPerRow
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// ToWorld returns the world point at the center of a cell
func (p Projection) ToWorld(col, row int) (x, y float64) {
	x = (float64(col)+0.5-float64(p.Cols)/2)*p.UnitsPerCol + p.CameraX*parameter.CameraParallax
	y = (float64(p.Rows)/2 - float64(row) - 0.5) * p.UnitsPerRow
	return x, y
}

// Contains reports whether a cell lies on screen
func (p Projection) Contains(col, row int) bool {
	return col >= 0 && col < p.Cols && row >= 0 && row < p.Rows
}
