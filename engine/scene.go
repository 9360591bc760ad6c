package engine

import (
	"github.com/lixenwraith/pong-patrol/vmath"
)

// Sprite is one drawable body with its material
type Sprite struct {
	Shape    Shape
	Position vmath.Vec3F
	Rotation vmath.Vec3F
	Extents  vmath.Vec3F
	Color    string
	// Highlight in [0, 1] blends Color toward white
	Highlight float64
}

// Scene is the per-frame render snapshot
type Scene struct {
	Viewport Viewport
	CameraX  float64
	Elapsed  float64 // Seconds since the first tick
	Points   int
	Startup  bool
	Sprites  []Sprite
}
