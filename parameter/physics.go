package parameter

// World physics defaults
const (
	Gravity     = -30.0
	Restitution = 1.07

	// MaxBodySpeed clamps dynamic bodies since restitution above 1 adds energy
	MaxBodySpeed = 25.0

	// PhysicsSubsteps is the number of integration substeps per frame
	PhysicsSubsteps = 4
)

// Boundaries
const (
	// WallOffset pushes side walls out past the viewport edge
	WallOffset = 2.0

	// DeathPlaneDepth places the bottom plane at -viewport.Height*DeathPlaneDepth
	DeathPlaneDepth = 2.0
)
