package parameter

// World-to-terminal mapping
const (
	// ViewportHeight is the visible world height at the play plane
	ViewportHeight = 11.2

	// CellAspect is terminal cell height over width
	CellAspect = 2.0

	// CameraParallax scales camera X into horizontal cell shift
	CameraParallax = 1.0
)

// Status overlay
const (
	StatusHearts = 3

	StartupPrompt = "Click to start!"

	// StartupPulseRate is the angular rate of the prompt pulse, radians/second
	StartupPulseRate = 2.0
)
