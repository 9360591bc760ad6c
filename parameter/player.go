package parameter

import "math"

// Paddle geometry and tracking
const (
	PaddleHalfWidth  = 1.0
	PaddleHalfHeight = 0.25
	PaddleHalfDepth  = 0.5

	// PaddleReachMargin extends pointer travel past the viewport half-width
	PaddleReachMargin = 2.0

	// PaddleHeightDivisor places the paddle at -viewport.Height/PaddleHeightDivisor
	PaddleHeightDivisor = 2.5

	// PaddleMaxTilt is the Z rotation at full pointer deflection
	PaddleMaxTilt = math.Pi / 5
)

// Ball
const (
	BallRadius = 0.3
	BallMass   = 1.0

	BallStartX = 0.0
	BallStartY = 3.0
	BallStartZ = 0.0

	// BallLaunchSpeed is the initial straight-up velocity
	BallLaunchSpeed = 5.0
)
