package parameter

// Enemy geometry
const (
	EnemyHalfWidthShort = 0.5
	EnemyHalfWidthLong  = 1.0
	EnemyHalfHeight     = 0.25
	EnemyHalfDepth      = 0.5

	// EnemyTilt is the fixed Z rotation, positive for right-side enemies
	EnemyTilt = 0.1

	// EnemyWrapMargin is the distance past the viewport edge before an enemy wraps
	EnemyWrapMargin = 2.0
)
