package parameter

import "time"

// Scoring
const (
	// ScoreImpactThreshold is the impact velocity a contact must exceed to award a point
	ScoreImpactThreshold = 4.0
)

// Round lifecycle
const (
	// RestartPulseDuration is how long the restart flag stays raised after a death
	// Long enough for one render tick to observe it
	RestartPulseDuration = 10 * time.Millisecond
)

// Frame timing
const (
	// FrameUpdateInterval is the default tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the simulated step after stalls, in seconds
	MaxFrameDelta = 1.0 / 30.0
)

// Impact highlight
const (
	// ImpulseMagnitude is the highlight value emitted on contact
	ImpulseMagnitude = 10.0
)
