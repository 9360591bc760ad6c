package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Ping cue
const (
	PingDuration    = 120 * time.Millisecond
	PingAttack      = 2 * time.Millisecond
	PingRelease     = 100 * time.Millisecond
	PingFundamental = 880.0
	PingOvertone    = 1760.0
)

// Spawn cue
const (
	SpawnDuration  = 250 * time.Millisecond
	SpawnAttack    = 10 * time.Millisecond
	SpawnRelease   = 120 * time.Millisecond
	SpawnStartFreq = 220.0
	SpawnEndFreq   = 880.0
)

// Background loop
const (
	// BackgroundBeat is one beat at 100 BPM
	BackgroundBeat     = 600 * time.Millisecond
	BackgroundKickLen  = 100 * time.Millisecond
	BackgroundBassFreq = 110.0
)

// Default mix levels
const (
	DefaultMasterVolume     = 0.8
	DefaultBackgroundVolume = 0.4
	DefaultPingVolume       = 0.7
	DefaultSpawnVolume      = 0.8
)
