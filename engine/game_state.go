package engine

import (
	"sync"

	"github.com/lixenwraith/pong-patrol/parameter"
)

// GameState is the single shared mutable game resource
// Mutation is restricted to Start, Reset and Contact
// Access is mutex protected since the restart clear fires on a timer goroutine
type GameState struct {
	mu sync.RWMutex

	points  int
	startup bool
	restart bool

	// Read-only after construction
	enemies []EnemySpec

	// Pending restart clear, replaced on every Reset
	clearTimer Timer
	clearGen   uint64

	restartListeners []func()

	sched  Scheduler
	audio  AudioPlayer
	cursor CursorHider
}

// GameSnapshot is a consistent read of the mutable fields
type GameSnapshot struct {
	Points  int
	Startup bool
	Restart bool
}

// NewGameState creates the game state with startup raised and zero points
// A nil roster selects DefaultEnemyRoster, nil collaborators become no-ops
func NewGameState(roster []EnemySpec, sched Scheduler, audio AudioPlayer, cursor CursorHider) *GameState {
	if roster == nil {
		roster = DefaultEnemyRoster()
	}
	if sched == nil {
		sched = NewRealScheduler()
	}
	if audio == nil {
		audio = nopAudio{}
	}
	if cursor == nil {
		cursor = nopCursor{}
	}

	enemies := make([]EnemySpec, len(roster))
	copy(enemies, roster)

	return &GameState{
		startup: true,
		enemies: enemies,
		sched:   sched,
		audio:   audio,
		cursor:  cursor,
	}
}

// ===== ACTIONS =====

// Start leaves the startup screen
// Only the first call has side effects: background audio starts and the cursor hides
func (gs *GameState) Start() {
	gs.mu.Lock()
	if !gs.startup {
		gs.mu.Unlock()
		return
	}
	gs.startup = false
	gs.mu.Unlock()

	gs.audio.Play(CueBackground, false)
	gs.cursor.HideCursor()
}

// Reset ends the round: points drop to zero and a restart pulse is raised
// The pulse clears after RestartPulseDuration, a newer Reset supersedes a pending clear
func (gs *GameState) Reset() {
	gs.mu.Lock()
	gs.points = 0
	gs.restart = true

	if gs.clearTimer != nil {
		gs.clearTimer.Stop()
	}
	gs.clearGen++
	gen := gs.clearGen
	gs.clearTimer = gs.sched.AfterFunc(parameter.RestartPulseDuration, func() {
		gs.clearRestart(gen)
	})

	listeners := make([]func(), len(gs.restartListeners))
	copy(listeners, gs.restartListeners)
	gs.mu.Unlock()

	gs.audio.Play(CueSpawn, true)

	for _, fn := range listeners {
		fn()
	}
}

// Contact scores a point when the impact is fast enough, and always pings
func (gs *GameState) Contact(ev ContactEvent) {
	if ev.ImpactVelocity > parameter.ScoreImpactThreshold {
		gs.mu.Lock()
		gs.points++
		gs.mu.Unlock()
	}

	gs.audio.Play(CuePing, true)
}

// OnContact lets the state act as the terminal contact handler
func (gs *GameState) OnContact(ev ContactEvent) {
	gs.Contact(ev)
}

// clearRestart lowers the pulse if no newer Reset has been scheduled since gen
func (gs *GameState) clearRestart(gen uint64) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gen != gs.clearGen {
		return
	}
	gs.restart = false
	gs.clearTimer = nil
}

// ===== SUBSCRIPTION =====

// OnRestart registers fn to run after every Reset, on the goroutine that called Reset
func (gs *GameState) OnRestart(fn func()) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.restartListeners = append(gs.restartListeners, fn)
}

// ===== READS =====

func (gs *GameState) Points() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.points
}

func (gs *GameState) Startup() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.startup
}

func (gs *GameState) Restart() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.restart
}

// Enemies returns a copy of the roster
func (gs *GameState) Enemies() []EnemySpec {
	out := make([]EnemySpec, len(gs.enemies))
	copy(out, gs.enemies)
	return out
}

// Snapshot reads all mutable fields under one lock
func (gs *GameState) Snapshot() GameSnapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return GameSnapshot{
		Points:  gs.points,
		Startup: gs.startup,
		Restart: gs.restart,
	}
}

type nopAudio struct{}

func (nopAudio) Play(Cue, bool) {}

type nopCursor struct{}

func (nopCursor) HideCursor() {}
