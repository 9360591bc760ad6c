package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/pong-patrol/parameter"
)

// TestGameStateInitialization verifies the fixed startup defaults
func TestGameStateInitialization(t *testing.T) {
	gs, _, _, _ := NewTestGameState()

	snap := gs.Snapshot()
	if snap.Points != 0 {
		t.Errorf("Expected initial points 0, got %d", snap.Points)
	}
	if !snap.Startup {
		t.Error("Expected startup to be true initially")
	}
	if snap.Restart {
		t.Error("Expected restart to be false initially")
	}
	if len(gs.Enemies()) != 13 {
		t.Errorf("Expected 13 enemies in default roster, got %d", len(gs.Enemies()))
	}
}

// TestContactThreshold verifies only impacts above the threshold score
func TestContactThreshold(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
		want     int
	}{
		{"well below", 0.5, 0},
		{"exactly threshold", parameter.ScoreImpactThreshold, 0},
		{"just above", parameter.ScoreImpactThreshold + 1e-6, 1},
		{"fast", 12, 1},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, _, audio, _ := NewTestGameState()
			gs.Contact(ContactEvent{ImpactVelocity: tt.velocity})

			if gs.Points() != tt.want {
				t.Errorf("Expected %d points, got %d", tt.want, gs.Points())
			}
			calls := audio.Calls()
			if len(calls) != 1 || calls[0] != (PlayCall{Cue: CuePing, Restart: true}) {
				t.Errorf("Expected a single restarted ping, got %+v", calls)
			}
		})
	}
}

// TestContactAccumulates verifies each fast contact adds exactly one point
func TestContactAccumulates(t *testing.T) {
	gs, _, _, _ := NewTestGameState()
	for i := 0; i < 7; i++ {
		gs.Contact(ContactEvent{ImpactVelocity: 5})
	}
	gs.Contact(ContactEvent{ImpactVelocity: 3})

	if gs.Points() != 7 {
		t.Errorf("Expected 7 points, got %d", gs.Points())
	}
}

// TestResetPulse verifies reset zeroes points and raises restart for the pulse duration
func TestResetPulse(t *testing.T) {
	gs, sched, audio, _ := NewTestGameState()
	gs.Contact(ContactEvent{ImpactVelocity: 9})

	gs.Reset()

	if gs.Points() != 0 {
		t.Errorf("Expected points 0 after reset, got %d", gs.Points())
	}
	if !gs.Restart() {
		t.Fatal("Expected restart true immediately after reset")
	}

	sched.Advance(parameter.RestartPulseDuration - time.Millisecond)
	if !gs.Restart() {
		t.Error("Expected restart still true before the delay elapses")
	}

	sched.Advance(time.Millisecond)
	if gs.Restart() {
		t.Error("Expected restart false after the delay elapses")
	}

	if audio.Count(CueSpawn) != 1 {
		t.Errorf("Expected one spawn cue, got %d", audio.Count(CueSpawn))
	}
	for _, c := range audio.Calls() {
		if c.Cue == CueSpawn && !c.Restart {
			t.Error("Expected spawn cue to restart from zero")
		}
	}
}

// TestResetOverlapping verifies a second reset supersedes the pending clear
func TestResetOverlapping(t *testing.T) {
	gs, sched, _, _ := NewTestGameState()

	gs.Reset()
	sched.Advance(parameter.RestartPulseDuration / 2)
	gs.Reset()

	if sched.Pending() != 1 {
		t.Errorf("Expected exactly one pending clear, got %d", sched.Pending())
	}

	// First clear's deadline has passed but it was superseded
	sched.Advance(parameter.RestartPulseDuration / 2)
	if !gs.Restart() {
		t.Error("Expected restart to stay raised until the latest clear fires")
	}

	sched.Advance(parameter.RestartPulseDuration / 2)
	if gs.Restart() {
		t.Error("Expected restart cleared by the latest scheduled clear")
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected no pending clears, got %d", sched.Pending())
	}
}

// TestResetStaleClearIgnored verifies a clear from an older reset cannot lower a newer pulse
func TestResetStaleClearIgnored(t *testing.T) {
	gs, _, _, _ := NewTestGameState()

	gs.Reset()
	gs.mu.RLock()
	stale := gs.clearGen
	gs.mu.RUnlock()
	gs.Reset()

	// Simulate the old timer having already fired concurrently with Stop
	gs.clearRestart(stale)
	if !gs.Restart() {
		t.Error("Expected stale clear to be ignored")
	}
}

// TestResetRestartListeners verifies listeners run once per reset
func TestResetRestartListeners(t *testing.T) {
	gs, _, _, _ := NewTestGameState()
	calls := 0
	gs.OnRestart(func() {
		calls++
		if !gs.Restart() {
			t.Error("Expected restart raised when listener runs")
		}
	})

	gs.Reset()
	gs.Reset()

	if calls != 2 {
		t.Errorf("Expected 2 listener calls, got %d", calls)
	}
}

// TestStartIdempotent verifies the start transition and its side effects happen once
func TestStartIdempotent(t *testing.T) {
	gs, _, audio, cursor := NewTestGameState()

	gs.Start()
	gs.Start()

	if gs.Startup() {
		t.Error("Expected startup false after start")
	}
	if audio.Count(CueBackground) != 1 {
		t.Errorf("Expected background audio started once, got %d", audio.Count(CueBackground))
	}
	if cursor.Hidden() != 1 {
		t.Errorf("Expected cursor hidden once, got %d", cursor.Hidden())
	}
}

// TestScenarioStartThenScore covers start followed by one qualifying enemy contact
func TestScenarioStartThenScore(t *testing.T) {
	gs, _, _, _ := NewTestGameState()
	gs.Start()
	gs.Contact(ContactEvent{ImpactVelocity: 5})

	if gs.Points() != 1 {
		t.Errorf("Expected 1 point, got %d", gs.Points())
	}
}

// TestScenarioDeathAtSeven covers a death with seven points on the board
func TestScenarioDeathAtSeven(t *testing.T) {
	gs, sched, _, _ := NewTestGameState()
	for i := 0; i < 7; i++ {
		gs.Contact(ContactEvent{ImpactVelocity: 6})
	}
	if gs.Points() != 7 {
		t.Fatalf("Expected setup of 7 points, got %d", gs.Points())
	}

	gs.Reset()
	snap := gs.Snapshot()
	if snap.Points != 0 || !snap.Restart {
		t.Errorf("Expected points 0 and restart true, got %+v", snap)
	}

	sched.Advance(parameter.RestartPulseDuration)
	if gs.Restart() {
		t.Error("Expected restart false after the delay")
	}
}

// TestGameStateConcurrentActions verifies actions are serialized under the race detector
func TestGameStateConcurrentActions(t *testing.T) {
	gs := NewGameState(nil, NewRealScheduler(), nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				gs.Contact(ContactEvent{ImpactVelocity: 5})
				_ = gs.Snapshot()
			}
		}()
	}
	wg.Wait()

	if gs.Points() != 800 {
		t.Errorf("Expected 800 points, got %d", gs.Points())
	}

	gs.Reset()
	deadline := time.Now().Add(time.Second)
	for gs.Restart() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if gs.Restart() {
		t.Error("Expected real timer to clear restart")
	}
}

// TestEnemiesCopy verifies callers cannot mutate the roster
func TestEnemiesCopy(t *testing.T) {
	gs, _, _, _ := NewTestGameState()
	enemies := gs.Enemies()
	enemies[0].Speed = 99

	if gs.Enemies()[0].Speed == 99 {
		t.Error("Expected roster to be immutable through Enemies()")
	}
}
