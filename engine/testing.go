package engine

import (
	"sync"
	"time"
)

// PlayCall is one recorded AudioPlayer.Play invocation
type PlayCall struct {
	Cue     Cue
	Restart bool
}

// RecordingAudio is an AudioPlayer test double that records calls
type RecordingAudio struct {
	mu    sync.Mutex
	calls []PlayCall
}

func (r *RecordingAudio) Play(cue Cue, restart bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, PlayCall{Cue: cue, Restart: restart})
}

// Calls returns a copy of all recorded calls
func (r *RecordingAudio) Calls() []PlayCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]PlayCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many times cue was played
func (r *RecordingAudio) Count(cue Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Cue == cue {
			n++
		}
	}
	return n
}

// CountingCursor is a CursorHider test double
type CountingCursor struct {
	mu     sync.Mutex
	hidden int
}

func (c *CountingCursor) HideCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hidden++
}

// Hidden returns how many times HideCursor was called
func (c *CountingCursor) Hidden() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hidden
}

// NewTestGameState creates a GameState wired to a mock scheduler and recording doubles
func NewTestGameState() (*GameState, *MockScheduler, *RecordingAudio, *CountingCursor) {
	sched := NewMockScheduler(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	audio := &RecordingAudio{}
	cursor := &CountingCursor{}
	return NewGameState(nil, sched, audio, cursor), sched, audio, cursor
}
