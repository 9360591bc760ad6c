package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/parameter"
)

// voice is one playing instance of a cue
type voice struct {
	ctrl *beep.Ctrl
	done atomic.Bool
}

func (v *voice) playing() bool {
	return v != nil && !v.done.Load()
}

// SoundManager plays the game cues through the beep speaker
// Every call is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	buffers     [engine.CueCount]*beep.Buffer
	voices      [engine.CueCount]*voice
	mixer       *beep.Mixer
	initialized bool

	// Speaker hooks, mixer mutation is guarded against the speaker goroutine
	lock   func()
	unlock func()
	close  func()
}

// NewSoundManager creates a sound manager, nil cfg selects defaults
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
		close:  speaker.Close,
	}
}

// Initialize renders the cues and starts the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	if err := sm.render(); err != nil {
		return err
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio initialized at %d Hz", sm.cfg.SampleRate)
	return nil
}

// render synthesizes every cue buffer, caller holds mu
func (sm *SoundManager) render() error {
	for cue := engine.Cue(0); cue < engine.CueCount; cue++ {
		buf, err := RenderCue(cue, sm.cfg)
		if err != nil {
			return fmt.Errorf("render %s: %w", cue, err)
		}
		sm.buffers[cue] = buf
	}
	return nil
}

// Play starts a cue; restart rewinds a playing instance, otherwise a playing cue is left alone
func (sm *SoundManager) Play(cue engine.Cue, restart bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || cue < 0 || cue >= engine.CueCount {
		return
	}
	buf := sm.buffers[cue]
	if buf == nil {
		return
	}

	sm.lock()
	defer sm.unlock()

	if prev := sm.voices[cue]; prev.playing() {
		if !restart {
			return
		}
		// Nil streamer drains the old instance out of the mixer
		prev.ctrl.Streamer = nil
		prev.done.Store(true)
	}

	v := &voice{}
	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if cue == engine.CueBackground {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	v.ctrl = &beep.Ctrl{
		Streamer: beep.Seq(s, beep.Callback(func() { v.done.Store(true) })),
	}
	sm.voices[cue] = v
	sm.mixer.Add(v.ctrl)
}

// Playing reports whether an instance of cue is still sounding
func (sm *SoundManager) Playing(cue engine.Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if cue < 0 || cue >= engine.CueCount {
		return false
	}
	return sm.voices[cue].playing()
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	for cue, v := range sm.voices {
		if v != nil {
			v.ctrl.Paused = true
			v.done.Store(true)
			sm.voices[cue] = nil
		}
	}
	sm.mixer.Clear()
	sm.unlock()

	sm.close()
	sm.initialized = false
}
