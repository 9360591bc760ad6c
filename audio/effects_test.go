package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/pong-patrol/engine"
)

// TestOscillatorRange verifies every wave type stays within [-1, 1] and stops at its duration
func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(testRate)

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		samples := make([][2]float64, 1024)

		n, ok := osc.Stream(samples)
		if !ok || n != rate.N(50*time.Millisecond) {
			t.Fatalf("Wave %d: expected %d samples, got %d (ok=%v)", wave, rate.N(50*time.Millisecond), n, ok)
		}
		for i := 0; i < n; i++ {
			if math.Abs(samples[i][0]) > 1 || samples[i][0] != samples[i][1] {
				t.Fatalf("Wave %d: sample %d out of range or not mono: %v", wave, i, samples[i])
			}
		}

		if n, ok := osc.Stream(samples); n != 0 || ok {
			t.Errorf("Wave %d: expected drained oscillator, got n=%d ok=%v", wave, n, ok)
		}
	}
}

// TestSweepRises verifies the sweep frequency moves from start to end
func TestSweepRises(t *testing.T) {
	rate := beep.SampleRate(testRate)
	s := NewSweep(100, 900, time.Second, WaveSine, rate).(*oscillator)

	if s.freqAt() != 100 {
		t.Errorf("Expected start frequency 100, got %f", s.freqAt())
	}
	s.position = s.duration / 2
	if math.Abs(s.freqAt()-500) > 1e-6 {
		t.Errorf("Expected midpoint frequency 500, got %f", s.freqAt())
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silence
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(testRate)
	dur := 100 * time.Millisecond
	src := NewOscillator(0, dur, WaveSquare, rate) // phase stays 0, constant +1
	env := NewEnvelope(src, dur, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(dur))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[n/2][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[n/2][0])
	}
	if last := samples[n-1][0]; last <= 0 || last > 0.05 {
		t.Errorf("Expected near-silent tail, got %f", last)
	}
}

// TestVolumeSilent verifies zero volume produces silence
func TestVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(testRate)
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 0)

	samples := make([][2]float64, 16)
	s.Stream(samples)
	for i, v := range samples {
		if v[0] != 0 || v[1] != 0 {
			t.Fatalf("Expected silence at %d, got %v", i, v)
		}
	}
}

// TestConfigLevel verifies cue gain is cue volume times master
func TestConfigLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0.5
	cfg.CueVolumes[engine.CuePing] = 0.6

	if got := cfg.Level(engine.CuePing); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("Expected level 0.3, got %f", got)
	}
	if got := cfg.Level(engine.CueCount); got != 0 {
		t.Errorf("Expected level 0 for unknown cue, got %f", got)
	}
}
