package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/pong-patrol/engine"
	"github.com/lixenwraith/pong-patrol/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency linearly
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freqAt() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) freqAt() float64 {
	if o.duration == 0 || o.endFreq == o.freq {
		return o.freq
	}
	t := float64(o.position) / float64(o.duration)
	return o.freq + (o.endFreq-o.freq)*t
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// kick generates a decaying pitch-dropping thump at the start of every beat
type kick struct {
	rate   beep.SampleRate
	beat   int
	length int
	pos    int
}

func newKick(rate beep.SampleRate) *kick {
	return &kick{
		rate:   rate,
		beat:   rate.N(parameter.BackgroundBeat),
		length: rate.N(parameter.BackgroundKickLen),
	}
}

func (k *kick) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := k.pos % k.beat
		val := 0.0
		if beatPos < k.length {
			t := float64(beatPos) / float64(k.rate)
			env := 1.0 - float64(beatPos)/float64(k.length)
			freq := 60 * (1 + 2*env)
			val = env * math.Sin(2*math.Pi*freq*t)
		}
		samples[i][0] = val
		samples[i][1] = val
		k.pos++
	}
	return len(samples), true
}

func (k *kick) Err() error { return nil }

// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePingSound generates the contact ding: fundamental plus octave
func CreatePingSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(parameter.PingFundamental, parameter.PingDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.PingDuration, parameter.PingAttack, parameter.PingRelease, rate)

	over := NewOscillator(parameter.PingOvertone, parameter.PingDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.PingDuration, parameter.PingAttack, parameter.PingRelease/2, rate)

	mixed := beep.Take(rate.N(parameter.PingDuration), beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	))
	return newVolume(mixed, cfg.Level(engine.CuePing))
}

// CreateSpawnSound generates the rising sweep played on round reset
func CreateSpawnSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewSweep(parameter.SpawnStartFreq, parameter.SpawnEndFreq, parameter.SpawnDuration, WaveSaw, rate)
	sweepShaped := NewEnvelope(sweep, parameter.SpawnDuration, parameter.SpawnAttack, parameter.SpawnRelease, rate)

	noise := NewOscillator(0, parameter.SpawnDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.SpawnDuration, parameter.SpawnAttack, parameter.SpawnRelease, rate)

	mixed := beep.Take(rate.N(parameter.SpawnDuration), beep.Mix(
		newVolume(sweepShaped, 0.5),
		newVolume(noiseShaped, 0.1),
	))
	return newVolume(mixed, cfg.Level(engine.CueSpawn))
}

// CreateBackgroundSound generates one four-beat bar of the background track
func CreateBackgroundSound(cfg *Config) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	bass, err := generators.SineTone(rate, parameter.BackgroundBassFreq)
	if err != nil {
		return nil, fmt.Errorf("bass tone: %w", err)
	}

	bar := beep.Take(rate.N(4*parameter.BackgroundBeat), beep.Mix(
		newVolume(newKick(rate), 0.4),
		newVolume(bass, 0.15),
	))
	return newVolume(bar, cfg.Level(engine.CueBackground)), nil
}

// RenderCue synthesizes a cue into a seekable buffer
func RenderCue(cue engine.Cue, cfg *Config) (*beep.Buffer, error) {
	var s beep.Streamer
	switch cue {
	case engine.CuePing:
		s = CreatePingSound(cfg)
	case engine.CueSpawn:
		s = CreateSpawnSound(cfg)
	case engine.CueBackground:
		var err error
		if s, err = CreateBackgroundSound(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown cue %d", cue)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  beep.SampleRate(cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(s)
	return buf, nil
}
