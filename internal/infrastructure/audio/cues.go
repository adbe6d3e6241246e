// Package audio plays short synthesized cues through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a sound tied to a simulation event
type Cue int

const (
	CueGrab Cue = iota
	CueThrow
	CueDrop
	CueLand
)

type cueSpec struct {
	freq     float64 // start frequency, Hz
	sweep    float64 // frequency change over the cue, Hz
	duration time.Duration
	volume   float64
}

var cueSpecs = map[Cue]cueSpec{
	CueGrab:  {freq: 440, sweep: 220, duration: 60 * time.Millisecond, volume: 0.25},
	CueThrow: {freq: 330, sweep: 550, duration: 120 * time.Millisecond, volume: 0.3},
	CueDrop:  {freq: 220, sweep: -110, duration: 150 * time.Millisecond, volume: 0.3},
	CueLand:  {freq: 90, sweep: -30, duration: 50 * time.Millisecond, volume: 0.2},
}

// Player mixes cues into the speaker. A Player that failed to
// initialize stays silent; Play is always safe to call.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player; call Initialize to open the speaker
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the cue without waiting for it to finish
func (p *Player) Play(c Cue) {
	spec, ok := cueSpecs[c]
	if !ok {
		return
	}
	tone := NewTone(sampleRate, spec)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

// Close silences everything still playing
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// Tone is a finite sine sweep with an exponential decay
type Tone struct {
	sr    beep.SampleRate
	spec  cueSpec
	pos   int
	total int
	phase float64
}

// NewTone creates the streamer for one cue
func NewTone(sr beep.SampleRate, spec cueSpec) *Tone {
	return &Tone{sr: sr, spec: spec, total: sr.N(spec.duration)}
}

// Stream fills samples until the tone ends
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.spec.freq + t.spec.sweep*progress
		t.phase += 2 * math.Pi * freq / float64(t.sr)

		sample := t.spec.volume * math.Exp(-progress*4) * math.Sin(t.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (t *Tone) Err() error {
	return nil
}

// Len returns the tone length in samples
func (t *Tone) Len() int {
	return t.total
}
