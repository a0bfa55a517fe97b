package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player manages all game audio through a single beep mixer. Failure to
// initialize the speaker leaves the player silent rather than failing the
// game; every Play method is then a no-op.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewPlayer creates a player; call Init before playing
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences and detaches all streamers
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// ToggleMute flips the mute flag and reports the new value
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// play queues a one-shot streamer at the given volume
func (p *Player) play(s beep.Streamer, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	speaker.Lock()
	p.mixer.Add(&effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volume,
	})
	speaker.Unlock()
}

// PlayWall is a short high tick for side and top wall bounces
func (p *Player) PlayWall() {
	d := 40 * time.Millisecond
	p.play(NewEnvelope(NewOscillator(880, d, WaveSquare, sampleRate), d, time.Millisecond, 20*time.Millisecond, sampleRate), -2)
}

// PlayPaddle is a mid thud for paddle bounces
func (p *Player) PlayPaddle() {
	d := 60 * time.Millisecond
	p.play(NewEnvelope(NewOscillator(440, d, WaveSquare, sampleRate), d, time.Millisecond, 30*time.Millisecond, sampleRate), -1.5)
}

// PlayBrick is a brighter pop for a destroyed brick
func (p *Player) PlayBrick() {
	d := 80 * time.Millisecond
	p.play(NewEnvelope(NewSweep(660, 990, d, WaveSquare, sampleRate), d, time.Millisecond, 40*time.Millisecond, sampleRate), -1)
}

// PlayCatch is a rising chime for a caught powerup
func (p *Player) PlayCatch() {
	d := 200 * time.Millisecond
	p.play(NewEnvelope(NewSweep(440, 1320, d, WaveSine, sampleRate), d, 5*time.Millisecond, 80*time.Millisecond, sampleRate), -1)
}

// PlayMiss is a falling buzz for a lost ball or an expired powerup
func (p *Player) PlayMiss() {
	d := 300 * time.Millisecond
	p.play(NewEnvelope(NewSweep(220, 110, d, WaveSaw, sampleRate), d, 5*time.Millisecond, 120*time.Millisecond, sampleRate), -1.5)
}
