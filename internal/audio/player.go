// Package audio turns simulation cues into synthesized sound through beep.
// Nothing here is required for play: hosts fall back to Silent when the
// speaker cannot be opened.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// Options controls playback volume, each in [0, 1].
type Options struct {
	EffectVolume float64
	MusicVolume  float64
}

// DefaultOptions returns the standard mix.
func DefaultOptions() Options {
	return Options{
		EffectVolume: 0.8,
		MusicVolume:  0.75,
	}
}

// Player plays cues on the system speaker.
type Player struct {
	mu          sync.Mutex
	opts        Options
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewPlayer creates a player. Call Init before Play.
func NewPlayer(opts Options) *Player {
	return &Player{
		opts:  opts,
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play handles one cue. Unknown cues and calls before Init are ignored.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	switch c {
	case core.CueMusicStart:
		p.startMusic()
	case core.CueMusicStop:
		p.stopMusic()
	default:
		if s := Sound(c, p.opts.EffectVolume); s != nil {
			speaker.Lock()
			p.mixer.Add(s)
			speaker.Unlock()
		}
	}
}

// startMusic resumes the theme, creating it on first use.
func (p *Player) startMusic() {
	speaker.Lock()
	defer speaker.Unlock()

	if p.music != nil {
		p.music.Paused = false
		return
	}

	theme, err := Music(p.opts.MusicVolume)
	if err != nil {
		return
	}
	p.music = &beep.Ctrl{Streamer: theme, Paused: false}
	p.mixer.Add(p.music)
}

func (p *Player) stopMusic() {
	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// Close stops all sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.music = nil
	p.mixer = &beep.Mixer{}
	p.initialized = false
}

// Silent discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(core.Cue) {}

// Open returns a speaker-backed player, or Silent with the error when the
// speaker is unavailable or muted is set.
func Open(opts Options, muted bool) (core.CuePlayer, func(), error) {
	if muted {
		return Silent{}, func() {}, nil
	}
	p := NewPlayer(opts)
	if err := p.Init(); err != nil {
		return Silent{}, func() {}, err
	}
	return p, p.Close, nil
}
