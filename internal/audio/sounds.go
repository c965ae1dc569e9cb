package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/space-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave, optionally sliding in pitch.
type oscillator struct {
	freq     float64
	slide    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite oscillator.
func NewOscillator(freq, slide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		slide:    slide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq) + 1)), //#nosec G404 -- noise texture only
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
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.slide*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream out exponentially.
type decay struct {
	streamer beep.Streamer
	rate     float64
	position int
	sr       beep.SampleRate
}

func newDecay(s beep.Streamer, rate float64, sr beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, sr: sr}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		env := math.Exp(-d.rate * float64(d.position) / float64(d.sr))
		samples[i][0] *= env
		samples[i][1] *= env
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound returns the one-shot streamer for a cue, or nil for cues that are not
// one-shot sounds.
func Sound(c core.Cue, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case core.CueShoot:
		s = NewOscillator(880, -2400, 70*time.Millisecond, WaveSquare, sampleRate)
		s = newVolume(s, 0.25)
	case core.CueExplode:
		noise := NewOscillator(0, 0, 220*time.Millisecond, WaveNoise, sampleRate)
		rumble := NewOscillator(90, -120, 220*time.Millisecond, WaveSine, sampleRate)
		s = newDecay(beep.Mix(newVolume(noise, 0.4), newVolume(rumble, 0.6)), 14, sampleRate)
	case core.CuePlayerHit:
		s = newDecay(NewOscillator(160, -200, 300*time.Millisecond, WaveSaw, sampleRate), 6, sampleRate)
		s = newVolume(s, 0.5)
	case core.CueGameOver:
		s = beep.Seq(
			NewOscillator(392, 0, 250*time.Millisecond, WaveSaw, sampleRate),
			NewOscillator(330, 0, 250*time.Millisecond, WaveSaw, sampleRate),
			newDecay(NewOscillator(262, -60, 600*time.Millisecond, WaveSaw, sampleRate), 3, sampleRate),
		)
		s = newVolume(s, 0.35)
	case core.CueWin:
		s = beep.Seq(
			NewOscillator(523, 0, 140*time.Millisecond, WaveSquare, sampleRate),
			NewOscillator(659, 0, 140*time.Millisecond, WaveSquare, sampleRate),
			NewOscillator(784, 0, 140*time.Millisecond, WaveSquare, sampleRate),
			newDecay(NewOscillator(1047, 0, 500*time.Millisecond, WaveSquare, sampleRate), 4, sampleRate),
		)
		s = newVolume(s, 0.25)
	default:
		return nil
	}
	return newVolume(s, vol)
}

// Music returns an endless background theme: a square-wave bass line under a
// quiet sine pad.
func Music(vol float64) (beep.Streamer, error) {
	pad, err := generators.SineTone(sampleRate, 220)
	if err != nil {
		return nil, err
	}
	theme := beep.Mix(
		newVolume(&bassLine{rate: sampleRate}, 0.2),
		newVolume(pad, 0.05),
	)
	return newVolume(theme, vol), nil
}

// bassLine loops a four-note pattern forever.
type bassLine struct {
	rate     beep.SampleRate
	phase    float64
	position int
}

var bassNotes = [...]float64{110, 110, 131, 98}

func (b *bassLine) Stream(samples [][2]float64) (n int, ok bool) {
	step := b.rate.N(300 * time.Millisecond)
	for i := range samples {
		note := bassNotes[(b.position/step)%len(bassNotes)]
		within := float64(b.position%step) / float64(step)

		val := -1.0
		if b.phase < 0.5 {
			val = 1.0
		}
		val *= 1 - 0.7*within // pluck

		samples[i][0] = val
		samples[i][1] = val

		b.phase += note / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.position++
	}
	return len(samples), true
}

func (b *bassLine) Err() error { return nil }
