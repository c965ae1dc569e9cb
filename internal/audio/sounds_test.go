package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// drain streams s to completion and returns the number of samples produced.
// It fails the test if s is still running after limit.
func drain(t *testing.T, s beep.Streamer, limit time.Duration) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	limitN := sampleRate.N(limit)
	for total < limitN {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("streamer still running after %s", limit)
	return total
}

func TestOscillatorWaves(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 0, 100*time.Millisecond, tt.wave, sampleRate)
			n := drain(t, osc, time.Second)
			if want := sampleRate.N(100 * time.Millisecond); n != want {
				t.Errorf("streamed %d samples, want %d", n, want)
			}
			if osc.Err() != nil {
				t.Errorf("unexpected error: %v", osc.Err())
			}
		})
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 0, 10*time.Millisecond, WaveSquare, sampleRate)
	buf := make([][2]float64, 100)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f, want +-1", i, v)
		}
	}
}

func TestCueSounds(t *testing.T) {
	tests := []struct {
		cue     core.Cue
		oneShot bool
	}{
		{core.CueShoot, true},
		{core.CueExplode, true},
		{core.CuePlayerHit, true},
		{core.CueGameOver, true},
		{core.CueWin, true},
		{core.CueMusicStart, false},
		{core.CueMusicStop, false},
		{core.CueNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s := Sound(tt.cue, 1)
			if (s != nil) != tt.oneShot {
				t.Fatalf("Sound(%s) present = %v, want %v", tt.cue, s != nil, tt.oneShot)
			}
			if s != nil {
				if n := drain(t, s, 5*time.Second); n == 0 {
					t.Error("one-shot sound produced no samples")
				}
			}
		})
	}
}

func TestMusicIsEndless(t *testing.T) {
	m, err := Music(0.75)
	if err != nil {
		t.Fatalf("Music() error: %v", err)
	}

	buf := make([][2]float64, 1024)
	for range 200 {
		n, ok := m.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("music stopped: n=%d ok=%v", n, ok)
		}
	}
}

func TestSilentAndUninitializedPlayer(t *testing.T) {
	var s core.CuePlayer = Silent{}
	s.Play(core.CueShoot)

	// Play before Init must not touch the speaker
	p := NewPlayer(DefaultOptions())
	p.Play(core.CueMusicStart)
	p.Play(core.CueExplode)
	p.Close()
}

func TestOpenMuted(t *testing.T) {
	p, closeFn, err := Open(DefaultOptions(), true)
	if err != nil {
		t.Fatalf("Open(muted) error: %v", err)
	}
	if _, ok := p.(Silent); !ok {
		t.Errorf("muted Open should return Silent, got %T", p)
	}
	closeFn()
}
