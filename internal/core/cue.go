package core

// Cue is an audio side effect raised by the simulation.
// Games never play sound themselves; the host forwards cues to its audio backend.
type Cue int

const (
	CueNone Cue = iota
	CueShoot
	CueExplode
	CuePlayerHit
	CueGameOver
	CueWin
	CueMusicStart
	CueMusicStop
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "Shoot"
	case CueExplode:
		return "Explode"
	case CuePlayerHit:
		return "PlayerHit"
	case CueGameOver:
		return "GameOver"
	case CueWin:
		return "Win"
	case CueMusicStart:
		return "MusicStart"
	case CueMusicStop:
		return "MusicStop"
	default:
		return "None"
	}
}

// CuePlayer is implemented by audio backends.
type CuePlayer interface {
	Play(c Cue)
}
