// Package window runs games that can draw themselves in a desktop window
// using Ebitengine. It mirrors the terminal host: fixed-rate ticks, cue
// forwarding, and run recording.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/registry"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

// ErrNotDrawable is returned for games without a pixel renderer.
var ErrNotDrawable = errors.New("window: game cannot draw to a canvas")

// Options carries the collaborators of a window session.
type Options struct {
	Store  *storage.Store // Optional run history
	Cues   core.CuePlayer // Optional audio backend
	Logger *log.Logger    // Optional logger
	Config core.RuntimeConfig
}

// keySource reports keyboard state; ebiten's in production, a fake in tests.
type keySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Key bindings. Movement is level-triggered, everything else fires on press.
var (
	heldKeys = map[ebiten.Key]core.Action{
		ebiten.KeyArrowLeft:  core.ActionLeft,
		ebiten.KeyA:          core.ActionLeft,
		ebiten.KeyArrowRight: core.ActionRight,
		ebiten.KeyD:          core.ActionRight,
	}
	pressKeys = map[ebiten.Key]core.Action{
		ebiten.KeySpace:  core.ActionFire,
		ebiten.KeyEnter:  core.ActionConfirm,
		ebiten.KeyN:      core.ActionNewGame,
		ebiten.KeyL:      core.ActionLoad,
		ebiten.KeyP:      core.ActionPause,
		ebiten.KeyEscape: core.ActionQuit,
	}
)

// pollInput fills the frame from the current keyboard state.
func pollInput(keys keySource, frame *core.InputFrame) {
	for k, a := range heldKeys {
		if keys.Pressed(k) {
			frame.Hold(a)
		}
	}
	for k, a := range pressKeys {
		if keys.JustPressed(k) {
			frame.Set(a)
		}
	}
}

// Host adapts a registry game to ebiten.Game.
type Host struct {
	game   registry.Game
	drawer registry.Drawer
	store  *storage.Store
	cues   core.CuePlayer
	log    *log.Logger
	keys   keySource
	fonts  *fontCache

	frame    core.InputFrame
	state    core.GameState
	width    int
	height   int
	runSaved bool
}

// NewHost resets the game and prepares it for a window of its world size.
func NewHost(game registry.Game, opts Options) (*Host, error) {
	drawer, ok := game.(registry.Drawer)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotDrawable, game.ID())
	}
	fonts, err := newFontCache()
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	// The window is drawn in world pixels; screen size only gates the terminal renderer
	game.Reset(cfg)
	w, h := drawer.WorldSize()
	if r, ok := game.(registry.Resizer); ok {
		r.Resize(w, h)
	}

	return &Host{
		game:   game,
		drawer: drawer,
		store:  opts.Store,
		cues:   opts.Cues,
		log:    logger.With("game", game.ID(), "host", "window"),
		keys:   ebitenKeys{},
		fonts:  fonts,
		frame:  core.NewInputFrame(),
		width:  w,
		height: h,
	}, nil
}

// Update advances the game by one tick.
func (h *Host) Update() error {
	if ebiten.IsWindowBeingClosed() {
		h.save()
		return ebiten.Termination
	}
	return h.tick()
}

// tick runs one simulation step with the current keyboard state.
func (h *Host) tick() error {
	h.frame.Clear()
	pollInput(h.keys, &h.frame)

	result := h.game.Step(h.frame)
	h.state = result.State

	if h.cues != nil {
		for _, c := range result.Cues {
			h.cues.Play(c)
		}
	}

	if h.state.GameOver {
		if !h.runSaved {
			h.recordRun()
			h.runSaved = true
		}
	} else {
		h.runSaved = false
	}

	if h.state.Exit {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current frame.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(spriteColors[core.SpriteBackground])
	h.drawer.Draw(&canvas{dst: screen, fonts: h.fonts})
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

func (h *Host) recordRun() {
	if h.store == nil || h.state.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID:  h.game.ID(),
		Score:   h.state.Score,
		Level:   h.state.Level,
		Outcome: storage.OutcomeGameOver,
	}
	if h.state.Won {
		run.Outcome = storage.OutcomeWin
	}
	if _, err := h.store.SaveRun(run); err != nil {
		h.log.Warn("record run", "error", err)
		return
	}
	h.log.Debug("run recorded", "score", run.Score, "level", run.Level, "outcome", run.Outcome)
}

func (h *Host) save() {
	s, ok := h.game.(registry.Saver)
	if !ok {
		return
	}
	if err := s.Save(); err != nil {
		h.log.Error("save on close", "error", err)
		return
	}
	h.log.Debug("saved on close")
}

// Run opens a window and plays the game until it exits or the window closes.
func Run(game registry.Game, opts Options) error {
	h, err := NewHost(game, opts)
	if err != nil {
		return err
	}

	tps := opts.Config.TickRate
	if tps <= 0 {
		tps = 60
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
