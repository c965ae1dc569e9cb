package shooter

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/registry"
)

// Screen states
const (
	StateMenu      = "menu"     // Title screen, waiting for N/L/Enter
	StatePlaying   = "playing"  // Enemy waves
	StateBossFight = "boss"     // Boss phase (boss variant only)
	StateGameOver  = "gameover" // No lives left
	StateWin       = "win"      // Level cap cleared or boss defeated
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// savePathOverride replaces the variant's default save file when set
var savePathOverride string

// logger receives persistence and config diagnostics
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetSavePath overrides the save file used by games created afterwards.
func SetSavePath(path string) {
	savePathOverride = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements both space shooter variants on one simulation core.
type Game struct {
	variant Variant

	// Configuration
	runtime  core.RuntimeConfig
	cfg      config.ShooterConfig
	log      *log.Logger
	savePath string

	rng     *rand.Rand
	spawner *Spawner

	// Entity pools, sized by the variant at Reset
	player      Player
	enemies     []Enemy
	enemyCount  int
	bullets     []Bullet
	boss        Boss
	bossBullets []Bullet

	// Game state
	state      string
	paused     bool
	score      int
	level      int
	highScore  int
	hitsToKill int
	gameOver   bool
	gameWon    bool
	bossActive bool
	exit       bool
	tickCount  int

	// Cues raised during the current Step, reused between ticks
	cues []core.Cue

	screenTooSmall bool
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	path := v.SaveFile
	if savePathOverride != "" {
		path = savePathOverride
	}
	return &Game{
		variant:  v,
		log:      logger.With("game", v.ID),
		savePath: path,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Summary describes how a run of this variant is won.
func (g *Game) Summary() string {
	ending := "victory"
	if g.variant.HasBossPhase {
		ending = "a boss fight"
	}
	return fmt.Sprintf("%d levels, then %s", g.variant.LevelCap, ending)
}

// Variant returns the parameters this game runs with.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset initializes the game and shows the title screen.
// A previous save is restored best-effort so the title shows its best score.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		g.log.Warn("using default config", "error", err)
		cfg = config.DefaultShooterConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness, seeded for determinism
	g.spawner = NewSpawner(g.variant, cfg, g.rng)

	// Pools are allocated once here and reused in place
	g.enemies = make([]Enemy, g.variant.MaxEnemies)
	g.bullets = make([]Bullet, g.variant.MaxBullets)
	g.bossBullets = make([]Bullet, g.variant.MaxBossBullets)
	if g.cues == nil {
		g.cues = make([]core.Cue, 0, 16)
	}

	// Default values
	g.score = 0
	g.level = 1
	g.highScore = 0
	g.hitsToKill = 1
	g.gameOver = false
	g.gameWon = false
	g.bossActive = false
	g.paused = false
	g.exit = false
	g.tickCount = 0
	g.state = StateMenu
	g.boss = Boss{}

	g.initPlayer()

	// Try to load saved game; a missing or malformed file leaves the defaults
	g.load()

	g.initBullets()
	g.spawnWave()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = g.cues[:0]
	g.exit = false

	// Save and leave from any screen
	if in.Has(core.ActionQuit) {
		if err := g.Save(); err != nil {
			g.log.Error("save failed", "path", g.savePath, "error", err)
		}
		g.state = StateMenu
		g.paused = false
		g.exit = true
		g.emit(core.CueMusicStop)
		return g.result()
	}

	switch g.state {
	case StateMenu:
		g.handleMenuInput(in)

	case StatePlaying, StateBossFight:
		// Handle pause toggle
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused || g.screenTooSmall {
			return g.result()
		}
		g.tickCount++
		g.update(in)

	case StateGameOver, StateWin:
		if in.Has(core.ActionConfirm) {
			g.resetGameToLevel1()
			g.state = StatePlaying
			g.emit(core.CueMusicStart)
		}
	}

	return g.result()
}

// handleMenuInput starts a new game or resumes the saved one.
func (g *Game) handleMenuInput(in core.InputFrame) {
	// Enter behaves like New Game
	if in.Has(core.ActionConfirm) || in.Has(core.ActionNewGame) {
		g.resetGameToLevel1()
		g.state = StatePlaying
		g.emit(core.CueMusicStart)
		return
	}

	if in.Has(core.ActionLoad) {
		g.load()

		// Re-create bullets and enemies for the loaded level
		g.initBullets()
		g.spawnWave()

		g.player.IsAlive = true
		g.gameOver = false
		g.gameWon = false
		g.state = StatePlaying

		if g.bossActive {
			g.enterBossPhase()
		}
		g.emit(core.CueMusicStart)
	}
}

// resetGameToLevel1 starts a fresh run. The best score is kept.
func (g *Game) resetGameToLevel1() {
	g.score = 0
	g.level = 1
	g.gameOver = false
	g.gameWon = false
	g.bossActive = false
	g.paused = false
	g.hitsToKill = 1
	g.boss = Boss{}

	g.initPlayer()
	g.initBullets()
	g.spawnWave()
}

// initPlayer places a full-health player at the spawn point.
func (g *Game) initPlayer() {
	p := g.cfg.Player
	g.player = Player{
		Width:   p.Width,
		Height:  p.Height,
		Speed:   p.Speed,
		Lives:   p.Lives,
		IsAlive: true,
	}
	g.recenterPlayer()
}

// recenterPlayer moves the player back to the spawn point.
func (g *Game) recenterPlayer() {
	g.player.X = float64(g.cfg.World.Width)/2 - float64(g.player.Width)/2
	g.player.Y = float64(g.cfg.World.Height - g.cfg.Player.BottomOffset)
	g.player.IsAlive = true
}

// initBullets resets both projectile pools.
func (g *Game) initBullets() {
	b := g.cfg.Bullet
	initBullets(g.bullets, b.Width, b.Height, b.Speed)

	bb := g.cfg.Boss
	initBullets(g.bossBullets, bb.BulletWidth, bb.BulletHeight, bb.BulletSpeed)
}

// spawnWave fills the enemy pool for the current level and hitsToKill.
func (g *Game) spawnWave() {
	g.enemyCount = g.spawner.Spawn(g.enemies, g.level, g.hitsToKill)
}

func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Cues: g.cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.paused,
		Exit:     g.exit,
	}
}

// Resize adapts to a new terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < minScreenW || h < minScreenH
}

// Screen returns the current screen state name.
func (g *Game) Screen() string {
	return g.state
}

// Register the games with the registry
func init() {
	registry.Register("shooter", func() registry.Game {
		return New(Classic())
	})
	registry.Register("shooter_boss", func() registry.Game {
		return New(BossRush())
	})
}
