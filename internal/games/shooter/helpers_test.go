package shooter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

// useDefaultConfig pins the config to the embedded defaults so tests do not
// pick up files from the developer's home directory.
func useDefaultConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "shooter.yaml")
	if err := os.WriteFile(path, config.GetDefaultYAML("shooter"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	prevPath, prevPreset := configPath, difficultyPreset
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() {
		configPath, difficultyPreset = prevPath, prevPreset
	})
	return dir
}

// newTestGame creates a game with an isolated config and save file, on the title screen.
func newTestGame(t *testing.T, v Variant) *Game {
	t.Helper()
	dir := useDefaultConfig(t)
	g := New(v)
	g.savePath = filepath.Join(dir, v.SaveFile)
	g.Reset(testRuntime())
	return g
}

// startedGame returns a game that has left the title screen via New Game.
func startedGame(t *testing.T, v Variant) *Game {
	t.Helper()
	g := newTestGame(t, v)
	g.Step(press(core.ActionNewGame))
	if g.state != StatePlaying {
		t.Fatalf("expected playing state after new game, got %s", g.state)
	}
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func hasCue(cues []core.Cue, c core.Cue) bool {
	for _, x := range cues {
		if x == c {
			return true
		}
	}
	return false
}

func activeCount(pool []Bullet) int {
	n := 0
	for i := range pool {
		if pool[i].Active {
			n++
		}
	}
	return n
}

func activeEnemies(g *Game) int {
	n := 0
	for i := range g.enemies {
		if g.enemies[i].Active {
			n++
		}
	}
	return n
}

// parkEnemies moves every active enemy far from the player and the bullets.
func parkEnemies(g *Game) {
	for i := range g.enemies {
		g.enemies[i].X = 0
		g.enemies[i].Y = -10000
		g.enemies[i].Speed = 0
	}
}
