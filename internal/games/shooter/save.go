package shooter

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// ErrSaveFormat is returned when a save line does not hold the expected integers.
var ErrSaveFormat = errors.New("shooter: malformed save")

// SaveData is the persisted subset of a run.
// BossActive is only written by variants with a boss phase.
type SaveData struct {
	Score      int
	Level      int
	HighScore  int
	HitsToKill int
	Lives      int
	BossActive bool
}

// FormatSave encodes data as one line of space-separated integers.
// fields is 5 or 6; the sixth field is the boss flag.
func FormatSave(data SaveData, fields int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d %d %d %d", data.Score, data.Level, data.HighScore, data.HitsToKill, data.Lives)
	if fields > 5 {
		boss := 0
		if data.BossActive {
			boss = 1
		}
		fmt.Fprintf(&b, " %d", boss)
	}
	b.WriteByte('\n')
	return b.String()
}

// ParseSave decodes a save line. Exactly fields integers must be present.
func ParseSave(text string, fields int) (SaveData, error) {
	tokens := strings.Fields(text)
	if len(tokens) != fields {
		return SaveData{}, fmt.Errorf("%w: want %d fields, got %d", ErrSaveFormat, fields, len(tokens))
	}

	values := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return SaveData{}, fmt.Errorf("%w: field %d: %w", ErrSaveFormat, i+1, err)
		}
		values[i] = v
	}

	data := SaveData{
		Score:      values[0],
		Level:      values[1],
		HighScore:  values[2],
		HitsToKill: values[3],
		Lives:      values[4],
	}
	if fields > 5 {
		data.BossActive = values[5] != 0
	}
	return data, nil
}

// SaveState returns the persisted view of the current run.
func (g *Game) SaveState() SaveData {
	return SaveData{
		Score:      g.score,
		Level:      g.level,
		HighScore:  g.highScore,
		HitsToKill: g.hitsToKill,
		Lives:      g.player.Lives,
		BossActive: g.bossActive,
	}
}

// Save writes the current run to the save file, replacing any previous save.
func (g *Game) Save() error {
	line := FormatSave(g.SaveState(), g.variant.SaveFields)
	if err := os.WriteFile(g.savePath, []byte(line), 0o600); err != nil {
		return fmt.Errorf("shooter: write save: %w", err)
	}
	g.log.Debug("saved game", "path", g.savePath, "score", g.score, "level", g.level)
	return nil
}

// SavePath returns the file Save writes to.
func (g *Game) SavePath() string {
	return g.savePath
}

// readSave loads and parses the save file.
func (g *Game) readSave() (SaveData, error) {
	raw, err := os.ReadFile(g.savePath)
	if err != nil {
		return SaveData{}, fmt.Errorf("shooter: read save: %w", err)
	}
	return ParseSave(string(raw), g.variant.SaveFields)
}

// load restores a saved run best-effort. Any failure leaves the state untouched.
func (g *Game) load() {
	data, err := g.readSave()
	if err != nil {
		g.log.Debug("no save restored", "path", g.savePath, "error", err)
		return
	}
	g.applySave(data)
}

// applySave copies saved fields into the game, clamping level, lives and
// enemy health. Only a saved boss fight may restore the boss level.
func (g *Game) applySave(data SaveData) {
	g.bossActive = g.variant.HasBossPhase && data.BossActive

	maxLevel := g.variant.LevelCap
	if g.bossActive {
		maxLevel = g.variant.maxLoadLevel()
	}

	g.score = data.Score
	g.level = core.Clamp(data.Level, 1, maxLevel)
	g.highScore = data.HighScore
	g.hitsToKill = core.Max(data.HitsToKill, 1)
	g.player.Lives = core.Max(data.Lives, 1)
}
