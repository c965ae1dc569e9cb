package config

// presetTuning holds the values a preset overrides.
type presetTuning struct {
	lives      int
	speedScale float64
}

var presets = map[DifficultyPreset]presetTuning{
	DifficultyEasy:   {lives: 5, speedScale: 0.8},
	DifficultyNormal: {lives: 3, speedScale: 1.0},
	DifficultyHard:   {lives: 2, speedScale: 1.25},
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	t, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Player.Lives = t.lives
	cfg.Enemy.SpeedScale = t.speedScale
}

// Normalize repairs values a hand-edited config may have left unusable.
// Each zero or negative field falls back to the default.
func (c *ShooterConfig) Normalize() {
	def := DefaultShooterConfig()

	fixInt := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}
	fixFloat := func(v *float64, d float64) {
		if *v <= 0 {
			*v = d
		}
	}

	fixInt(&c.World.Width, def.World.Width)
	fixInt(&c.World.Height, def.World.Height)

	fixInt(&c.Player.Width, def.Player.Width)
	fixInt(&c.Player.Height, def.Player.Height)
	fixFloat(&c.Player.Speed, def.Player.Speed)
	fixInt(&c.Player.Lives, def.Player.Lives)
	fixInt(&c.Player.BottomOffset, def.Player.BottomOffset)

	fixInt(&c.Bullet.Width, def.Bullet.Width)
	fixInt(&c.Bullet.Height, def.Bullet.Height)
	fixFloat(&c.Bullet.Speed, def.Bullet.Speed)

	fixInt(&c.Enemy.Width, def.Enemy.Width)
	fixInt(&c.Enemy.Height, def.Enemy.Height)
	fixInt(&c.Enemy.BaseCount, def.Enemy.BaseCount)
	fixFloat(&c.Enemy.BaseSpeed, def.Enemy.BaseSpeed)
	fixFloat(&c.Enemy.MinSpeed, def.Enemy.MinSpeed)
	fixFloat(&c.Enemy.SpeedScale, def.Enemy.SpeedScale)
	if c.Enemy.CountPerLevel < 0 {
		c.Enemy.CountPerLevel = def.Enemy.CountPerLevel
	}
	if c.Enemy.SpeedPerLevel < 0 {
		c.Enemy.SpeedPerLevel = def.Enemy.SpeedPerLevel
	}
	if c.Enemy.JitterSteps < 0 {
		c.Enemy.JitterSteps = 0
	}

	fixInt(&c.Boss.Width, def.Boss.Width)
	fixInt(&c.Boss.Height, def.Boss.Height)
	fixFloat(&c.Boss.Speed, def.Boss.Speed)
	fixInt(&c.Boss.Health, def.Boss.Health)
	fixFloat(&c.Boss.FirstVolley, def.Boss.FirstVolley)
	fixFloat(&c.Boss.MinInterval, def.Boss.MinInterval)
	fixInt(&c.Boss.BulletWidth, def.Boss.BulletWidth)
	fixInt(&c.Boss.BulletHeight, def.Boss.BulletHeight)
	fixFloat(&c.Boss.BulletSpeed, def.Boss.BulletSpeed)

	fixInt(&c.Scoring.KillPoints, def.Scoring.KillPoints)
	fixInt(&c.Scoring.PointsPerLevel, def.Scoring.PointsPerLevel)
}
