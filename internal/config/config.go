// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// ShooterConfig contains all tunables for the space shooter games.
// Pool capacities and the level cap belong to the game variant, not to this file.
type ShooterConfig struct {
	World   ShooterWorld   `yaml:"world" toml:"world"`
	Player  ShooterPlayer  `yaml:"player" toml:"player"`
	Bullet  ShooterBullet  `yaml:"bullet" toml:"bullet"`
	Enemy   ShooterEnemy   `yaml:"enemy" toml:"enemy"`
	Boss    ShooterBoss    `yaml:"boss" toml:"boss"`
	Scoring ShooterScoring `yaml:"scoring" toml:"scoring"`
}

// ShooterWorld defines the logical playfield in pixels.
type ShooterWorld struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// ShooterPlayer defines the player's ship.
type ShooterPlayer struct {
	Width        int     `yaml:"width" toml:"width"`
	Height       int     `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	Lives        int     `yaml:"lives" toml:"lives"`
	BottomOffset int     `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from spawn y to the bottom edge
}

// ShooterBullet defines the player's projectiles.
type ShooterBullet struct {
	Width  int     `yaml:"width" toml:"width"`
	Height int     `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// ShooterEnemy defines wave composition and enemy movement.
type ShooterEnemy struct {
	Width         int     `yaml:"width" toml:"width"`
	Height        int     `yaml:"height" toml:"height"`
	BaseCount     int     `yaml:"base_count" toml:"base_count"`
	CountPerLevel int     `yaml:"count_per_level" toml:"count_per_level"`
	BaseSpeed     float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level" toml:"speed_per_level"`
	MinSpeed      float64 `yaml:"min_speed" toml:"min_speed"`
	JitterSteps   int     `yaml:"jitter_steps" toml:"jitter_steps"` // Offsets drawn from [-steps, steps] * jitter_step
	JitterStep    float64 `yaml:"jitter_step" toml:"jitter_step"`
	SpeedScale    float64 `yaml:"speed_scale" toml:"speed_scale"` // Set by difficulty presets
}

// ShooterBoss defines the boss used by variants with a boss phase.
type ShooterBoss struct {
	Width         int     `yaml:"width" toml:"width"`
	Height        int     `yaml:"height" toml:"height"`
	Y             int     `yaml:"y" toml:"y"`
	Speed         float64 `yaml:"speed" toml:"speed"`
	Health        int     `yaml:"health" toml:"health"`
	FirstVolley   float64 `yaml:"first_volley" toml:"first_volley"` // Seconds before the first volley
	MinInterval   float64 `yaml:"min_interval" toml:"min_interval"`
	BulletWidth   int     `yaml:"bullet_width" toml:"bullet_width"`
	BulletHeight  int     `yaml:"bullet_height" toml:"bullet_height"`
	BulletSpeed   float64 `yaml:"bullet_speed" toml:"bullet_speed"`
	SpreadOffset  float64 `yaml:"spread_offset" toml:"spread_offset"`
	DefeatedBonus int     `yaml:"defeated_bonus" toml:"defeated_bonus"`
}

// ShooterScoring defines points and level thresholds.
type ShooterScoring struct {
	KillPoints     int `yaml:"kill_points" toml:"kill_points"`
	PointsPerLevel int `yaml:"points_per_level" toml:"points_per_level"` // Level-up at score >= level * points_per_level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset.
// Unknown strings yield the empty preset, meaning "leave the config alone".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
