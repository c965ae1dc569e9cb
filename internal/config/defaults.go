package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default space shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: ShooterWorld{
			Width:  800,
			Height: 600,
		},
		Player: ShooterPlayer{
			Width:        60,
			Height:       60,
			Speed:        5.0,
			Lives:        3,
			BottomOffset: 60,
		},
		Bullet: ShooterBullet{
			Width:  30,
			Height: 30,
			Speed:  8.0,
		},
		Enemy: ShooterEnemy{
			Width:         80,
			Height:        80,
			BaseCount:     3,
			CountPerLevel: 3,
			BaseSpeed:     1.0,
			SpeedPerLevel: 0.3,
			MinSpeed:      0.5,
			JitterSteps:   3,
			JitterStep:    0.1,
			SpeedScale:    1.0,
		},
		Boss: ShooterBoss{
			Width:         160,
			Height:        100,
			Y:             40,
			Speed:         3.0,
			Health:        100,
			FirstVolley:   1.5,
			MinInterval:   0.3,
			BulletWidth:   16,
			BulletHeight:  30,
			BulletSpeed:   6.0,
			SpreadOffset:  50,
			DefeatedBonus: 10,
		},
		Scoring: ShooterScoring{
			KillPoints:     1,
			PointsPerLevel: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter", "shooter_boss":
		return defaultShooterYAML
	default:
		return nil
	}
}
