package shooter

// Variant parameterizes the shared simulation core.
// Classic and BossRush differ only in these values; the step logic is the same.
type Variant struct {
	ID    string
	Title string

	HasBossPhase bool // Clearing the level cap starts a boss fight instead of a win
	LevelCap     int

	MaxEnemies     int
	MaxBullets     int
	MaxBossBullets int

	SpawnBand        int // Width of the centred strip enemies spawn in
	SpawnYMin        int
	SpawnYMax        int
	PlacementRetries int // Attempts to find a non-overlapping spot; 0 allows overlap

	SaveFile   string // Default save file name, relative to the working directory
	SaveFields int    // Integers per save line
}

// Classic returns the wave-only variant: ten levels, then a win.
func Classic() Variant {
	return Variant{
		ID:               "shooter",
		Title:            "Space Shooter",
		HasBossPhase:     false,
		LevelCap:         10,
		MaxEnemies:       20,
		MaxBullets:       50,
		MaxBossBullets:   0,
		SpawnBand:        400,
		SpawnYMin:        60,
		SpawnYMax:        200,
		PlacementRetries: 0,
		SaveFile:         "savegame.txt",
		SaveFields:       5,
	}
}

// BossRush returns the variant with five levels followed by a boss fight.
func BossRush() Variant {
	return Variant{
		ID:               "shooter_boss",
		Title:            "Space Shooter: Boss Rush",
		HasBossPhase:     true,
		LevelCap:         5,
		MaxEnemies:       30,
		MaxBullets:       10,
		MaxBossBullets:   20,
		SpawnBand:        500,
		SpawnYMin:        60,
		SpawnYMax:        220,
		PlacementRetries: 30,
		SaveFile:         "savegame_boss.txt",
		SaveFields:       6,
	}
}

// maxLoadLevel is the highest level a save may restore.
// The boss variant encodes the boss phase as LevelCap+1.
func (v Variant) maxLoadLevel() int {
	if v.HasBossPhase {
		return v.LevelCap + 1
	}
	return v.LevelCap
}
