package game

import "math"

// Difficulty is the spawn pressure derived from the current level.
type Difficulty struct {
	SpeedMultiplier float64 // Applied once to each new enemy's speed
	SpawnInterval   int     // Frames between bursts, before jitter
	SpawnBurst      int     // Spawn attempts per burst
}

// Curve breakpoints.
const (
	rampEndLevel      = 25
	lateStepLevels    = 5  // Levels per late-game step past rampEndLevel
	lateIntervalStep  = 4  // Frames removed from the interval per late step
	minSpawnInterval  = 90 // Late-game interval floor
	baseSpawnInterval = 300
	rampSpawnInterval = 160
	baseSpawnBurst    = 2
	rampSpawnBurst    = 6
	rampSpeed         = 0.45
)

// DifficultyFor maps a level to its difficulty snapshot. Up to level 25 every
// parameter interpolates linearly; past it speed is frozen and only spawn
// pressure keeps rising, one step every 5 levels.
func DifficultyFor(level int) Difficulty {
	if level < 1 {
		level = 1
	}
	capped := min(level, rampEndLevel)
	t := float64(capped-1) / float64(rampEndLevel-1)

	d := Difficulty{
		SpeedMultiplier: 1 + rampSpeed*t,
		SpawnInterval:   int(baseSpawnInterval - rampSpawnInterval*t),
		SpawnBurst:      baseSpawnBurst + int(math.Floor(rampSpawnBurst*t+0.5)),
	}

	if level > rampEndLevel {
		extra := (level - rampEndLevel) / lateStepLevels
		d.SpawnBurst += extra
		d.SpawnInterval = max(minSpawnInterval, d.SpawnInterval-extra*lateIntervalStep)
	}
	return d
}
