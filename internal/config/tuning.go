package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning table fails validation.
var ErrInvalidTuning = errors.New("invalid tuning")

// Range is a closed [Min, Max] interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Archetype holds the per-kind enemy data. Colour ranges are RGB in [0,1].
type Archetype struct {
	Radius float64 `yaml:"radius"`
	Speed  Range   `yaml:"speed"`
	Red    Range   `yaml:"red"`
	Green  Range   `yaml:"green"`
	Blue   Range   `yaml:"blue"`
}

// SpawnTuning configures the Spawner.
type SpawnTuning struct {
	MaxEnemies       int          `yaml:"max_enemies"`
	InitialCountdown int          `yaml:"initial_countdown"` // Frames before the first burst
	Jitter           int          `yaml:"jitter"`            // ± frames applied to each interval
	MinCountdown     int          `yaml:"min_countdown"`
	Attempts         int          `yaml:"attempts"`      // Placement tries per spawn
	EdgeMargin       float64      `yaml:"edge_margin"`   // Distance beyond the view edge
	MinAngleGap      float64      `yaml:"min_angle_gap"` // Radians between consecutive spawns
	OverlapMargin    float64      `yaml:"overlap_margin"`
	Archetypes       [3]Archetype `yaml:"archetypes"`
}

// FlockTuning configures steering and separation.
type FlockTuning struct {
	Smoothing          float64 `yaml:"smoothing"`           // Per-tick lerp factor toward the target velocity
	SeparationMargin   float64 `yaml:"separation_margin"`   // Added to the radius sum
	SeparationStrength float64 `yaml:"separation_strength"` // Fraction of the overlap corrected per tick
}

// CombatTuning configures projectiles, touch damage and the damage gate.
type CombatTuning struct {
	PlayerRadius      float64 `yaml:"player_radius"`
	PlayerHP          int     `yaml:"player_hp"`
	InvulnFrames      int     `yaml:"invuln_frames"`
	FlashDecay        float64 `yaml:"flash_decay"`
	FireDelay         int     `yaml:"fire_delay"`
	BulletSpeed       float64 `yaml:"bullet_speed"`
	BulletLifetime    int     `yaml:"bullet_lifetime"`
	BulletRadius      float64 `yaml:"bullet_radius"`
	MuzzleSide        float64 `yaml:"muzzle_side"`
	MuzzleForward     float64 `yaml:"muzzle_forward"`
	EnemyBulletSpeed  float64 `yaml:"enemy_bullet_speed"`
	EnemyBulletRadius float64 `yaml:"enemy_bullet_radius"`
	EnemyBulletLife   int     `yaml:"enemy_bullet_lifetime"`
	EnemyBulletDamage int     `yaml:"enemy_bullet_damage"`
	ShootRangeMin     float64 `yaml:"shoot_range_min"` // Exclusive; closer enemies melee instead
	ShootRangeMax     float64 `yaml:"shoot_range_max"` // Inclusive
	ShootCooldownMin  int     `yaml:"shoot_cooldown_min"`
	ShootCooldownMax  int     `yaml:"shoot_cooldown_max"`
	TouchDamage       int     `yaml:"touch_damage"`
	TouchCooldown     int     `yaml:"touch_cooldown"`
	MaxEnemyBullets   int     `yaml:"max_enemy_bullets"`
	MaxImpacts        int     `yaml:"max_impacts"`
}

// Tuning is the complete gameplay parameter table.
type Tuning struct {
	Spawn  SpawnTuning  `yaml:"spawn"`
	Flock  FlockTuning  `yaml:"flock"`
	Combat CombatTuning `yaml:"combat"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		Spawn: SpawnTuning{
			MaxEnemies:       300,
			InitialCountdown: 120,
			Jitter:           40,
			MinCountdown:     40,
			Attempts:         30,
			EdgeMargin:       0.40,
			MinAngleGap:      0.7,
			OverlapMargin:    0.05,
			Archetypes: [3]Archetype{
				{
					Radius: 0.12,
					Speed:  Range{0.010, 0.016},
					Red:    Range{0.3, 0.9}, Green: Range{0.2, 0.6}, Blue: Range{0.6, 1.0},
				},
				{
					Radius: 0.13,
					Speed:  Range{0.012, 0.018},
					Red:    Range{0.6, 1.0}, Green: Range{0.2, 0.8}, Blue: Range{0.2, 0.6},
				},
				{
					Radius: 0.14,
					Speed:  Range{0.009, 0.014},
					Red:    Range{0.2, 0.6}, Green: Range{0.7, 1.0}, Blue: Range{0.2, 0.8},
				},
			},
		},
		Flock: FlockTuning{
			Smoothing:          0.07,
			SeparationMargin:   0.02,
			SeparationStrength: 0.20,
		},
		Combat: CombatTuning{
			PlayerRadius:      0.20,
			PlayerHP:          100,
			InvulnFrames:      10,
			FlashDecay:        0.08,
			FireDelay:         8,
			BulletSpeed:       0.22,
			BulletLifetime:    140,
			BulletRadius:      0.03,
			MuzzleSide:        0.08,
			MuzzleForward:     0.22,
			EnemyBulletSpeed:  0.020,
			EnemyBulletRadius: 0.03,
			EnemyBulletLife:   320,
			EnemyBulletDamage: 2,
			ShootRangeMin:     0.55,
			ShootRangeMax:     5.5,
			ShootCooldownMin:  40,
			ShootCooldownMax:  90,
			TouchDamage:       2,
			TouchCooldown:     18,
			MaxEnemyBullets:   800,
			MaxImpacts:        300,
		},
	}
}

// LoadTuning reads a YAML file and overlays it on Default. Keys missing from the
// file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate checks that every parameter is usable by the simulation.
func (t Tuning) Validate() error {
	s, f, c := t.Spawn, t.Flock, t.Combat
	switch {
	case s.MaxEnemies <= 0:
		return fmt.Errorf("%w: spawn.max_enemies must be positive", ErrInvalidTuning)
	case s.Attempts <= 0:
		return fmt.Errorf("%w: spawn.attempts must be positive", ErrInvalidTuning)
	case s.Jitter < 0 || s.MinCountdown <= 0:
		return fmt.Errorf("%w: spawn jitter/min_countdown out of range", ErrInvalidTuning)
	case f.Smoothing <= 0 || f.Smoothing > 1:
		return fmt.Errorf("%w: flock.smoothing must be in (0,1]", ErrInvalidTuning)
	case c.PlayerHP <= 0 || c.PlayerRadius <= 0:
		return fmt.Errorf("%w: player hp/radius must be positive", ErrInvalidTuning)
	case c.ShootCooldownMin > c.ShootCooldownMax:
		return fmt.Errorf("%w: combat shoot cooldown min exceeds max", ErrInvalidTuning)
	case c.ShootRangeMin >= c.ShootRangeMax:
		return fmt.Errorf("%w: combat shoot range min must be below max", ErrInvalidTuning)
	case c.MaxEnemyBullets <= 0 || c.MaxImpacts <= 0:
		return fmt.Errorf("%w: combat caps must be positive", ErrInvalidTuning)
	}
	for i, a := range s.Archetypes {
		if a.Radius <= 0 || a.Speed.Min <= 0 || a.Speed.Min > a.Speed.Max {
			return fmt.Errorf("%w: spawn.archetypes[%d] needs positive radius and speed", ErrInvalidTuning, i)
		}
	}
	return nil
}
