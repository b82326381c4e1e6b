package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spaceshoot/internal/config"
	"github.com/tomz197/spaceshoot/internal/object"
	"github.com/tomz197/spaceshoot/internal/physics"
)

func TestSpawnerWaitsForCountdown(t *testing.T) {
	s := NewSpawner(config.Default().Spawn, 1)
	d := DifficultyFor(1)

	var enemies []object.Enemy
	for i := 0; i < 119; i++ {
		enemies = s.Update(enemies, d, 0, 0, DefaultView)
	}
	assert.Empty(t, enemies)

	enemies = s.Update(enemies, d, 0, 0, DefaultView)
	assert.NotEmpty(t, enemies)
	assert.LessOrEqual(t, len(enemies), d.SpawnBurst)
	assert.GreaterOrEqual(t, s.Countdown(), 260)
	assert.LessOrEqual(t, s.Countdown(), 340)
}

func TestSpawnerPlacement(t *testing.T) {
	tun := config.Default().Spawn
	s := NewSpawner(tun, 42)
	d := Difficulty{SpeedMultiplier: 1.2, SpawnInterval: 200, SpawnBurst: 8}
	px, py := 3.0, -2.0

	s.countdown = 1
	enemies := s.Update(nil, d, px, py, DefaultView)
	require.NotEmpty(t, enemies)

	prevAngle := math.NaN()
	for i, e := range enemies {
		assert.Greater(t, e.Radius, 0.0)
		assert.Greater(t, e.Speed, 0.0)
		assert.Zero(t, e.ShootCD)

		a := tun.Archetypes[e.Kind]
		assert.Equal(t, a.Radius, e.Radius)
		assert.GreaterOrEqual(t, e.Speed, a.Speed.Min*d.SpeedMultiplier-1e-12)
		assert.LessOrEqual(t, e.Speed, a.Speed.Max*d.SpeedMultiplier+1e-12)

		// just outside the view
		outX := math.Abs(e.X-px) > DefaultView.HalfWidth
		outY := math.Abs(e.Y-py) > DefaultView.HalfHeight
		assert.True(t, outX || outY, "enemy %d inside view", i)

		angle := math.Atan2(e.Y-py, e.X-px)
		if !math.IsNaN(prevAngle) {
			assert.GreaterOrEqual(t, physics.AngleDiff(angle, prevAngle), tun.MinAngleGap)
		}
		prevAngle = angle

		for j := 0; j < i; j++ {
			o := enemies[j]
			dist := physics.Distance(e.X, e.Y, o.X, o.Y)
			assert.GreaterOrEqual(t, dist, e.Radius+o.Radius+tun.OverlapMargin-1e-9)
		}
	}
}

func TestSpawnerRespectsCap(t *testing.T) {
	tun := config.Default().Spawn
	s := NewSpawner(tun, 7)
	d := DifficultyFor(100)

	full := make([]object.Enemy, tun.MaxEnemies)
	s.countdown = 1
	full = s.Update(full, d, 0, 0, DefaultView)
	assert.Len(t, full, tun.MaxEnemies)
	assert.Equal(t, 1, s.Countdown(), "timer stays paused at the cap")

	near := make([]object.Enemy, tun.MaxEnemies-1)
	for i := range near {
		near[i].X = 1000 + float64(i)
	}
	near = s.Update(near, d, 0, 0, DefaultView)
	assert.LessOrEqual(t, len(near), tun.MaxEnemies)
}

func TestSpawnerResetReplays(t *testing.T) {
	s := NewSpawner(config.Default().Spawn, 99)
	d := Difficulty{SpeedMultiplier: 1, SpawnInterval: 100, SpawnBurst: 4}

	run := func() []object.Enemy {
		var out []object.Enemy
		for i := 0; i < 500; i++ {
			out = s.Update(out, d, 0, 0, DefaultView)
		}
		return out
	}

	first := run()
	s.Reset(99)
	second := run()
	assert.Equal(t, first, second)
}

func TestNewEnemyForEveryKind(t *testing.T) {
	s := NewSpawner(config.Default().Spawn, 3)
	for k := object.Kind(0); k < object.KindCount; k++ {
		e := s.NewEnemy(k, 1, 2, 1.45)
		assert.Equal(t, k, e.Kind)
		assert.Equal(t, 1.0, e.X)
		assert.Equal(t, 2.0, e.Y)
		assert.Greater(t, e.Radius, 0.0)
		assert.Greater(t, e.Speed, 0.0)
		assert.GreaterOrEqual(t, e.Color.R, 0.0)
		assert.LessOrEqual(t, e.Color.R, 1.0)
	}
}
