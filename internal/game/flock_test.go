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

func TestSteerEasesTowardTarget(t *testing.T) {
	f := NewFlockField(config.Default().Flock)
	enemies := []object.Enemy{{X: 1, Radius: 0.12, Speed: 0.01}}

	f.Steer(enemies, 0, 0)

	e := enemies[0]
	// 7% of the way from rest toward the chase velocity
	assert.InDelta(t, -0.0007, e.VX, 1e-9)
	assert.InDelta(t, 0, e.VY, 1e-12)
	assert.InDelta(t, 1-0.0007, e.X, 1e-9)
}

func TestSteerConvergesToSpeed(t *testing.T) {
	f := NewFlockField(config.Default().Flock)
	enemies := []object.Enemy{{X: 0, Y: 50, Radius: 0.12, Speed: 0.015}}
	for i := 0; i < 300; i++ {
		f.Steer(enemies, 0, 0)
	}
	e := enemies[0]
	assert.InDelta(t, 0.015, physics.Distance(0, 0, e.VX, e.VY), 1e-6)
	assert.Less(t, e.Y, 50.0)
}

func TestSeparatePushesPairApart(t *testing.T) {
	f := NewFlockField(config.Default().Flock)
	enemies := []object.Enemy{
		{X: 0, Radius: 0.12},
		{X: 0.1, Radius: 0.12},
	}

	f.Separate(enemies)

	// overlap 0.16, each side moves half of 20%
	assert.InDelta(t, -0.016, enemies[0].X, 1e-5)
	assert.InDelta(t, 0.116, enemies[1].X, 1e-5)
	assert.InDelta(t, 0, enemies[0].Y, 1e-12)
}

func TestSeparateLeavesDistantPairs(t *testing.T) {
	f := NewFlockField(config.Default().Flock)
	enemies := []object.Enemy{
		{X: 0, Radius: 0.12},
		{X: 0.5, Radius: 0.12},
	}
	f.Separate(enemies)
	assert.Equal(t, 0.0, enemies[0].X)
	assert.Equal(t, 0.5, enemies[1].X)
}

func TestSeparateCoincidentPairSplits(t *testing.T) {
	f := NewFlockField(config.Default().Flock)
	enemies := []object.Enemy{{X: 1, Y: 2, Radius: 0.12}, {X: 1, Y: 2, Radius: 0.12}}
	f.Separate(enemies)
	for _, e := range enemies {
		require.False(t, math.IsNaN(e.X) || math.IsNaN(e.Y), "NaN position")
	}

	// 20% of the 0.26 overlap, half to each member, along +x
	assert.InDelta(t, 1.026, enemies[0].X, 1e-5)
	assert.InDelta(t, 0.974, enemies[1].X, 1e-5)
	assert.Equal(t, 2.0, enemies[0].Y)
	assert.Equal(t, 2.0, enemies[1].Y)

	// steering toward the same point no longer keeps them merged
	f.Steer(enemies, 5, 2)
	assert.Greater(t, physics.Distance(enemies[0].X, enemies[0].Y, enemies[1].X, enemies[1].Y), 0.05)
}
