package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKillsRequired(t *testing.T) {
	assert.Equal(t, 10, KillsRequired(1))
	assert.Equal(t, 10, KillsRequired(10))
	assert.Equal(t, 20, KillsRequired(11))
	assert.Equal(t, 40, KillsRequired(21))
	assert.Equal(t, 10<<20, KillsRequired(10000))
}

func TestAddKillCarriesSurplus(t *testing.T) {
	p := NewProgression()

	gained := p.AddKill(25)

	assert.Equal(t, 2, gained)
	assert.Equal(t, 25, p.Score)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 5, p.KillsInLevel)
	assert.Equal(t, 10, p.KillsNeeded)
}

func TestAddKillSingleSteps(t *testing.T) {
	p := NewProgression()
	for i := 0; i < 9; i++ {
		assert.Zero(t, p.AddKill(1))
	}
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 1, p.AddKill(1))
	assert.Equal(t, 2, p.Level)
	assert.Zero(t, p.KillsInLevel)
}

func TestAddKillRequirementDoubles(t *testing.T) {
	p := NewProgression()
	p.AddKill(100)
	assert.Equal(t, 11, p.Level)
	assert.Equal(t, 20, p.KillsNeeded)

	p.AddKill(19)
	assert.Equal(t, 11, p.Level)
	p.AddKill(1)
	assert.Equal(t, 12, p.Level)
}

func TestAddKillIgnoresNonPositive(t *testing.T) {
	p := NewProgression()
	assert.Zero(t, p.AddKill(0))
	assert.Zero(t, p.AddKill(-3))
	assert.Equal(t, NewProgression(), p)
}

func TestTickCountsSeconds(t *testing.T) {
	p := NewProgression()
	for i := 0; i < 59; i++ {
		p.Tick()
	}
	assert.Zero(t, p.ElapsedSeconds)
	p.Tick()
	assert.Equal(t, 1, p.ElapsedSeconds)
	for i := 0; i < 120; i++ {
		p.Tick()
	}
	assert.Equal(t, 3, p.ElapsedSeconds)
}
