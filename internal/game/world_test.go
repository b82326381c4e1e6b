package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spaceshoot/internal/object"
)

// scripted returns a deterministic intent that circles, aims and fires.
func scripted(tick int) Intent {
	in := Intent{Fire: tick%3 != 0}
	switch (tick / 90) % 4 {
	case 0:
		in.MoveX = 0.02
	case 1:
		in.MoveY = 0.02
	case 2:
		in.MoveX = -0.02
	default:
		in.MoveY = -0.02
	}
	if tick%40 == 0 {
		in.Aim = true
		in.AimX = float64(tick%7) - 3
		in.AimY = float64(tick%5) - 2
	}
	return in
}

func TestNewWorldInitialState(t *testing.T) {
	w := NewWorld(5)

	p := w.Player()
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 0.0, p.Y)
	assert.Equal(t, 100, p.HP)
	assert.Equal(t, 100, p.MaxHP)
	assert.Empty(t, w.Enemies())
	assert.Empty(t, w.PlayerBullets())
	assert.Empty(t, w.EnemyBullets())
	assert.Empty(t, w.Impacts())
	assert.Equal(t, NewProgression(), w.Progress())
	assert.Equal(t, DifficultyFor(1), w.Difficulty())
	assert.False(t, w.Over())
}

func TestDeterministicReplay(t *testing.T) {
	a := NewWorld(1234)
	b := NewWorld(1234)
	for i := 0; i < 1500; i++ {
		a.AdvanceOneTick(scripted(i))
		b.AdvanceOneTick(scripted(i))
	}

	require.NotEmpty(t, a.Enemies())
	assert.Equal(t, a.Player(), b.Player())
	assert.Equal(t, a.Enemies(), b.Enemies())
	assert.Equal(t, a.PlayerBullets(), b.PlayerBullets())
	assert.Equal(t, a.EnemyBullets(), b.EnemyBullets())
	assert.Equal(t, a.Impacts(), b.Impacts())
	assert.Equal(t, a.Progress(), b.Progress())
}

func TestInitializeRunReplays(t *testing.T) {
	w := NewWorld(77)
	for i := 0; i < 800; i++ {
		w.AdvanceOneTick(scripted(i))
	}
	first := append([]object.Enemy(nil), w.Enemies()...)
	firstPlayer := w.Player()

	w.InitializeRun(77)
	assert.Empty(t, w.Enemies())
	assert.Equal(t, 100, w.Player().HP)
	assert.Equal(t, uint64(0), w.Ticks())

	for i := 0; i < 800; i++ {
		w.AdvanceOneTick(scripted(i))
	}
	assert.Equal(t, first, w.Enemies())
	assert.Equal(t, firstPlayer, w.Player())
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := NewWorld(1)
	b := NewWorld(2)
	for i := 0; i < 400; i++ {
		a.AdvanceOneTick(Intent{})
		b.AdvanceOneTick(Intent{})
	}
	require.NotEmpty(t, a.Enemies())
	assert.NotEqual(t, a.Enemies(), b.Enemies())
}

func TestHealthNeverIncreases(t *testing.T) {
	w := NewWorld(9)
	prev := w.Player().HP
	for i := 0; i < 6000 && !w.Over(); i++ {
		w.AdvanceOneTick(Intent{})
		hp := w.Player().HP
		assert.GreaterOrEqual(t, hp, 0)
		assert.LessOrEqual(t, hp, prev)
		prev = hp
	}
	assert.Less(t, prev, 100, "swarm should have reached the idle player")
}

func TestEnemyCountBounded(t *testing.T) {
	w := NewWorld(11)
	for i := 0; i < 3000 && !w.Over(); i++ {
		w.AdvanceOneTick(scripted(i))
		assert.LessOrEqual(t, len(w.Enemies()), 300)
		assert.LessOrEqual(t, len(w.EnemyBullets()), 800)
		assert.LessOrEqual(t, len(w.Impacts()), 300)
	}
}

func TestTouchDamageCadence(t *testing.T) {
	w := NewWorld(3)
	w.SpawnAt(object.KindOrb, 0, 0)

	w.AdvanceOneTick(Intent{})
	assert.Equal(t, 98, w.Player().HP)
	require.Len(t, w.Events(), 1)
	assert.Equal(t, EventPlayerDamaged, w.Events()[0].Kind)
	assert.Equal(t, object.RegionBody, w.Events()[0].Region)

	for i := 1; i < 18; i++ {
		w.AdvanceOneTick(Intent{})
	}
	assert.Equal(t, 98, w.Player().HP)

	w.AdvanceOneTick(Intent{})
	assert.Equal(t, 96, w.Player().HP)
}

func TestEnemyFiresOnceThenCoolsDown(t *testing.T) {
	w := NewWorld(4)
	w.SpawnAt(object.KindDart, 3, 0)

	w.AdvanceOneTick(Intent{})
	require.Len(t, w.EnemyBullets(), 1)
	cd := w.Enemies()[0].ShootCD
	assert.GreaterOrEqual(t, cd, 40)
	assert.LessOrEqual(t, cd, 90)

	for i := 1; i < 40; i++ {
		w.AdvanceOneTick(Intent{})
	}
	assert.Len(t, w.EnemyBullets(), 1)
}

func TestKillsLevelUp(t *testing.T) {
	w := NewWorld(8)
	for i := 0; i < 10; i++ {
		y := -1.8 + 0.4*float64(i)
		w.SpawnAt(object.KindOrb, 1, y)
		// one frame of travel short of the enemy
		w.combat.playerBullets = append(w.combat.playerBullets, object.NewBullet(0.78, y, 1, 0, 0.22, 140))
	}

	w.AdvanceOneTick(Intent{})

	assert.Empty(t, w.Enemies())
	assert.Len(t, w.Impacts(), 10)
	p := w.Progress()
	assert.Equal(t, 10, p.Score)
	assert.Equal(t, 2, p.Level)
	assert.Zero(t, p.KillsInLevel)

	var kills, levels int
	for _, e := range w.Events() {
		switch e.Kind {
		case EventEnemyKilled:
			kills++
		case EventLevelUp:
			levels++
			assert.Equal(t, 2, e.Amount)
		}
	}
	assert.Equal(t, 10, kills)
	assert.Equal(t, 1, levels)
	assert.Equal(t, DifficultyFor(2), w.Difficulty())
}

func TestFireCadence(t *testing.T) {
	w := NewWorld(6)
	fired := 0
	for i := 0; i < 20; i++ {
		before := len(w.PlayerBullets())
		w.AdvanceOneTick(Intent{Fire: true})
		if len(w.PlayerBullets()) > before {
			fired++
		}
	}
	// volleys at frames 0, 8 and 16
	assert.Equal(t, 3, fired)
	assert.Len(t, w.PlayerBullets(), 6)
}

func TestIntentMovesAndAims(t *testing.T) {
	w := NewWorld(6)
	w.AdvanceOneTick(Intent{MoveX: 0.02, MoveY: -0.02, Aim: true, AimX: 0, AimY: 5})

	p := w.Player()
	assert.InDelta(t, 0.02, p.X, 1e-12)
	assert.InDelta(t, -0.02, p.Y, 1e-12)
	assert.InDelta(t, 0, p.AimX, 1e-2)
	assert.InDelta(t, 1, p.AimY, 1e-2)

	// no aim keeps the previous direction
	w.AdvanceOneTick(Intent{})
	assert.Equal(t, p.AimX, w.Player().AimX)
	assert.Equal(t, p.AimY, w.Player().AimY)
}

func TestRunOverStopsTicking(t *testing.T) {
	w := NewWorld(2)
	w.player.HP = 2
	w.SpawnAt(object.KindSquid, 0, 0)

	w.AdvanceOneTick(Intent{})
	require.True(t, w.Over())
	assert.Equal(t, 0, w.Player().HP)
	ticks := w.Ticks()

	w.AdvanceOneTick(Intent{Fire: true, MoveX: 1})
	assert.Equal(t, ticks, w.Ticks())
	assert.Equal(t, 0.0, w.Player().X)
	assert.Empty(t, w.Events())
}

func TestSpawnAtIgnoresUnknownKind(t *testing.T) {
	w := NewWorld(1)
	w.SpawnAt(object.KindCount, 0, 0)
	w.SpawnAt(-1, 0, 0)
	assert.Empty(t, w.Enemies())
}
