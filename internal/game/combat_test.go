package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/spaceshoot/internal/config"
	"github.com/tomz197/spaceshoot/internal/object"
)

// eventLog collects events emitted during a test.
type eventLog []Event

func (l *eventLog) emit(e Event) { *l = append(*l, e) }

func (l eventLog) count(kind EventKind) int {
	n := 0
	for _, e := range l {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func newTestResolver(mod func(*config.CombatTuning)) *CombatResolver {
	tun := config.Default().Combat
	if mod != nil {
		mod(&tun)
	}
	return NewCombatResolver(tun, 1)
}

func TestPlayerHitBoundaryIsClosed(t *testing.T) {
	c := newTestResolver(func(t *config.CombatTuning) { t.BulletRadius = 0.25 })
	var log eventLog

	// exactly touching: distance equals the sum of radii
	c.playerBullets = []object.Bullet{{X: 0.75, Life: 10}}
	enemies := []object.Enemy{{Radius: 0.5}}
	enemies, kills := c.ResolvePlayerHits(enemies, &log)

	assert.Equal(t, 1, kills)
	assert.Empty(t, enemies)
	assert.Empty(t, c.PlayerBullets())
	assert.Len(t, c.Impacts(), 1)
	assert.Equal(t, 1, log.count(EventEnemyKilled))
}

func TestPlayerHitMissJustOutside(t *testing.T) {
	c := newTestResolver(func(t *config.CombatTuning) { t.BulletRadius = 0.25 })
	var log eventLog

	c.playerBullets = []object.Bullet{{X: 0.7500001, Life: 10}}
	enemies := []object.Enemy{{Radius: 0.5}}
	enemies, kills := c.ResolvePlayerHits(enemies, &log)

	assert.Zero(t, kills)
	assert.Len(t, enemies, 1)
	assert.Len(t, c.PlayerBullets(), 1)
	assert.Empty(t, log)
}

func TestPlayerBulletKillsAtMostOne(t *testing.T) {
	c := newTestResolver(nil)
	var log eventLog

	c.playerBullets = []object.Bullet{{X: 0, Life: 10}, {X: 5, Life: 10}}
	enemies := []object.Enemy{
		{X: 0.05, Radius: 0.12, Kind: object.KindOrb},
		{X: -0.05, Radius: 0.12, Kind: object.KindDart},
		{X: 9, Radius: 0.12, Kind: object.KindSquid},
	}
	enemies, kills := c.ResolvePlayerHits(enemies, &log)

	assert.Equal(t, 1, kills)
	require.Len(t, enemies, 2)
	assert.Equal(t, object.KindDart, enemies[0].Kind)
	assert.Equal(t, object.KindSquid, enemies[1].Kind)
	require.Len(t, c.PlayerBullets(), 1)
	assert.Equal(t, 5.0, c.PlayerBullets()[0].X)
}

func TestEnemyBulletConsumedWhileInvulnerable(t *testing.T) {
	c := newTestResolver(nil)
	var log eventLog
	a := object.NewActor(0, 0, 100, 0.2)
	a.Invuln = 5

	c.enemyBullets = []object.EnemyBullet{{Bullet: object.Bullet{X: 0.1, Life: 10}, Damage: 2}}
	c.ResolveEnemyHits(&a, &log)

	assert.Empty(t, c.EnemyBullets())
	assert.Equal(t, 100, a.HP)
	assert.Equal(t, 5, a.Invuln)
	assert.Empty(t, log)
}

func TestEnemyBulletDamagesRegion(t *testing.T) {
	c := newTestResolver(nil)
	var log eventLog
	a := object.NewActor(0, 0, 100, 0.2)

	c.enemyBullets = []object.EnemyBullet{
		{Bullet: object.Bullet{Y: 0.15, Life: 10}, Damage: 2},
		{Bullet: object.Bullet{X: 3, Life: 10}, Damage: 2},
	}
	c.ResolveEnemyHits(&a, &log)

	assert.Equal(t, 98, a.HP)
	assert.Equal(t, 10, a.Invuln)
	assert.Len(t, c.EnemyBullets(), 1)
	require.Len(t, log, 1)
	assert.Equal(t, EventPlayerDamaged, log[0].Kind)
	assert.Equal(t, object.RegionHead, log[0].Region)
	assert.Equal(t, 2, log[0].Amount)
}

func TestEngageFiresInRange(t *testing.T) {
	c := newTestResolver(nil)
	var log eventLog
	a := object.NewActor(0, 0, 100, 0.2)
	enemies := []object.Enemy{
		{X: 3, Radius: 0.12},   // in range
		{X: 0.5, Radius: 0.12}, // too close
		{X: 6, Radius: 0.12},   // too far
	}

	c.Engage(enemies, &a, &log)

	require.Len(t, c.EnemyBullets(), 1)
	b := c.EnemyBullets()[0]
	assert.InDelta(t, 3-0.14, b.X, 1e-5)
	assert.Less(t, b.VX, 0.0)
	assert.Equal(t, 2, b.Damage)

	assert.GreaterOrEqual(t, enemies[0].ShootCD, 40)
	assert.LessOrEqual(t, enemies[0].ShootCD, 90)
	assert.Zero(t, enemies[1].ShootCD)
	assert.Zero(t, enemies[2].ShootCD)
	assert.Empty(t, log)
}

func TestEngageTouchCadence(t *testing.T) {
	c := newTestResolver(nil)
	var log eventLog
	a := object.NewActor(0, 0, 100, 0.2)
	enemies := []object.Enemy{{X: 0.1, Radius: 0.12}}

	c.Engage(enemies, &a, &log)
	assert.Equal(t, 98, a.HP)
	assert.Equal(t, 18, enemies[0].TouchCD)
	assert.Equal(t, 1.0, a.Flash[object.RegionBody])

	for i := 0; i < 17; i++ {
		a.TickTimers(0.08)
		c.Engage(enemies, &a, &log)
	}
	assert.Equal(t, 98, a.HP)

	a.TickTimers(0.08)
	c.Engage(enemies, &a, &log)
	assert.Equal(t, 96, a.HP)
	assert.Equal(t, 2, log.count(EventPlayerDamaged))
}

func TestProjectExpiresBullets(t *testing.T) {
	c := newTestResolver(nil)
	c.playerBullets = []object.Bullet{object.NewBullet(0, 0, 1, 0, 0.22, 1), object.NewBullet(0, 0, 0, 1, 0.22, 3)}
	c.enemyBullets = []object.EnemyBullet{{Bullet: object.NewBullet(0, 0, 1, 0, 0.02, 2)}}

	c.Project()
	require.Len(t, c.PlayerBullets(), 1)
	assert.InDelta(t, 0.22, c.PlayerBullets()[0].Y, 1e-12)
	assert.Len(t, c.EnemyBullets(), 1)

	c.Project()
	assert.Len(t, c.PlayerBullets(), 1)
	assert.Empty(t, c.EnemyBullets())
}

func TestFireVolley(t *testing.T) {
	c := newTestResolver(nil)
	a := object.NewActor(1, 1, 100, 0.2)
	a.AimAt(1, 5)

	c.FireVolley(&a)

	require.Len(t, c.PlayerBullets(), 2)
	for _, b := range c.PlayerBullets() {
		assert.InDelta(t, 1.22, b.Y, 1e-9)
		assert.InDelta(t, 0.22, b.VY, 1e-9)
		assert.Equal(t, 140, b.Life)
	}
	assert.InDelta(t, 0.16, c.PlayerBullets()[1].X-c.PlayerBullets()[0].X, 1e-9)
}

func TestApplyCapsKeepsNewest(t *testing.T) {
	c := newTestResolver(nil)
	for i := 0; i < 805; i++ {
		c.enemyBullets = append(c.enemyBullets, object.EnemyBullet{Damage: i})
	}
	for i := 0; i < 310; i++ {
		c.impacts = append(c.impacts, object.Impact{X: float64(i), Life: 1})
	}

	c.ApplyCaps()

	require.Len(t, c.EnemyBullets(), 800)
	assert.Equal(t, 5, c.EnemyBullets()[0].Damage)
	assert.Equal(t, 804, c.EnemyBullets()[799].Damage)
	require.Len(t, c.Impacts(), 300)
	assert.Equal(t, 10.0, c.Impacts()[0].X)
}

func TestKeepNewestUnderLimit(t *testing.T) {
	s := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2, 3}, keepNewest(s, 5))
	assert.Empty(t, keepNewest(s, 0))
}

func TestUpdateImpactsFades(t *testing.T) {
	c := newTestResolver(nil)
	c.impacts = []object.Impact{object.NewImpact(0, 0)}
	for i := 0; i < 100 && len(c.Impacts()) > 0; i++ {
		c.UpdateImpacts()
	}
	assert.Empty(t, c.Impacts())
}
