package game

import (
	"math/rand/v2"

	"github.com/tomz197/spaceshoot/internal/config"
	"github.com/tomz197/spaceshoot/internal/object"
	"github.com/tomz197/spaceshoot/internal/physics"
)

const combatStream = 0x434f_4d42_4154_5231

// Impact marker animation rates per frame.
const (
	impactGrow = 0.08
	impactFade = 0.06
)

// CombatResolver owns every projectile and impact marker and resolves all
// damage between the actor and the swarm.
type CombatResolver struct {
	tuning config.CombatTuning
	pcg    *rand.PCG
	rng    *rand.Rand

	playerBullets []object.Bullet
	enemyBullets  []object.EnemyBullet
	impacts       []object.Impact
}

// NewCombatResolver creates a resolver seeded with seed.
func NewCombatResolver(t config.CombatTuning, seed uint64) *CombatResolver {
	pcg := rand.NewPCG(seed, combatStream)
	return &CombatResolver{
		tuning: t,
		pcg:    pcg,
		rng:    rand.New(pcg),
	}
}

// Reset clears all projectiles and markers and re-seeds the resolver.
func (c *CombatResolver) Reset(seed uint64) {
	c.pcg.Seed(seed, combatStream)
	c.playerBullets = c.playerBullets[:0]
	c.enemyBullets = c.enemyBullets[:0]
	c.impacts = c.impacts[:0]
}

// PlayerBullets returns the live player bullets. The slice is owned by the resolver.
func (c *CombatResolver) PlayerBullets() []object.Bullet { return c.playerBullets }

// EnemyBullets returns the live enemy bullets. The slice is owned by the resolver.
func (c *CombatResolver) EnemyBullets() []object.EnemyBullet { return c.enemyBullets }

// Impacts returns the live impact markers. The slice is owned by the resolver.
func (c *CombatResolver) Impacts() []object.Impact { return c.impacts }

// FireVolley emits the actor's two bullets, one from each muzzle.
func (c *CombatResolver) FireVolley(a *object.Actor) {
	t := c.tuning
	x1, y1, x2, y2 := a.Muzzles(t.MuzzleSide, t.MuzzleForward)
	c.playerBullets = append(c.playerBullets,
		object.NewBullet(x1, y1, a.AimX, a.AimY, t.BulletSpeed, t.BulletLifetime),
		object.NewBullet(x2, y2, a.AimX, a.AimY, t.BulletSpeed, t.BulletLifetime),
	)
}

// Engage runs each enemy's per-frame combat: cooldowns, touch damage while in
// contact, and firing when the actor is within shooting range.
func (c *CombatResolver) Engage(enemies []object.Enemy, a *object.Actor, sink eventSink) {
	t := c.tuning
	for i := range enemies {
		e := &enemies[i]
		e.TickCooldowns()

		ux, uy, d := physics.Toward(e.X, e.Y, a.X, a.Y)

		if d < e.Radius+a.Radius {
			a.Glow(object.RegionBody)
			if e.TouchCD <= 0 {
				c.damage(a, t.TouchDamage, object.RegionBody, sink)
				e.TouchCD = t.TouchCooldown
			}
		}

		if d > t.ShootRangeMin && d <= t.ShootRangeMax && e.ShootCD <= 0 {
			c.fireAt(e, ux, uy)
			e.ShootCD = c.intRange(t.ShootCooldownMin, t.ShootCooldownMax)
		}
	}
}

// fireAt launches a bullet from the enemy's surface along the aim line.
func (c *CombatResolver) fireAt(e *object.Enemy, ux, uy float64) {
	t := c.tuning
	offset := e.Radius + 0.02
	b := object.EnemyBullet{
		Bullet: object.NewBullet(e.X+ux*offset, e.Y+uy*offset, ux, uy, t.EnemyBulletSpeed, t.EnemyBulletLife),
		Damage: t.EnemyBulletDamage,
	}
	c.enemyBullets = append(c.enemyBullets, b)
}

// Project moves every projectile one frame and drops the expired ones.
func (c *CombatResolver) Project() {
	kept := c.playerBullets[:0]
	for _, b := range c.playerBullets {
		if !b.Advance() {
			kept = append(kept, b)
		}
	}
	clear(c.playerBullets[len(kept):])
	c.playerBullets = kept

	keptE := c.enemyBullets[:0]
	for _, b := range c.enemyBullets {
		if !b.Advance() {
			keptE = append(keptE, b)
		}
	}
	clear(c.enemyBullets[len(keptE):])
	c.enemyBullets = keptE
}

// ResolveEnemyHits consumes every enemy bullet touching the actor. The bullet
// is always consumed; damage still goes through the invulnerability gate.
func (c *CombatResolver) ResolveEnemyHits(a *object.Actor, sink eventSink) {
	r := c.tuning.EnemyBulletRadius
	kept := c.enemyBullets[:0]
	for _, b := range c.enemyBullets {
		if physics.CirclesOverlap(b.X, b.Y, r, a.X, a.Y, a.Radius) {
			c.damage(a, b.Damage, a.RegionFor(b.X, b.Y), sink)
			continue
		}
		kept = append(kept, b)
	}
	clear(c.enemyBullets[len(kept):])
	c.enemyBullets = kept
}

// ResolvePlayerHits tests each player bullet against the live enemies. The
// first enemy found within reach (closed boundary) dies with the bullet, so a
// bullet kills at most one enemy. Dead enemies are compacted out of the
// returned slice; the kill count is returned alongside.
func (c *CombatResolver) ResolvePlayerHits(enemies []object.Enemy, sink eventSink) ([]object.Enemy, int) {
	r := c.tuning.BulletRadius
	kills := 0
	for bi := range c.playerBullets {
		b := &c.playerBullets[bi]
		for ei := range enemies {
			e := &enemies[ei]
			if e.IsDestroyed() {
				continue
			}
			if physics.CirclesTouch(b.X, b.Y, r, e.X, e.Y, e.Radius) {
				e.MarkDestroyed()
				b.MarkDestroyed()
				c.impacts = append(c.impacts, object.NewImpact(e.X, e.Y))
				sink.emit(Event{Kind: EventEnemyKilled, X: e.X, Y: e.Y})
				kills++
				break
			}
		}
	}
	if kills == 0 {
		return enemies, 0
	}

	keptB := c.playerBullets[:0]
	for _, b := range c.playerBullets {
		if !b.IsDestroyed() {
			keptB = append(keptB, b)
		}
	}
	clear(c.playerBullets[len(keptB):])
	c.playerBullets = keptB

	kept := enemies[:0]
	for _, e := range enemies {
		if !e.IsDestroyed() {
			kept = append(kept, e)
		}
	}
	clear(enemies[len(kept):])
	return kept, kills
}

// UpdateImpacts animates the impact markers and drops faded ones.
func (c *CombatResolver) UpdateImpacts() {
	kept := c.impacts[:0]
	for _, m := range c.impacts {
		if !m.Update(impactGrow, impactFade) {
			kept = append(kept, m)
		}
	}
	c.impacts = kept
}

// ApplyCaps trims the enemy bullets and impact markers to their caps, keeping
// the newest entries.
func (c *CombatResolver) ApplyCaps() {
	c.enemyBullets = keepNewest(c.enemyBullets, c.tuning.MaxEnemyBullets)
	c.impacts = keepNewest(c.impacts, c.tuning.MaxImpacts)
}

func keepNewest[T any](s []T, limit int) []T {
	excess := len(s) - limit
	if excess <= 0 {
		return s
	}
	n := copy(s, s[excess:])
	clear(s[n:])
	return s[:n]
}

// damage funnels every hit through the actor's gate and reports applied damage.
func (c *CombatResolver) damage(a *object.Actor, dmg int, region object.Region, sink eventSink) {
	if a.ApplyDamage(dmg, c.tuning.InvulnFrames, region) {
		sink.emit(Event{Kind: EventPlayerDamaged, X: a.X, Y: a.Y, Amount: dmg, Region: region})
	}
}

func (c *CombatResolver) intRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + c.rng.IntN(hi-lo+1)
}
