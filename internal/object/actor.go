package object

import (
	"math"

	"github.com/tomz197/spaceshoot/internal/physics"
)

// Actor is the player-controlled gunner.
type Actor struct {
	X, Y   float64 // Position (center)
	Radius float64 // Collision radius
	HP     int     // Health, [0, MaxHP]
	MaxHP  int

	Invuln int                  // Frames of damage immunity remaining
	Flash  [RegionCount]float64 // Hit-flash timers, decaying from 1 to 0

	AimX, AimY float64 // Unit aim direction

	fireCooldown int // Frames until the next volley
}

// NewActor creates an actor at (x,y) with full health, aiming along +x.
func NewActor(x, y float64, hp int, radius float64) Actor {
	return Actor{
		X:      x,
		Y:      y,
		Radius: radius,
		HP:     hp,
		MaxHP:  hp,
		AimX:   1,
	}
}

// Alive reports whether the actor has health left.
func (a *Actor) Alive() bool {
	return a.HP > 0
}

// Invulnerable reports whether damage is currently discarded.
func (a *Actor) Invulnerable() bool {
	return a.Invuln > 0
}

// Move translates the actor by the given delta.
func (a *Actor) Move(dx, dy float64) {
	a.X += dx
	a.Y += dy
}

// AimAt points the actor toward a world position. Aiming at the actor's own
// position falls back to +x.
func (a *Actor) AimAt(wx, wy float64) {
	a.AimX, a.AimY = physics.Unit(wx-a.X, wy-a.Y)
}

// ApplyDamage is the single damage gate. While invulnerable the hit is discarded
// and nothing changes. Otherwise HP drops (floored at 0), the invulnerability
// window restarts and the region flashes. Reports whether damage was applied.
func (a *Actor) ApplyDamage(dmg, invulnFrames int, region Region) bool {
	if a.Invulnerable() {
		return false
	}
	a.HP -= dmg
	if a.HP < 0 {
		a.HP = 0
	}
	a.Invuln = invulnFrames
	a.Glow(region)
	return true
}

// Glow lights a region's hit flash without applying damage.
func (a *Actor) Glow(region Region) {
	if region >= 0 && region < RegionCount {
		a.Flash[region] = 1
	}
}

// TickTimers counts down invulnerability and decays the hit flashes.
func (a *Actor) TickTimers(flashDecay float64) {
	if a.Invuln > 0 {
		a.Invuln--
	}
	for i := range a.Flash {
		a.Flash[i] = math.Max(0, a.Flash[i]-flashDecay)
	}
}

// Trigger advances the fire cooldown and reports whether a volley fires this
// frame. The cooldown restarts at delay after each volley.
func (a *Actor) Trigger(firing bool, delay int) bool {
	if a.fireCooldown > 0 {
		a.fireCooldown--
	}
	if !firing || a.fireCooldown > 0 {
		return false
	}
	a.fireCooldown = delay
	return true
}

// Muzzles returns the two gun positions: side units to either side of the aim
// line and forward units along it.
func (a *Actor) Muzzles(side, forward float64) (x1, y1, x2, y2 float64) {
	nx, ny := -a.AimY, a.AimX
	x1 = a.X + nx*side + a.AimX*forward
	y1 = a.Y + ny*side + a.AimY*forward
	x2 = a.X - nx*side + a.AimX*forward
	y2 = a.Y - ny*side + a.AimY*forward
	return
}

// RegionFor maps an impact point to the body region it struck. The vertical
// axis dominates: hits well above center strike the head, well below the legs.
func (a *Actor) RegionFor(hx, hy float64) Region {
	dx := hx - a.X
	dy := hy - a.Y
	band := a.Radius * 0.5
	switch {
	case dy > band:
		return RegionHead
	case dy < -band:
		return RegionLegs
	case dx < -band:
		return RegionLeft
	case dx > band:
		return RegionRight
	default:
		return RegionBody
	}
}
