package object

// Kind is an enemy archetype. Archetypes differ only in data (radius, speed
// range, colour), never in behavior.
type Kind int

const (
	KindOrb Kind = iota
	KindDart
	KindSquid

	KindCount = 3
)

// String returns the archetype name.
func (k Kind) String() string {
	switch k {
	case KindOrb:
		return "orb"
	case KindDart:
		return "dart"
	case KindSquid:
		return "squid"
	default:
		return "unknown"
	}
}

// Enemy is a swarm member chasing the actor.
type Enemy struct {
	Kind   Kind
	X, Y   float64 // Position (center)
	VX, VY float64 // Velocity per frame
	Radius float64 // Fixed at creation
	Speed  float64 // Fixed at creation, difficulty multiplier already applied
	Color  Color

	ShootCD int // Frames until the enemy may fire again
	TouchCD int // Frames until contact may damage again

	destroyed bool
}

// TickCooldowns counts down the shoot and touch cooldowns.
func (e *Enemy) TickCooldowns() {
	if e.ShootCD > 0 {
		e.ShootCD--
	}
	if e.TouchCD > 0 {
		e.TouchCD--
	}
}

// MarkDestroyed marks the enemy for removal at the end of the current pass.
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is marked for removal.
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}
