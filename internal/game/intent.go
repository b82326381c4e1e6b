package game

// Intent is the already-resolved player input for one tick.
type Intent struct {
	MoveX, MoveY float64 // Movement delta in world units
	AimX, AimY   float64 // World point to aim at, used when Aim is set
	Aim          bool
	Fire         bool
}
