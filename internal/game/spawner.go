package game

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/spaceshoot/internal/config"
	"github.com/tomz197/spaceshoot/internal/object"
	"github.com/tomz197/spaceshoot/internal/physics"
)

// spawnerStream selects the Spawner's PCG stream so it never shares a sequence
// with the combat resolver for the same seed.
const spawnerStream = 0x5350_4157_4e45_5231

// View is the half-extent of the player's viewport in world units. Enemies
// spawn just beyond its edges.
type View struct {
	HalfWidth  float64
	HalfHeight float64
}

// halfHeightPerZoom is tan(30°): the visible half-height per unit of camera
// distance for a 60° vertical field of view.
const halfHeightPerZoom = 0.577

// ViewFor derives the view extents from the camera zoom and aspect ratio.
func ViewFor(zoom, aspect float64) View {
	h := halfHeightPerZoom * zoom
	return View{HalfWidth: h * aspect, HalfHeight: h}
}

// DefaultView is zoom 2 at 4:3.
var DefaultView = ViewFor(2, 4.0/3.0)

// Spawner owns enemy creation: burst timing, archetype rolls and placement.
type Spawner struct {
	tuning config.SpawnTuning
	pcg    *rand.PCG
	rng    *rand.Rand

	countdown    int
	lastAngle    float64
	hasLastAngle bool

	grid *physics.SpatialGrid // Broad phase for placement overlap checks
}

// NewSpawner creates a spawner seeded with seed.
func NewSpawner(t config.SpawnTuning, seed uint64) *Spawner {
	pcg := rand.NewPCG(seed, spawnerStream)
	s := &Spawner{
		tuning: t,
		pcg:    pcg,
		rng:    rand.New(pcg),
		grid:   physics.NewSpatialGrid(placementCellSize(t)),
	}
	s.Reset(seed)
	return s
}

// placementCellSize is the largest distance at which two enemies can block
// each other's placement.
func placementCellSize(t config.SpawnTuning) float64 {
	maxR := 0.0
	for _, a := range t.Archetypes {
		maxR = math.Max(maxR, a.Radius)
	}
	return 2*maxR + t.OverlapMargin
}

// Reset re-seeds the spawner and clears its timer and spawn-angle memory.
func (s *Spawner) Reset(seed uint64) {
	s.pcg.Seed(seed, spawnerStream)
	s.countdown = s.tuning.InitialCountdown
	s.lastAngle = 0
	s.hasLastAngle = false
}

// Countdown returns the frames left until the next burst.
func (s *Spawner) Countdown() int {
	return s.countdown
}

// Update advances the burst timer and appends any new enemies. The population
// never exceeds the configured cap.
func (s *Spawner) Update(enemies []object.Enemy, d Difficulty, px, py float64, view View) []object.Enemy {
	limit := s.tuning.MaxEnemies
	if len(enemies) >= limit {
		return enemies
	}

	s.countdown--
	if s.countdown > 0 {
		return enemies
	}

	s.indexEnemies(enemies)
	for i := 0; i < d.SpawnBurst && len(enemies) < limit; i++ {
		e := s.roll(d.SpeedMultiplier)
		if s.place(&e, enemies, px, py, view) {
			s.grid.Insert(e.X, e.Y, len(enemies))
			enemies = append(enemies, e)
		}
	}

	jitter := s.intRange(-s.tuning.Jitter, s.tuning.Jitter)
	s.countdown = max(s.tuning.MinCountdown, d.SpawnInterval+jitter)
	return enemies
}

// NewEnemy rolls an enemy of the given kind at (x,y) without placement checks.
func (s *Spawner) NewEnemy(kind object.Kind, x, y, speedMul float64) object.Enemy {
	e := s.build(kind, speedMul)
	e.X, e.Y = x, y
	return e
}

// roll picks a uniformly random archetype.
func (s *Spawner) roll(speedMul float64) object.Enemy {
	return s.build(object.Kind(s.rng.IntN(object.KindCount)), speedMul)
}

func (s *Spawner) build(kind object.Kind, speedMul float64) object.Enemy {
	a := s.tuning.Archetypes[kind]
	return object.Enemy{
		Kind:   kind,
		Radius: a.Radius,
		Speed:  s.between(a.Speed) * speedMul,
		Color: object.Color{
			R: s.between(a.Red),
			G: s.between(a.Green),
			B: s.between(a.Blue),
		},
	}
}

// place searches for a spot just outside the view. It rejects spots in the same
// direction as the previous spawn and spots overlapping an existing enemy.
// Reports false if every attempt failed.
func (s *Spawner) place(e *object.Enemy, enemies []object.Enemy, px, py float64, view View) bool {
	margin := s.tuning.EdgeMargin
	hw, hh := view.HalfWidth, view.HalfHeight

	for try := 0; try < s.tuning.Attempts; try++ {
		var x, y float64
		switch s.rng.IntN(4) {
		case 0: // Left
			x = px - (hw + margin)
			y = py + s.uniform(-hh, hh)
		case 1: // Right
			x = px + (hw + margin)
			y = py + s.uniform(-hh, hh)
		case 2: // Top
			x = px + s.uniform(-hw, hw)
			y = py + (hh + margin)
		default: // Bottom
			x = px + s.uniform(-hw, hw)
			y = py - (hh + margin)
		}

		angle := math.Atan2(y-py, x-px)
		if s.hasLastAngle && physics.AngleDiff(angle, s.lastAngle) < s.tuning.MinAngleGap {
			continue
		}

		if s.overlapsAny(x, y, e.Radius, enemies) {
			continue
		}

		e.X, e.Y = x, y
		s.lastAngle = angle
		s.hasLastAngle = true
		return true
	}
	return false
}

func (s *Spawner) indexEnemies(enemies []object.Enemy) {
	s.grid.Clear()
	for i := range enemies {
		s.grid.Insert(enemies[i].X, enemies[i].Y, i)
	}
}

func (s *Spawner) overlapsAny(x, y, r float64, enemies []object.Enemy) bool {
	hit := false
	s.grid.QueryAround(x, y, func(i int) bool {
		o := &enemies[i]
		hit = physics.CirclesOverlap(x, y, r+s.tuning.OverlapMargin, o.X, o.Y, o.Radius)
		return hit
	})
	return hit
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

func (s *Spawner) between(r config.Range) float64 {
	return s.uniform(r.Min, r.Max)
}

func (s *Spawner) intRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}
