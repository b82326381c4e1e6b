// Package game is the simulation core: spawning, flocking, combat and
// progression, advanced one fixed tick at a time.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceshoot/internal/config"
	"github.com/tomz197/spaceshoot/internal/object"
)

// World is one independent simulation run. It is not safe for concurrent use;
// separate runs share nothing and may live on separate goroutines.
type World struct {
	tuning config.Tuning
	logger *log.Logger
	view   View

	seed  uint64
	ticks uint64

	player   object.Actor
	enemies  []object.Enemy
	spawner  *Spawner
	flock    FlockField
	combat   *CombatResolver
	progress Progression
	events   []Event
}

// Option configures a World.
type Option func(*World)

// WithTuning replaces the default gameplay parameters.
func WithTuning(t config.Tuning) Option {
	return func(w *World) { w.tuning = t }
}

// WithLogger sets the logger for run lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithView sets the initial viewport extents used for spawn placement.
func WithView(v View) Option {
	return func(w *World) { w.view = v }
}

// NewWorld creates a world and initialises a run from seed.
func NewWorld(seed uint64, opts ...Option) *World {
	w := &World{
		tuning: config.Default(),
		view:   DefaultView,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}
	w.spawner = NewSpawner(w.tuning.Spawn, seed)
	w.flock = NewFlockField(w.tuning.Flock)
	w.combat = NewCombatResolver(w.tuning.Combat, seed)
	w.InitializeRun(seed)
	return w
}

// InitializeRun clears every collection and the progression, and re-seeds all
// randomness. Identical seeds replay identically under identical intents.
func (w *World) InitializeRun(seed uint64) {
	c := w.tuning.Combat
	w.seed = seed
	w.ticks = 0
	w.player = object.NewActor(0, 0, c.PlayerHP, c.PlayerRadius)
	clear(w.enemies)
	w.enemies = w.enemies[:0]
	w.events = w.events[:0]
	w.spawner.Reset(seed)
	w.combat.Reset(seed)
	w.progress.Reset()
	w.logger.Debug("run initialized", "seed", seed)
}

// AdvanceOneTick performs exactly one simulation step. Once the actor's health
// reaches zero the run is over and further ticks do nothing.
func (w *World) AdvanceOneTick(in Intent) {
	w.events = w.events[:0]
	if w.Over() {
		return
	}
	w.ticks++

	w.applyIntent(in)

	diff := DifficultyFor(w.progress.Level)
	w.enemies = w.spawner.Update(w.enemies, diff, w.player.X, w.player.Y, w.view)

	w.flock.Steer(w.enemies, w.player.X, w.player.Y)
	w.flock.Separate(w.enemies)

	w.combat.Engage(w.enemies, &w.player, w)
	w.combat.Project()
	w.combat.ResolveEnemyHits(&w.player, w)
	w.player.TickTimers(w.tuning.Combat.FlashDecay)

	var kills int
	w.enemies, kills = w.combat.ResolvePlayerHits(w.enemies, w)
	w.combat.UpdateImpacts()
	w.combat.ApplyCaps()

	if gained := w.progress.AddKill(kills); gained > 0 {
		for lvl := w.progress.Level - gained + 1; lvl <= w.progress.Level; lvl++ {
			w.emit(Event{Kind: EventLevelUp, X: w.player.X, Y: w.player.Y, Amount: lvl})
		}
		w.logger.Debug("level up", "level", w.progress.Level, "score", w.progress.Score)
	}
	w.progress.Tick()

	if w.Over() {
		w.logger.Debug("run over", "seed", w.seed, "ticks", w.ticks, "score", w.progress.Score)
	}
}

func (w *World) applyIntent(in Intent) {
	w.player.Move(in.MoveX, in.MoveY)
	if in.Aim {
		w.player.AimAt(in.AimX, in.AimY)
	}
	if w.player.Trigger(in.Fire, w.tuning.Combat.FireDelay) {
		w.combat.FireVolley(&w.player)
	}
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// SpawnAt places an enemy of the given kind at (x,y), bypassing the spawn
// timer and placement heuristics. Speed is scaled by the current difficulty.
func (w *World) SpawnAt(kind object.Kind, x, y float64) {
	if kind < 0 || kind >= object.KindCount || len(w.enemies) >= w.tuning.Spawn.MaxEnemies {
		return
	}
	diff := DifficultyFor(w.progress.Level)
	w.enemies = append(w.enemies, w.spawner.NewEnemy(kind, x, y, diff.SpeedMultiplier))
	w.logger.Debug("enemy placed", "kind", kind, "x", x, "y", y)
}

// SetView updates the viewport extents used for spawn placement.
func (w *World) SetView(v View) {
	w.view = v
}

// Seed returns the seed of the current run.
func (w *World) Seed() uint64 { return w.seed }

// Ticks returns the number of ticks simulated in the current run.
func (w *World) Ticks() uint64 { return w.ticks }

// Over reports whether the actor has been defeated.
func (w *World) Over() bool { return !w.player.Alive() }

// Player returns a copy of the actor's state.
func (w *World) Player() object.Actor { return w.player }

// Enemies returns the live enemies. The slice is owned by the world and valid
// until the next tick.
func (w *World) Enemies() []object.Enemy { return w.enemies }

// PlayerBullets returns the live player bullets, valid until the next tick.
func (w *World) PlayerBullets() []object.Bullet { return w.combat.PlayerBullets() }

// EnemyBullets returns the live enemy bullets, valid until the next tick.
func (w *World) EnemyBullets() []object.EnemyBullet { return w.combat.EnemyBullets() }

// Impacts returns the live impact markers, valid until the next tick.
func (w *World) Impacts() []object.Impact { return w.combat.Impacts() }

// Progress returns the progression state.
func (w *World) Progress() Progression { return w.progress }

// Difficulty returns the difficulty snapshot for the current level.
func (w *World) Difficulty() Difficulty { return DifficultyFor(w.progress.Level) }

// Events returns the signals raised by the last tick, valid until the next tick.
func (w *World) Events() []Event { return w.events }
