package game

import (
	"github.com/tomz197/spaceshoot/internal/config"
	"github.com/tomz197/spaceshoot/internal/object"
	"github.com/tomz197/spaceshoot/internal/physics"
)

// FlockField steers the swarm toward the actor and keeps its members apart.
type FlockField struct {
	tuning config.FlockTuning
}

// NewFlockField creates a flock field.
func NewFlockField(t config.FlockTuning) FlockField {
	return FlockField{tuning: t}
}

// Steer eases each enemy's velocity toward a chase velocity at its own speed,
// then integrates its position. Turning is gradual, so chase paths curve.
func (f FlockField) Steer(enemies []object.Enemy, px, py float64) {
	k := f.tuning.Smoothing
	for i := range enemies {
		e := &enemies[i]
		ux, uy, _ := physics.Toward(e.X, e.Y, px, py)
		e.VX = physics.Lerp(e.VX, ux*e.Speed, k)
		e.VY = physics.Lerp(e.VY, uy*e.Speed, k)
		e.X += e.VX
		e.Y += e.VY
	}
}

// Separate runs a single relaxation pass over every unordered pair. Overlapping
// pairs are pushed apart along the line between them, each member moving half
// of the corrected fraction of the overlap. Mild residual overlap is expected
// under heavy crowding.
func (f FlockField) Separate(enemies []object.Enemy) {
	margin := f.tuning.SeparationMargin
	strength := f.tuning.SeparationStrength
	for i := 0; i < len(enemies); i++ {
		a := &enemies[i]
		for j := i + 1; j < len(enemies); j++ {
			b := &enemies[j]
			ux, uy, d := physics.Toward(b.X, b.Y, a.X, a.Y)
			minD := a.Radius + b.Radius + margin
			if d >= minD {
				continue
			}
			if ux == 0 && uy == 0 {
				// Stacked exactly: split along +x.
				ux, uy = physics.Unit(0, 0)
			}
			half := (minD - d) * strength * 0.5
			a.X += ux * half
			a.Y += uy * half
			b.X -= ux * half
			b.Y -= uy * half
		}
	}
}
