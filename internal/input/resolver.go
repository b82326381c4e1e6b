package input

import (
	"github.com/tomz197/spaceshoot/internal/game"
)

// MoveStep is the distance moved per tick while a movement key is held.
const MoveStep = 0.02

// Resolver turns key state into a simulation intent. The aim direction
// persists between frames until another aim key is pressed.
type Resolver struct {
	aimX, aimY float64
	aimSet     bool
}

// Resolve builds the intent for one tick. (px,py) is the actor's position,
// used to turn the held aim direction into a world point.
func (r *Resolver) Resolve(in Input, px, py float64) game.Intent {
	var it game.Intent

	if in.MoveLeft {
		it.MoveX -= MoveStep
	}
	if in.MoveRight {
		it.MoveX += MoveStep
	}
	if in.MoveUp {
		it.MoveY += MoveStep
	}
	if in.MoveDown {
		it.MoveY -= MoveStep
	}

	var dx, dy float64
	if in.AimLeft {
		dx--
	}
	if in.AimRight {
		dx++
	}
	if in.AimUp {
		dy++
	}
	if in.AimDown {
		dy--
	}
	if dx != 0 || dy != 0 {
		r.aimX, r.aimY = dx, dy
		r.aimSet = true
	}

	if r.aimSet {
		it.Aim = true
		it.AimX = px + r.aimX
		it.AimY = py + r.aimY
	}
	it.Fire = in.Fire
	return it
}

// Reset forgets the held aim direction.
func (r *Resolver) Reset() {
	*r = Resolver{}
}
