package desktop

import (
	"github.com/tomz197/spaceshoot/internal/game"
	"github.com/tomz197/spaceshoot/internal/input"
)

// controls is one frame's polled keyboard and mouse state.
type controls struct {
	left, right, up, down bool
	fire                  bool
	cursorX, cursorY      int
	cursorInside          bool
}

// intentFor turns polled controls into a tick intent. The mouse cursor, when
// inside the window, is the aim point.
func intentFor(c controls, cam *Camera) game.Intent {
	var it game.Intent
	if c.left {
		it.MoveX -= input.MoveStep
	}
	if c.right {
		it.MoveX += input.MoveStep
	}
	if c.up {
		it.MoveY += input.MoveStep
	}
	if c.down {
		it.MoveY -= input.MoveStep
	}
	if c.cursorInside {
		it.Aim = true
		it.AimX, it.AimY = cam.ScreenToWorld(float64(c.cursorX), float64(c.cursorY))
	}
	it.Fire = c.fire
	return it
}
