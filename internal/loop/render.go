package loop

import (
	"math"

	"github.com/tomz197/spaceshoot/internal/draw"
	"github.com/tomz197/spaceshoot/internal/loop/config"
	"github.com/tomz197/spaceshoot/internal/object"
)

// Palette.
var (
	colorStar        = draw.RGB{R: 60, G: 60, B: 80}
	colorPlayer      = draw.RGB{R: 120, G: 200, B: 255}
	colorHit         = draw.RGB{R: 255, G: 60, B: 40}
	colorAim         = draw.RGB{R: 90, G: 140, B: 180}
	colorBullet      = draw.RGB{R: 255, G: 230, B: 90}
	colorEnemyBullet = draw.RGB{R: 255, G: 90, B: 200}
	colorImpact      = draw.RGB{R: 255, G: 150, B: 40}
)

// regionOffsets places each body region's marker relative to the actor's
// centre, in radii.
var regionOffsets = [object.RegionCount][2]float64{
	object.RegionHead:  {0, 0.6},
	object.RegionBody:  {0, 0},
	object.RegionLeft:  {-0.6, 0},
	object.RegionRight: {0.6, 0},
	object.RegionLegs:  {0, -0.6},
}

// drawWorld draws the run centred on the actor.
func (s *Session) drawWorld() {
	w := s.world
	p := w.Player()
	c := s.canvas
	c.SetCamera(p.X, p.Y)

	drawStars(c, p.X, p.Y)

	for _, m := range w.Impacts() {
		c.Circle(m.X, m.Y, m.Radius(), colorImpact.Scale(m.Life))
	}
	for i := range w.Enemies() {
		drawEnemy(c, &w.Enemies()[i])
	}
	for _, b := range w.EnemyBullets() {
		c.Dot(b.X, b.Y, colorEnemyBullet)
	}
	for _, b := range w.PlayerBullets() {
		c.Line(b.X, b.Y, b.X-b.VX*config.BulletTrail, b.Y-b.VY*config.BulletTrail, colorBullet)
	}

	if p.Alive() && object.ShouldRenderBlink(p.Invuln, config.PlayerBlinkFrames) {
		drawPlayer(c, &p)
	}
}

// drawStars scatters a fixed lattice of dim points so movement is visible.
func drawStars(c *draw.Canvas, cx, cy float64) {
	const spacing = 0.5
	hw, hh := c.Extents()
	x0 := math.Floor((cx-hw)/spacing) * spacing
	y0 := math.Floor((cy-hh)/spacing) * spacing
	for x := x0; x <= cx+hw; x += spacing {
		for y := y0; y <= cy+hh; y += spacing {
			// Stagger alternate columns.
			off := 0.0
			if int(math.Round(x/spacing))%2 != 0 {
				off = spacing / 2
			}
			c.Dot(x, y+off, colorStar)
		}
	}
}

func enemyColor(e *object.Enemy) draw.RGB {
	r, g, b := e.Color.RGBA8()
	return draw.RGB{R: r, G: g, B: b}
}

// drawEnemy draws an enemy by kind: orbs are plain discs, darts show their
// heading and squids carry a halo.
func drawEnemy(c *draw.Canvas, e *object.Enemy) {
	col := enemyColor(e)
	c.Disc(e.X, e.Y, e.Radius*0.8, col)
	switch e.Kind {
	case object.KindDart:
		speed := math.Hypot(e.VX, e.VY)
		if speed > 0 {
			ux, uy := e.VX/speed, e.VY/speed
			c.Line(e.X, e.Y, e.X+ux*e.Radius*1.4, e.Y+uy*e.Radius*1.4, col)
		}
	case object.KindSquid:
		c.Circle(e.X, e.Y, e.Radius, col.Scale(0.6))
	}
}

// drawPlayer draws the actor with per-region hit flashes and its aim line.
func drawPlayer(c *draw.Canvas, p *object.Actor) {
	c.Line(p.X, p.Y, p.X+p.AimX*config.AimLineLength, p.Y+p.AimY*config.AimLineLength, colorAim)
	c.Disc(p.X, p.Y, p.Radius*0.5, colorPlayer)
	for r := object.Region(0); r < object.RegionCount; r++ {
		off := regionOffsets[r]
		col := colorPlayer.Mix(colorHit, p.Flash[r])
		c.Disc(p.X+off[0]*p.Radius, p.Y+off[1]*p.Radius, p.Radius*0.25, col)
	}
}
