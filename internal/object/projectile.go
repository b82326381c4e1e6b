package object

// Bullet is a projectile fired by the actor.
type Bullet struct {
	X, Y      float64 // Position
	VX, VY    float64 // Velocity per frame
	Life      int     // Frames remaining before removal
	destroyed bool
}

// NewBullet creates a bullet at (x,y) travelling along the unit direction (ux,uy).
func NewBullet(x, y, ux, uy, speed float64, life int) Bullet {
	return Bullet{
		X:    x,
		Y:    y,
		VX:   ux * speed,
		VY:   uy * speed,
		Life: life,
	}
}

// Advance moves the bullet one frame and ages it. Returns true once expired.
func (b *Bullet) Advance() bool {
	b.X += b.VX
	b.Y += b.VY
	b.Life--
	return b.Life <= 0
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
	b.Life = 0
}

// IsDestroyed returns true if the bullet hit something or expired.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed || b.Life <= 0
}

// EnemyBullet is a projectile fired by an enemy at the actor.
type EnemyBullet struct {
	Bullet
	Damage int
}
