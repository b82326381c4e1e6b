package desktop

// Camera maps world units to window pixels around a centre point. World +Y
// is up; screen +Y is down.
type Camera struct {
	X, Y          float64 // Centre in world coordinates
	Scale         float64 // Pixels per world unit
	Width, Height float64 // Viewport in pixels
}

// NewCamera creates a camera showing halfHeight world units above and below
// the centre of a width x height viewport.
func NewCamera(width, height, halfHeight float64) *Camera {
	c := &Camera{}
	c.Resize(width, height, halfHeight)
	return c
}

// Resize updates the viewport, keeping the visible world height.
func (c *Camera) Resize(width, height, halfHeight float64) {
	c.Width = width
	c.Height = height
	c.Scale = height / (2 * halfHeight)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx-c.X)*c.Scale + c.Width/2, c.Height/2 - (wy-c.Y)*c.Scale
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx-c.Width/2)/c.Scale + c.X, (c.Height/2-sy)/c.Scale + c.Y
}

// HalfExtents returns the visible half-width and half-height in world units.
func (c *Camera) HalfExtents() (float64, float64) {
	return c.Width / (2 * c.Scale), c.Height / (2 * c.Scale)
}
