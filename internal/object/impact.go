package object

// Impact is a short-lived explosion marker left where an enemy died.
type Impact struct {
	X, Y float64
	T    float64 // Expansion progress, grows from 0
	Life float64 // Remaining intensity, fades from 1
}

// NewImpact creates a fresh marker at (x,y).
func NewImpact(x, y float64) Impact {
	return Impact{X: x, Y: y, Life: 1}
}

// Update expands and fades the marker. Returns true once it has faded out.
func (i *Impact) Update(grow, fade float64) bool {
	i.T += grow
	i.Life -= fade
	return i.Life <= 0
}

// Radius returns the ring radius for drawing.
func (i *Impact) Radius() float64 {
	return 0.04 + 0.14*i.T
}
