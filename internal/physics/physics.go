// Package physics provides collision detection and distance utilities.
package physics

import "math"

// Epsilon is added to distances before normalising so coincident points never
// divide by zero.
const Epsilon = 1e-6

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap (open boundary: touching is not overlap).
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// CirclesTouch checks if two circles overlap or touch (closed boundary).
func CirclesTouch(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) <= minDist*minDist
}

// Toward returns the unit vector from (x1,y1) to (x2,y2) and the distance between
// them. The distance is padded by Epsilon, so the vector is always finite.
func Toward(x1, y1, x2, y2 float64) (ux, uy, dist float64) {
	dx := x2 - x1
	dy := y2 - y1
	dist = math.Sqrt(dx*dx+dy*dy) + Epsilon
	return dx / dist, dy / dist, dist
}

// Unit normalises (dx,dy). A zero-length input yields (1,0).
func Unit(dx, dy float64) (float64, float64) {
	l := math.Sqrt(dx*dx + dy*dy)
	if l < Epsilon {
		return 1, 0
	}
	return dx / l, dy / l
}

// AngleDiff returns the absolute difference between two angles, folded into [0, π].
func AngleDiff(a, b float64) float64 {
	d := math.Abs(math.Mod(a-b, 2*math.Pi))
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// Lerp linearly interpolates from a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
