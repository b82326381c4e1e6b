// Package object defines the simulation entities: the player actor, enemies,
// projectiles and impact markers. Entities are plain data; the game package
// owns their collections and advances them.
package object

// Region identifies a body part of the actor for hit-flash feedback.
type Region int

const (
	RegionHead Region = iota
	RegionBody
	RegionLeft
	RegionRight
	RegionLegs

	RegionCount = 5
)

// String returns the region name.
func (r Region) String() string {
	switch r {
	case RegionHead:
		return "head"
	case RegionBody:
		return "body"
	case RegionLeft:
		return "left"
	case RegionRight:
		return "right"
	case RegionLegs:
		return "legs"
	default:
		return "unknown"
	}
}

// Color is an RGB triple with components in [0,1].
type Color struct {
	R, G, B float64
}

// RGBA8 converts the colour to 8-bit channels.
func (c Color) RGBA8() (r, g, b uint8) {
	return unit8(c.R), unit8(c.G), unit8(c.B)
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// ShouldRenderBlink returns true if an entity with remaining protection frames
// should be rendered this frame (for blinking effect).
// Returns true always if remainingFrames <= 0 (no protection).
func ShouldRenderBlink(remainingFrames, period int) bool {
	if remainingFrames <= 0 || period <= 0 {
		return true
	}
	return (remainingFrames/period)%2 != 0
}
