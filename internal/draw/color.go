package draw

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// Scale returns the colour with each channel multiplied by f, clamped to [0,1].
func (c RGB) Scale(f float64) RGB {
	f = min(max(f, 0), 1)
	return RGB{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f)}
}

// Mix blends c toward o by t in [0,1].
func (c RGB) Mix(o RGB, t float64) RGB {
	t = min(max(t, 0), 1)
	mix := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t) }
	return RGB{mix(c.R, o.R), mix(c.G, o.G), mix(c.B, o.B)}
}

// Text colour escapes for overlays.
const (
	ColorReset      = "\033[0m"
	ColorBold       = "\033[1m"
	ColorRed        = "\033[91m"
	ColorBrightCyan = "\033[96m"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockLight     = '░'
)
