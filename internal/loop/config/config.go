// Package config centralizes the terminal front-end's tunable parameters.
// Gameplay parameters live in internal/config.Tuning.
package config

import "time"

// Simulation rate.
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Camera.
const (
	Zoom       = 2.0 // Camera distance in world units
	HalfHeight = 0.577 * Zoom
)

// Max render resolution. Larger terminals get a centred, bordered canvas.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)

// Player rendering.
const (
	PlayerBlinkFrames = 3    // Frames per blink phase while invulnerable
	AimLineLength     = 0.32 // World units
	BulletTrail       = 0.6  // Trail length as a fraction of one frame's travel
	MaxUsernameLength = 16
)

// Shutdown.
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity.
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
