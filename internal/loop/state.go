package loop

import (
	"time"

	"github.com/tomz197/spaceshoot/internal/input"
)

// Screen is the session's current phase.
type Screen int

const (
	ScreenTitle    Screen = iota // Title and controls
	ScreenPlaying                // Run in progress
	ScreenPaused                 // Run frozen, no ticks
	ScreenOver                   // Actor defeated, restart prompt
	ScreenShutdown               // Host is going away
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenPlaying:
		return "playing"
	case ScreenPaused:
		return "paused"
	case ScreenOver:
		return "over"
	case ScreenShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// sessionState holds per-connection front-end state. The simulation itself
// lives in the session's World.
type sessionState struct {
	Input      input.Input
	Screen     Screen
	prevScreen Screen
	Running    bool

	// Rising-edge detection for toggles; key holds span several frames.
	pauseHeld bool
	startHeld bool

	lastInput     time.Time
	isInactive    bool
	wasInactive   bool
	shutdownTimer float64 // Seconds left before auto-disconnect
	runs          int     // Runs started this session
	best          int     // Best score this session
}

func newSessionState(now time.Time) *sessionState {
	return &sessionState{
		Screen:     ScreenTitle,
		prevScreen: -1,
		Running:    true,
		lastInput:  now,
	}
}

// pressedPause reports a fresh press of the pause key.
func (s *sessionState) pressedPause() bool {
	fresh := s.Input.Pause && !s.pauseHeld
	s.pauseHeld = s.Input.Pause
	return fresh
}

// pressedStart reports a fresh press of Space or Enter.
func (s *sessionState) pressedStart() bool {
	down := s.Input.Enter || s.Input.Fire
	fresh := down && !s.startHeld
	s.startHeld = down
	return fresh
}
