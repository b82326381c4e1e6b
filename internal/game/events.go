package game

import "github.com/tomz197/spaceshoot/internal/object"

// EventKind identifies a gameplay signal raised during a tick.
type EventKind int

const (
	EventEnemyKilled   EventKind = iota // Once per kill
	EventPlayerDamaged                  // Once per applied hit, never for a discarded one
	EventLevelUp                        // Once per level gained
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerDamaged:
		return "player_damaged"
	case EventLevelUp:
		return "level_up"
	default:
		return "unknown"
	}
}

// Event is a signal for audio and effects collaborators.
type Event struct {
	Kind   EventKind
	X, Y   float64       // Where it happened
	Amount int           // Damage dealt, or the new level
	Region object.Region // Struck region, for EventPlayerDamaged
}

// eventSink receives events while a tick is in progress.
type eventSink interface {
	emit(Event)
}
