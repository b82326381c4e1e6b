// Package audio turns gameplay events into short synthesised sound cues.
package audio

import "github.com/tomz197/spaceshoot/internal/game"

// Cues plays feedback for gameplay events.
type Cues interface {
	EnemyKilled()
	PlayerDamaged()
	LevelUp()
}

// Nop is a Cues that plays nothing.
type Nop struct{}

func (Nop) EnemyKilled()   {}
func (Nop) PlayerDamaged() {}
func (Nop) LevelUp()       {}

// Play dispatches a tick's events to c. Each kind plays at most once per call
// so a multi-kill tick does not stack identical sounds.
func Play(c Cues, events []game.Event) {
	var killed, damaged, levelled bool
	for _, e := range events {
		switch e.Kind {
		case game.EventEnemyKilled:
			killed = true
		case game.EventPlayerDamaged:
			damaged = true
		case game.EventLevelUp:
			levelled = true
		}
	}
	if killed {
		c.EnemyKilled()
	}
	if damaged {
		c.PlayerDamaged()
	}
	if levelled {
		c.LevelUp()
	}
}
