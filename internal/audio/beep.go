package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// minCueGap throttles repeats of the same cue.
const minCueGap = 50 * time.Millisecond

// BeepCues plays synthesised cues through the system speaker.
type BeepCues struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	gain   float64
	last   [3]time.Time
	now    func() time.Time
	closed bool
}

// NewBeepCues initialises the speaker and starts an always-on mixer. gain is a
// linear master volume in [0,1].
func NewBeepCues(gain float64) (*BeepCues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	c := newBeepCues(gain)
	speaker.Play(c.mixer)
	return c, nil
}

func newBeepCues(gain float64) *BeepCues {
	return &BeepCues{
		mixer: &beep.Mixer{},
		gain:  min(max(gain, 0), 1),
		now:   time.Now,
	}
}

// EnemyKilled plays the kill chirp.
func (c *BeepCues) EnemyKilled() { c.play(0, killSound) }

// PlayerDamaged plays the damage thud.
func (c *BeepCues) PlayerDamaged() { c.play(1, damageSound) }

// LevelUp plays the level-up arpeggio.
func (c *BeepCues) LevelUp() { c.play(2, levelUpSound) }

func (c *BeepCues) play(slot int, build func(beep.SampleRate, float64) beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	now := c.now()
	if now.Sub(c.last[slot]) < minCueGap {
		return
	}
	c.last[slot] = now

	s := build(sampleRate, c.gain)
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close silences all cues.
func (c *BeepCues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
}

var _ Cues = (*BeepCues)(nil)
