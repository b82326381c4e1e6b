// Package input reads raw terminal bytes without blocking and turns them into
// per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so holds are inferred from recency.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit      bool
	MoveLeft  bool
	MoveRight bool
	MoveUp    bool
	MoveDown  bool
	AimLeft   bool
	AimRight  bool
	AimUp     bool
	AimDown   bool
	Fire      bool
	Pause     bool
	Enter     bool
	Escape    bool
	Closed    bool // The underlying reader is gone
	Pressed   []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit      time.Time
	moveLeft  time.Time
	moveRight time.Time
	moveUp    time.Time
	moveDown  time.Time
	aimLeft   time.Time
	aimRight  time.Time
	aimUp     time.Time
	aimDown   time.Time
	fire      time.Time
	pause     time.Time
	enter     time.Time
	escape    time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.parse(buf, time.Now())
}

// parse updates the key state from buf and builds the frame's input.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.aimUp = now
				i += 2
				continue
			case 'B':
				s.state.aimDown = now
				i += 2
				continue
			case 'C':
				s.state.aimRight = now
				i += 2
				continue
			case 'D':
				s.state.aimLeft = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	return Input{
		Quit:      held(s.state.quit),
		MoveLeft:  held(s.state.moveLeft),
		MoveRight: held(s.state.moveRight),
		MoveUp:    held(s.state.moveUp),
		MoveDown:  held(s.state.moveDown),
		AimLeft:   held(s.state.aimLeft),
		AimRight:  held(s.state.aimRight),
		AimUp:     held(s.state.aimUp),
		AimDown:   held(s.state.aimDown),
		Fire:      held(s.state.fire),
		Pause:     held(s.state.pause),
		Enter:     held(s.state.enter),
		Escape:    held(s.state.escape),
		Closed:    s.closed,
		Pressed:   buf,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A':
		state.moveLeft = now
	case 'd', 'D':
		state.moveRight = now
	case 'w', 'W':
		state.moveUp = now
	case 's', 'S':
		state.moveDown = now
	case 'j', 'J':
		state.aimLeft = now
	case 'l', 'L':
		state.aimRight = now
	case 'i', 'I':
		state.aimUp = now
	case 'k', 'K':
		state.aimDown = now
	case ' ':
		state.fire = now
	case 'p', 'P':
		state.pause = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}
