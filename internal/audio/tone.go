package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave, optionally sweeping its
// frequency linearly from freq to endFreq.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	duration      int
	position      int
	wave          WaveType
	rate          beep.SampleRate
	noise         *rand.Rand
}

// NewOscillator creates an oscillator that sweeps from freq to endFreq over duration.
func NewOscillator(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewPCG(uint64(freq), uint64(endFreq))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		f := o.freq + (o.endFreq-o.freq)*t
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain. Zero gain is silent, since the
// underlying effect works in log2 units.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Cue durations.
const (
	killDuration   = 90 * time.Millisecond
	damageDuration = 140 * time.Millisecond
	levelNote      = 80 * time.Millisecond
	attackTime     = 4 * time.Millisecond
)

// killSound is a short falling square chirp mixed with noise.
func killSound(rate beep.SampleRate, gain float64) beep.Streamer {
	chirp := NewEnvelope(NewOscillator(880, 220, killDuration, WaveSquare, rate), killDuration, attackTime, 60*time.Millisecond, rate)
	crack := NewEnvelope(NewOscillator(1, 1, killDuration, WaveNoise, rate), killDuration, attackTime, 80*time.Millisecond, rate)
	return newVolume(beep.Mix(newVolume(chirp, 0.5), newVolume(crack, 0.3)), gain)
}

// damageSound is a low falling thud.
func damageSound(rate beep.SampleRate, gain float64) beep.Streamer {
	thud := NewOscillator(160, 70, damageDuration, WaveSine, rate)
	return newVolume(NewEnvelope(thud, damageDuration, attackTime, 100*time.Millisecond, rate), gain)
}

// levelUpSound is a rising three-note arpeggio.
func levelUpSound(rate beep.SampleRate, gain float64) beep.Streamer {
	var notes []beep.Streamer
	for _, f := range []float64{523.25, 659.25, 783.99} {
		osc := NewOscillator(f, f, levelNote, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, levelNote, attackTime, 40*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(notes...), gain)
}
