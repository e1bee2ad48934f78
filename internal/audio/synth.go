// Package audio synthesizes and plays the game's two sound cues.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is used for every generated cue.
const SampleRate = beep.SampleRate(44100)

// Cue names, matching the game events that trigger them.
const (
	CueJump  = "jump"
	CueDeath = "death"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// sweep is an oscillator whose frequency slides linearly from one value to
// another over its duration.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	pos      int
	total    int
	rng      *rand.Rand
}

// NewSweep creates an oscillator sliding from one frequency to another.
// A constant tone uses from == to.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
		rng:   rand.New(rand.NewSource(1)),
	}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var v float64
		switch s.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			v = s.rng.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	src             beep.Streamer
	pos             int
	attack, release int
	total           int
}

// NewEnvelope shapes src with linear attack and release ramps.
func NewEnvelope(src beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		src:     src,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.src.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = min(gain, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// withVolume scales s by a linear gain; zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Jump is a short rising sine chirp.
func Jump(gain float64) beep.Streamer {
	const d = 120 * time.Millisecond
	osc := NewSweep(420, 880, d, WaveSine, SampleRate)
	return withVolume(NewEnvelope(osc, d, 5*time.Millisecond, 60*time.Millisecond, SampleRate), gain*0.6)
}

// Death is a falling square tone over a short noise burst.
func Death(gain float64) beep.Streamer {
	const (
		tone  = 450 * time.Millisecond
		burst = 150 * time.Millisecond
	)
	sq := NewEnvelope(NewSweep(440, 110, tone, WaveSquare, SampleRate), tone, 5*time.Millisecond, 200*time.Millisecond, SampleRate)
	noise := NewEnvelope(NewSweep(0, 0, burst, WaveNoise, SampleRate), burst, 0, 120*time.Millisecond, SampleRate)
	return withVolume(beep.Mix(withVolume(sq, 0.35), withVolume(noise, 0.25)), gain)
}

// Cue returns the streamer for a named cue, or nil for unknown names.
func Cue(name string, gain float64) beep.Streamer {
	switch name {
	case CueJump:
		return Jump(gain)
	case CueDeath:
		return Death(gain)
	default:
		return nil
	}
}
