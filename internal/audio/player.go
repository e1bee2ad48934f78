package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays named cues. Play never blocks on the sound finishing.
type Player interface {
	Play(name string)
}

// NopPlayer discards every cue; used for SSH sessions and --mute.
type NopPlayer struct{}

func (NopPlayer) Play(string) {}

// SpeakerPlayer mixes cues into the system speaker.
type SpeakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	gain   float64
	logger *log.Logger
	closed bool
}

// NewSpeakerPlayer opens the speaker. The speaker is process-wide, so only
// one SpeakerPlayer should exist at a time.
func NewSpeakerPlayer(gain float64, logger *log.Logger) (*SpeakerPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	p := &SpeakerPlayer{
		mixer:  &beep.Mixer{},
		gain:   gain,
		logger: logger,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues a cue. Unknown names are logged and ignored.
func (p *SpeakerPlayer) Play(name string) {
	s := Cue(name, p.gain)
	if s == nil {
		p.logger.Warn("unknown sound cue", "cue", name)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences and releases the speaker.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
}
