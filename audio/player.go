package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	// SampleRate is the output rate of every cue
	SampleRate = beep.SampleRate(48000)

	// DefaultCooldown drops repeats of one cue arriving faster than this
	DefaultCooldown = 120 * time.Millisecond

	bufferDuration = 100 * time.Millisecond
	defaultVolume  = 0.6
)

// Sink receives streamers to mix into the output
type Sink interface {
	Add(s ...beep.Streamer)
}

// Player plays cues through a shared mixer, rate-limited per cue
type Player struct {
	mu       sync.Mutex
	sink     Sink
	volume   float64
	cooldown time.Duration
	last     map[Cue]time.Time
	now      func() time.Time
}

// NewPlayer creates a player writing into sink
func NewPlayer(sink Sink, cooldown time.Duration) *Player {
	return &Player{
		sink:     sink,
		volume:   defaultVolume,
		cooldown: cooldown,
		last:     make(map[Cue]time.Time),
		now:      time.Now,
	}
}

// Play queues c unless it played within the cooldown; returns whether it was queued
func (p *Player) Play(c Cue) bool {
	if c == CueNone {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if t, ok := p.last[c]; ok && now.Sub(t) < p.cooldown {
		return false
	}
	p.last[c] = now

	p.sink.Add(NewCueStreamer(c, SampleRate, p.volume))
	return true
}

// speakerSink adds to a mixer owned by the speaker goroutine
type speakerSink struct {
	mixer *beep.Mixer
}

func (s *speakerSink) Add(streamers ...beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(streamers...)
	speaker.Unlock()
}

// OpenSpeaker initializes the audio device and returns a player bound to it plus a close func
func OpenSpeaker() (*Player, func(), error) {
	if err := speaker.Init(SampleRate, SampleRate.N(bufferDuration)); err != nil {
		return nil, nil, fmt.Errorf("init speaker: %w", err)
	}

	mixer := &beep.Mixer{}
	speaker.Play(mixer)

	closeFn := func() {
		speaker.Lock()
		mixer.Clear()
		speaker.Unlock()
		speaker.Close()
	}
	return NewPlayer(&speakerSink{mixer: mixer}, DefaultCooldown), closeFn, nil
}
