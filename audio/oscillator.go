package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// Tone describes one enveloped note
// Attack ramps linearly from silence, Release fades linearly to silence at the end of Duration
type Tone struct {
	Freq     float64
	Wave     WaveType
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
}

// Streamer renders the tone at rate; the result is finite and single-use
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		step:    t.Freq / float64(rate),
		wave:    t.Wave,
		total:   rate.N(t.Duration),
		attack:  rate.N(t.Attack),
		release: rate.N(t.Release),
	}
}

type toneStreamer struct {
	step    float64 // phase increment per sample
	wave    WaveType
	pos     int
	total   int
	attack  int
	release int
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && s.pos < s.total {
		phase := float64(s.pos) * s.step
		phase -= math.Floor(phase)

		v := s.sample(phase) * s.gain()
		samples[n] = [2]float64{v, v}
		s.pos++
		n++
	}
	return n, n > 0
}

func (s *toneStreamer) Err() error { return nil }

func (s *toneStreamer) sample(phase float64) float64 {
	switch s.wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// gain is the envelope level at the current position; the release wins where it overlaps the attack
func (s *toneStreamer) gain() float64 {
	g := 1.0
	if s.attack > 0 && s.pos < s.attack {
		g = float64(s.pos) / float64(s.attack)
	}
	if left := s.total - s.pos; s.release > 0 && left <= s.release {
		g = math.Min(g, float64(left)/float64(s.release))
	}
	return g
}

// withVolume scales linear volume onto beep's log2 volume; zero is silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
