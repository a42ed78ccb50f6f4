package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-colony/event"
)

// Cue is a short feedback sound tied to a simulation notification
type Cue int

const (
	CueNone Cue = iota
	CueSelect
	CueOrder
	CueBlocked
)

func (c Cue) String() string {
	switch c {
	case CueSelect:
		return "select"
	case CueOrder:
		return "order"
	case CueBlocked:
		return "blocked"
	default:
		return "none"
	}
}

const (
	selectDuration  = 90 * time.Millisecond
	orderNote       = 70 * time.Millisecond
	blockedDuration = 60 * time.Millisecond
	cueAttack       = 5 * time.Millisecond
	cueRelease      = 40 * time.Millisecond
)

// CueFor maps a notification to its sound; most notifications are silent
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventSelectionChanged:
		if ev.Count > 0 {
			return CueSelect
		}
	case event.EventTaskAssigned:
		return CueOrder
	case event.EventActionBlocked:
		return CueBlocked
	}
	return CueNone
}

// NewCueStreamer builds a fresh finite streamer for c at rate, scaled by volume in [0, 1]
// Returns nil for CueNone
func NewCueStreamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	switch c {
	case CueSelect:
		// A5 with an octave overtone
		fund := Tone{Freq: 880, Wave: WaveSine, Duration: selectDuration, Attack: cueAttack, Release: cueRelease}
		over := Tone{Freq: 1760, Wave: WaveSine, Duration: selectDuration, Attack: cueAttack, Release: cueRelease / 2}
		return withVolume(beep.Mix(
			withVolume(fund.Streamer(rate), 0.7),
			withVolume(over.Streamer(rate), 0.3),
		), volume)

	case CueOrder:
		// Rising two-note acknowledgement, E5 then A5
		n1 := Tone{Freq: 659.25, Wave: WaveSquare, Duration: orderNote, Attack: cueAttack, Release: orderNote / 2}
		n2 := Tone{Freq: 880, Wave: WaveSquare, Duration: orderNote, Attack: cueAttack, Release: orderNote / 2}
		return withVolume(beep.Seq(n1.Streamer(rate), n2.Streamer(rate)), volume*0.5)

	case CueBlocked:
		buzz := Tone{Freq: 110, Wave: WaveSaw, Duration: blockedDuration, Attack: cueAttack, Release: cueRelease}
		return withVolume(buzz.Streamer(rate), volume*0.4)
	}
	return nil
}
