// Package audio plays short interface cues through the system speaker.
// Handles graceful degradation when no audio backend is available: a failed
// speaker init disables the player instead of erroring the viewer out.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player emits feedback blips for discrete observer events. All playback
// happens on beep's mixer goroutine; nothing here blocks the frame loop
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. Failure is not fatal: the returned
// player silently drops cues and err is informational for logging
func NewPlayer(enable bool) (*Player, error) {
	if !enable {
		return &Player{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// Enabled reports whether the audio backend is live
func (p *Player) Enabled() bool {
	return p.enabled
}

// Close releases the speaker
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}

// SpeedBlip marks one discrete speed step. Pitch tracks beta so ramping up
// to light speed audibly climbs: 440 Hz at rest, one octave up at the cap
func (p *Player) SpeedBlip(beta float64) {
	p.tone(440*(1+beta), 40*time.Millisecond)
}

// LockCue marks a capture-lock transition, a lower thunk on release
func (p *Player) LockCue(locked bool) {
	if locked {
		p.tone(660, 60*time.Millisecond)
		return
	}
	p.tone(220, 60*time.Millisecond)
}

func (p *Player) tone(freq float64, d time.Duration) {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
