package sound

import (
	"time"

	"github.com/faiface/beep"
)

// Output is the audio device a Player streams into. Lock and Unlock guard
// the device's playing streamers; Clear stops them and takes the same lock
// itself, so it must be called without holding it.
type Output struct {
	Play   func(s ...beep.Streamer)
	Lock   func()
	Unlock func()
	Clear  func()
}

// Player plays click tones through one long-running mixer so the tap sees
// a continuous stream, silence included. A nil Player is mute.
type Player struct {
	sr    beep.SampleRate
	mixer *beep.Mixer
	tap   *Tap
	out   Output
}

// NewPlayer starts streaming an empty mixer into out.
func NewPlayer(sr beep.SampleRate, ringSize int, out Output) *Player {
	p := &Player{
		sr:    sr,
		mixer: &beep.Mixer{},
		tap:   NewTap(ringSize),
		out:   out,
	}
	out.Play(p.tap.Wrap(p.mixer))
	return p
}

func (p *Player) Click() {
	if p == nil {
		return
	}
	p.out.Lock()
	p.mixer.Add(Click(p.sr))
	p.out.Unlock()
}

// Energy is the loudness of roughly the last frame of audio.
func (p *Player) Energy() float64 {
	if p == nil {
		return 0
	}
	return p.tap.Energy(p.sr.N(time.Second / 60))
}

// Close stops playback.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.out.Clear()
}
