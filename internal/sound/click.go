// Package sound synthesises the button click and records what was played
// so the particle field can pulse with it.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	ClickFrequency = 880.0
	ClickDuration  = 40 * time.Millisecond
	ClickVolume    = 0.25
	// clickDecay is the exponential decay rate per second.
	clickDecay = 90.0
)

// Click returns a short decaying sine tone at sample rate sr.
func Click(sr beep.SampleRate) beep.Streamer {
	total := sr.N(ClickDuration)
	pos := 0
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			v := ClickVolume * math.Exp(-clickDecay*t) * math.Sin(2*math.Pi*ClickFrequency*t)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
	return beep.Take(total, tone)
}
