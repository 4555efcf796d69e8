package sound

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap records every sample streamed through it into a ring buffer. The
// audio goroutine writes, the render loop reads.
type Tap struct {
	buffer    [][2]float64
	nextIndex int
	written   int
	mu        sync.RWMutex
}

func NewTap(ringSize int) *Tap {
	return &Tap{buffer: make([][2]float64, ringSize)}
}

// Wrap returns a streamer that plays src and records it into the tap.
func (t *Tap) Wrap(src beep.Streamer) beep.Streamer {
	return &tapped{src: src, tap: t}
}

func (t *Tap) record(samples [][2]float64) {
	t.mu.Lock()
	for _, s := range samples {
		t.buffer[t.nextIndex] = s
		t.nextIndex++
		if t.nextIndex >= len(t.buffer) {
			t.nextIndex = 0
		}
	}
	t.written += len(samples)
	t.mu.Unlock()
}

// Snapshot returns up to the last n recorded samples, oldest first.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, len(t.buffer), t.written)
	out := make([][2]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}

// Energy returns the RMS of the mono mix of the last n samples.
func (t *Tap) Energy(n int) float64 {
	samples := t.Snapshot(n)
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	return math.Sqrt(sumSquares / float64(len(samples)))
}

type tapped struct {
	src beep.Streamer
	tap *Tap
}

func (s *tapped) Stream(samples [][2]float64) (int, bool) {
	n, ok := s.src.Stream(samples)
	if n > 0 {
		s.tap.record(samples[:n])
	}
	return n, ok
}

func (s *tapped) Err() error { return s.src.Err() }
