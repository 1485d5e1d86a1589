package ambience

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap passes samples through unchanged while remembering the most recent
// ones, so the UI can show how loud the soundtrack is right now.
type levelTap struct {
	Source beep.Streamer

	mu     sync.RWMutex
	ring   [][2]float64
	next   int
	filled int
}

func newLevelTap(src beep.Streamer, ringSize int) *levelTap {
	return &levelTap{
		Source: src,
		ring:   make([][2]float64, ringSize),
	}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n == 0 {
		return n, ok
	}

	t.mu.Lock()
	for _, s := range samples[:n] {
		t.ring[t.next] = s
		t.next = (t.next + 1) % len(t.ring)
	}
	t.filled = min(t.filled+n, len(t.ring))
	t.mu.Unlock()

	return n, ok
}

func (t *levelTap) Err() error { return t.Source.Err() }

// Level returns the RMS of the remembered samples, mixed to mono, in [0, 1].
func (t *levelTap) Level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.filled == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < t.filled; i++ {
		idx := (t.next - 1 - i + len(t.ring)) % len(t.ring)
		mono := (t.ring[idx][0] + t.ring[idx][1]) * 0.5
		sum += mono * mono
	}
	return math.Min(1, math.Sqrt(sum/float64(t.filled)))
}
