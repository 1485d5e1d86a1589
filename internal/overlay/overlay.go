// Package overlay animates the decorative glyphs drifting above the particles.
// Each glyph follows its own periodic path and never touches particle state.
package overlay

import (
	"math"
	"time"
)

// Glyph is one drifting decoration anchored at a fraction of the viewport.
type Glyph struct {
	Symbol  rune
	AnchorX float64
	AnchorY float64
	Period  time.Duration
	Delay   time.Duration
	Rise    float64 // pixels lifted at the top of the cycle
	Tilt    float64 // peak rotation, radians
	Swell   float64 // peak extra scale
}

// Pose is where and how a glyph is drawn at a given moment.
type Pose struct {
	Symbol   rune
	X, Y     float64
	Rotation float64
	Scale    float64
}

// Pose samples the glyph's path at elapsed on a width x height viewport.
func (g Glyph) Pose(elapsed time.Duration, width, height float64) Pose {
	p := g.progress(elapsed)
	lift := (1 - math.Cos(2*math.Pi*p)) / 2

	return Pose{
		Symbol:   g.Symbol,
		X:        g.AnchorX * width,
		Y:        g.AnchorY*height - g.Rise*lift,
		Rotation: g.Tilt * math.Sin(2*math.Pi*p),
		Scale:    1 + g.Swell*lift,
	}
}

// progress returns the cycle position in [0, 1).
func (g Glyph) progress(elapsed time.Duration) float64 {
	if g.Period <= 0 {
		return 0
	}
	t := float64(elapsed+g.Delay) / float64(g.Period)
	t -= math.Floor(t)
	return t
}

// Poses samples every glyph in order.
func Poses(glyphs []Glyph, elapsed time.Duration, width, height float64) []Pose {
	out := make([]Pose, len(glyphs))
	for i, g := range glyphs {
		out[i] = g.Pose(elapsed, width, height)
	}
	return out
}

const tilt = 10 * math.Pi / 180

// Default returns the SpellAcademia decorations.
func Default() []Glyph {
	return []Glyph{
		{Symbol: '✨', AnchorX: 0.10, AnchorY: 0.20, Period: 6 * time.Second, Rise: 20, Tilt: tilt, Swell: 0.1},
		{Symbol: '🔮', AnchorX: 0.85, AnchorY: 0.15, Period: 8 * time.Second, Delay: time.Second, Rise: 20, Tilt: tilt, Swell: 0.1},
		{Symbol: '⭐', AnchorX: 0.20, AnchorY: 0.80, Period: 7 * time.Second, Delay: 2 * time.Second, Rise: 20, Tilt: tilt, Swell: 0.1},
		{Symbol: '🪄', AnchorX: 0.80, AnchorY: 0.75, Period: 9 * time.Second, Delay: 500 * time.Millisecond, Rise: 20, Tilt: tilt, Swell: 0.1},
		{Symbol: '🌙', AnchorX: 0.50, AnchorY: 0.10, Period: 10 * time.Second, Delay: 1500 * time.Millisecond, Rise: 20, Tilt: tilt, Swell: 0.1},
	}
}
