package particle

import (
	"image/color"
	"math"
)

// Lifespan bounds, in frames.
const (
	InitialLifeMax = 100
	MaxLifeMin     = 100
	MaxLifeMax     = 200
)

const (
	twinkleSpeedMin = 0.02
	twinkleSpeedMax = 0.06
	minSize         = 1
	minOpacity      = 0.1
)

// Rand is the random source used by the field. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Particle is one glowing point.
type Particle struct {
	X, Y         float64
	VX, VY       float64
	Size         float64
	Color        color.RGBA
	BaseOpacity  float64
	Life         int
	MaxLife      int
	TwinklePhase float64
	TwinkleSpeed float64
}

// CurrentOpacity is the alpha used when painting: the base opacity faded by
// remaining life and modulated by the twinkle phase. Always in [0, BaseOpacity].
func (p *Particle) CurrentOpacity() float64 {
	lifeFactor := 1.0
	if p.MaxLife > 0 {
		lifeFactor = clamp01(1 - float64(p.Life)/float64(p.MaxLife))
	}
	twinkleFactor := (math.Sin(p.TwinklePhase) + 1) / 2
	return p.BaseOpacity * lifeFactor * (0.5 + 0.5*twinkleFactor)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// between returns a value in [lo, hi).
func between(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// wrap folds v into [0, limit).
func wrap(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	v = math.Mod(v, limit)
	if v < 0 {
		v += limit
	}
	if v >= limit {
		v = 0
	}
	return v
}
