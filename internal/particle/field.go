package particle

import (
	"image/color"
	"math"

	"github.com/iburimskiy/ambient-particles/internal/theme"
)

// Field owns a fixed set of particles. The slice is allocated once by
// Initialize and only mutated in place afterwards.
type Field struct {
	Particles []Particle
	Palette   []color.RGBA
	Motion    theme.Motion

	rng Rand
}

// Initialize allocates count particles spread uniformly over a width x height surface.
func Initialize(count int, width, height float64, palette []color.RGBA, motion theme.Motion, rng Rand) *Field {
	if count < 0 {
		count = 0
	}
	if len(palette) == 0 {
		palette = []color.RGBA{{R: 255, G: 255, B: 255, A: 255}}
	}

	f := &Field{
		Particles: make([]Particle, count),
		Palette:   palette,
		Motion:    motion,
		rng:       rng,
	}
	for i := range f.Particles {
		p := &f.Particles[i]
		f.spawn(p, width, height)
		p.Life = rng.IntN(InitialLifeMax)
		p.TwinklePhase = rng.Float64() * 2 * math.Pi
		p.TwinkleSpeed = between(rng, twinkleSpeedMin, twinkleSpeedMax)
	}
	return f
}

// Len returns the number of particles.
func (f *Field) Len() int {
	return len(f.Particles)
}

// Step advances every particle by one frame on a width x height surface.
// Positions wrap toroidally; expired particles are reset in place.
func (f *Field) Step(width, height float64) {
	for i := range f.Particles {
		p := &f.Particles[i]

		p.X += p.VX
		p.Y += p.VY
		p.Life++
		p.TwinklePhase += p.TwinkleSpeed

		p.X = wrap(p.X, width)
		p.Y = wrap(p.Y, height)

		if p.Life >= p.MaxLife {
			f.Reset(p, width, height)
		}
	}
}

// Reset recycles p with a fresh position, velocity, look and lifespan.
// The twinkle phase and speed carry over.
func (f *Field) Reset(p *Particle, width, height float64) {
	f.spawn(p, width, height)
	p.Life = 0
}

func (f *Field) spawn(p *Particle, width, height float64) {
	rng := f.rng
	speed := f.Motion.Speed

	p.X = rng.Float64() * width
	p.Y = rng.Float64() * height
	p.VX = (rng.Float64() - 0.5) * speed
	p.VY = (rng.Float64() - 0.5) * speed
	p.Size = between(rng, minSize, f.Motion.Size+minSize)
	p.Color = f.Palette[rng.IntN(len(f.Palette))]
	p.BaseOpacity = between(rng, minOpacity, f.Motion.Opacity+minOpacity)
	p.MaxLife = MaxLifeMin + rng.IntN(MaxLifeMax-MaxLifeMin)
}
