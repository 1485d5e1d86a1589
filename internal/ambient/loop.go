// Package ambient runs the particle animation: it owns a particle field and a
// pixel surface and repaints them once per display refresh until unmounted.
package ambient

import (
	"time"

	"github.com/iburimskiy/ambient-particles/internal/frame"
	"github.com/iburimskiy/ambient-particles/internal/logger"
	"github.com/iburimskiy/ambient-particles/internal/overlay"
	"github.com/iburimskiy/ambient-particles/internal/particle"
	"github.com/iburimskiy/ambient-particles/internal/theme"
)

// DefaultCount is used when Options.Count is not positive.
const DefaultCount = 50

// FrameInterval is the nominal refresh period used to derive overlay time.
const FrameInterval = time.Second / 60

// glowScale is the glow radius relative to particle size.
const glowScale = 3

// DefaultPalette is used when no theme palette applies and none is supplied.
var DefaultPalette = theme.Palette{"#FFD700", "#FFA500", "#FF6347", "#9370DB", "#4169E1"}

// Options configures a Loop.
type Options struct {
	Count       int
	Palette     theme.Palette
	Theme       theme.Name
	Intensity   theme.Intensity
	HouseColors *theme.HouseColors
	// Glyphs are drawn above the particles on surfaces that support them.
	Glyphs []overlay.Glyph
}

func (o Options) withDefaults() Options {
	if o.Count <= 0 {
		o.Count = DefaultCount
	}
	if len(o.Palette) == 0 {
		o.Palette = DefaultPalette
	}
	return o
}

// materiallyDiffers reports whether switching from o to next requires a fresh field.
func (o Options) materiallyDiffers(next Options) bool {
	if o.Count != next.Count || o.Theme != next.Theme || o.Intensity != next.Intensity {
		return true
	}
	switch {
	case o.HouseColors == nil && next.HouseColors == nil:
		return false
	case o.HouseColors == nil || next.HouseColors == nil:
		return true
	default:
		return *o.HouseColors != *next.HouseColors
	}
}

type size struct{ width, height int }

// Loop is the render/update loop. All methods must be called from the
// goroutine that drives the scheduler.
type Loop struct {
	opts  Options
	sched frame.Scheduler
	rng   particle.Rand
	log   *logger.Logger

	surface Surface
	field   *particle.Field
	palette theme.Palette
	motion  theme.Motion

	handle  frame.Handle
	running bool
	resize  *size
	frames  uint64
}

// New creates an unmounted loop.
func New(opts Options, sched frame.Scheduler, rng particle.Rand, log *logger.Logger) *Loop {
	return &Loop{
		opts:  opts.withDefaults(),
		sched: sched,
		rng:   rng,
		log:   log.WithFields(map[string]any{"component": "ambient"}),
	}
}

// Mount binds the loop to s and starts animating. A missing or empty surface
// is skipped silently and Mount returns false.
func (l *Loop) Mount(s Surface) bool {
	if l.running {
		l.Unmount()
	}
	if s == nil {
		l.log.Debug("no surface, particles disabled")
		return false
	}
	width, height := s.Size()
	if width <= 0 || height <= 0 {
		l.log.WithFields(map[string]any{"width": width, "height": height}).Debug("empty surface, particles disabled")
		return false
	}

	l.surface = s
	l.running = true
	l.initialize()
	l.schedule()
	return true
}

// Configure applies new options. A change of count, theme, intensity or house
// colors rebuilds the field; other changes are stored for the next rebuild.
// It reports whether the field was rebuilt.
func (l *Loop) Configure(opts Options) bool {
	opts = opts.withDefaults()
	if !l.opts.materiallyDiffers(opts) {
		l.opts.Palette = opts.Palette
		l.opts.Glyphs = opts.Glyphs
		return false
	}

	l.opts = opts
	if !l.running {
		return false
	}
	l.cancel()
	l.initialize()
	l.schedule()
	return true
}

// Resize records a new viewport size, applied at the next frame.
func (l *Loop) Resize(width, height int) {
	if !l.running {
		return
	}
	l.resize = &size{width: width, height: height}
}

// Unmount stops the loop and releases the surface. No frame runs afterwards.
func (l *Loop) Unmount() {
	if !l.running {
		return
	}
	l.running = false
	l.cancel()
	l.surface.Release()
	l.surface = nil
	l.field = nil
	l.resize = nil
	l.log.WithFields(map[string]any{"frames": l.frames}).Debug("unmounted")
}

// Running reports whether the loop is mounted.
func (l *Loop) Running() bool { return l.running }

// Frames returns the number of frames painted since creation.
func (l *Loop) Frames() uint64 { return l.frames }

// Elapsed is the animation time derived from painted frames.
func (l *Loop) Elapsed() time.Duration { return time.Duration(l.frames) * FrameInterval }

// Field exposes the current field, nil when unmounted.
func (l *Loop) Field() *particle.Field { return l.field }

// Resolved returns the palette and motion the current field was built from.
func (l *Loop) Resolved() (theme.Palette, theme.Motion) { return l.palette, l.motion }

func (l *Loop) initialize() {
	l.palette, l.motion = theme.Resolve(l.opts.Theme, l.opts.Intensity, l.opts.Palette, l.opts.HouseColors)
	width, height := l.surface.Size()
	l.field = particle.Initialize(l.opts.Count, float64(width), float64(height), l.palette.Colors(), l.motion, l.rng)

	l.log.WithFields(map[string]any{
		"count":     l.opts.Count,
		"theme":     string(l.opts.Theme),
		"intensity": string(l.opts.Intensity),
		"width":     width,
		"height":    height,
	}).Debug("particle field initialized")
}

func (l *Loop) schedule() {
	l.handle = l.sched.Request(l.tick)
}

func (l *Loop) cancel() {
	if l.handle != 0 {
		l.sched.Cancel(l.handle)
		l.handle = 0
	}
}

func (l *Loop) tick() {
	l.handle = 0
	if !l.running {
		return
	}

	if l.resize != nil {
		l.surface.Resize(l.resize.width, l.resize.height)
		l.resize = nil
	}
	width, height := l.surface.Size()

	l.surface.Clear()
	l.field.Step(float64(width), float64(height))
	l.paint(width, height)
	l.frames++

	l.schedule()
}

func (l *Loop) paint(width, height int) {
	for i := range l.field.Particles {
		p := &l.field.Particles[i]
		alpha := p.CurrentOpacity()
		l.surface.Glow(p.X, p.Y, p.Size*glowScale, p.Color, alpha)
		l.surface.Disc(p.X, p.Y, p.Size, p.Color, alpha)
	}

	gs, ok := l.surface.(GlyphSurface)
	if !ok || len(l.opts.Glyphs) == 0 {
		return
	}
	palette := l.field.Palette
	for i, pose := range overlay.Poses(l.opts.Glyphs, l.Elapsed(), float64(width), float64(height)) {
		gs.Glyph(pose, palette[i%len(palette)])
	}
}
