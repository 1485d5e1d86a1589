package ambient

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ambient-particles/internal/frame"
	"github.com/iburimskiy/ambient-particles/internal/overlay"
	"github.com/iburimskiy/ambient-particles/internal/particle"
	"github.com/iburimskiy/ambient-particles/internal/theme"
)

type paint struct {
	kind   string
	x, y   float64
	radius float64
	alpha  float64
}

type recordingSurface struct {
	width, height int
	clears        int
	released      int
	paints        []paint
	glyphs        []overlay.Pose
}

func (s *recordingSurface) Size() (int, int)        { return s.width, s.height }
func (s *recordingSurface) Resize(width, height int) { s.width, s.height = width, height }
func (s *recordingSurface) Clear()                   { s.clears++; s.paints = s.paints[:0]; s.glyphs = s.glyphs[:0] }
func (s *recordingSurface) Release()                 { s.released++ }

func (s *recordingSurface) Glow(x, y, radius float64, _ color.RGBA, alpha float64) {
	s.paints = append(s.paints, paint{kind: "glow", x: x, y: y, radius: radius, alpha: alpha})
}

func (s *recordingSurface) Disc(x, y, radius float64, _ color.RGBA, alpha float64) {
	s.paints = append(s.paints, paint{kind: "disc", x: x, y: y, radius: radius, alpha: alpha})
}

type glyphSurface struct {
	recordingSurface
}

func (s *glyphSurface) Glyph(pose overlay.Pose, _ color.RGBA) {
	s.glyphs = append(s.glyphs, pose)
}

func newLoop(opts Options) (*Loop, *frame.Queue) {
	q := frame.NewQueue()
	return New(opts, q, rand.New(rand.NewPCG(1, 2)), nil), q
}

func TestMountResolvesAndInitializes(t *testing.T) {
	t.Parallel()

	l, q := newLoop(Options{Count: 3, Theme: theme.Golden, Intensity: theme.Light})
	s := &recordingSurface{width: 100, height: 100}

	require.True(t, l.Mount(s))
	palette, motion := l.Resolved()
	require.Equal(t, theme.Palette{"#FFD700", "#FFA500", "#FFEB3B", "#FF8F00", "#FFC107"}, palette)
	require.Equal(t, theme.Motion{Speed: 0.5, Size: 2, Opacity: 0.3}, motion)
	require.Equal(t, 3, l.Field().Len())
	for _, p := range l.Field().Particles {
		require.True(t, p.Size >= 1 && p.Size < 3)
		require.True(t, p.BaseOpacity >= 0.1 && p.BaseOpacity < 0.4)
		require.True(t, p.Life >= 0 && p.Life < 100)
	}
	require.Equal(t, 1, q.Pending())
}

func TestMountSkipsMissingSurface(t *testing.T) {
	t.Parallel()

	l, q := newLoop(Options{})
	require.False(t, l.Mount(nil))
	require.False(t, l.Mount(&recordingSurface{}))
	require.False(t, l.Running())
	require.Nil(t, l.Field())
	require.Equal(t, 0, q.Pending())
	require.Equal(t, 0, q.Flush())
}

func TestDefaultsApply(t *testing.T) {
	t.Parallel()

	l, _ := newLoop(Options{Theme: theme.Name("unknown")})
	require.True(t, l.Mount(&recordingSurface{width: 10, height: 10}))
	palette, motion := l.Resolved()
	require.Equal(t, DefaultPalette, palette)
	require.Equal(t, theme.ResolveMotion(theme.Medium), motion)
	require.Equal(t, DefaultCount, l.Field().Len())
}

func TestFramePaintsGlowThenDisc(t *testing.T) {
	t.Parallel()

	l, q := newLoop(Options{Count: 5, Theme: theme.Mystical, Intensity: theme.Heavy})
	s := &recordingSurface{width: 200, height: 120}
	require.True(t, l.Mount(s))

	require.Equal(t, 1, q.Flush())
	require.Equal(t, 1, s.clears)
	require.Len(t, s.paints, 10)
	for i, p := range l.Field().Particles {
		glow, disc := s.paints[2*i], s.paints[2*i+1]
		require.Equal(t, "glow", glow.kind)
		require.Equal(t, "disc", disc.kind)
		require.InDelta(t, 3*p.Size, glow.radius, 1e-12)
		require.InDelta(t, p.Size, disc.radius, 1e-12)
		require.InDelta(t, p.CurrentOpacity(), glow.alpha, 1e-12)
		require.InDelta(t, p.CurrentOpacity(), disc.alpha, 1e-12)
		require.Equal(t, p.X, disc.x)
		require.Equal(t, p.Y, disc.y)
	}
	require.EqualValues(t, 1, l.Frames())
	require.Equal(t, 1, q.Pending())
}

func TestLoopReschedulesEveryFrame(t *testing.T) {
	t.Parallel()

	l, q := newLoop(Options{Count: 4})
	require.True(t, l.Mount(&recordingSurface{width: 64, height: 64}))

	for i := 0; i < 120; i++ {
		require.Equal(t, 1, q.Flush())
	}
	require.EqualValues(t, 120, l.Frames())
	require.Equal(t, 4, l.Field().Len())
}

func TestUnmountStopsAllFrames(t *testing.T) {
	t.Parallel()

	l, q := newLoop(Options{Count: 6})
	s := &recordingSurface{width: 100, height: 100}
	require.True(t, l.Mount(s))
	q.Flush()
	q.Flush()

	field := l.Field()
	snapshot := append([]particle.Particle(nil), field.Particles...)
	clears := s.clears
	frames := l.Frames()

	l.Unmount()
	for i := 0; i < 30; i++ {
		require.Equal(t, 0, q.Flush())
	}

	require.Equal(t, snapshot, field.Particles)
	require.Equal(t, clears, s.clears)
	require.Equal(t, frames, l.Frames())
	require.Equal(t, 1, s.released)
	require.Nil(t, l.Field())

	l.Unmount()
	require.Equal(t, 1, s.released)
}

func TestResizeAppliesAtNextFrame(t *testing.T) {
	t.Parallel()

	l, q := newLoop(Options{Count: 20})
	s := &recordingSurface{width: 400, height: 300}
	require.True(t, l.Mount(s))

	l.Resize(50, 40)
	require.Equal(t, 400, s.width)

	q.Flush()
	require.Equal(t, 50, s.width)
	require.Equal(t, 40, s.height)
	for _, p := range l.Field().Particles {
		require.True(t, p.X >= 0 && p.X < 50)
		require.True(t, p.Y >= 0 && p.Y < 40)
	}
}

func TestConfigureMaterialChangeRebuilds(t *testing.T) {
	t.Parallel()

	l, q := newLoop(Options{Count: 5, Theme: theme.Golden})
	require.True(t, l.Mount(&recordingSurface{width: 100, height: 100}))
	q.Flush()
	before := l.Field()

	require.True(t, l.Configure(Options{Count: 9, Theme: theme.Golden}))
	require.NotSame(t, before, l.Field())
	require.Equal(t, 9, l.Field().Len())
	require.Equal(t, 1, q.Pending())
	require.Equal(t, 1, q.Flush())
}

func TestConfigurePaletteOnlyKeepsField(t *testing.T) {
	t.Parallel()

	l, _ := newLoop(Options{Count: 5, Theme: theme.Name("custom")})
	require.True(t, l.Mount(&recordingSurface{width: 100, height: 100}))
	before := l.Field()

	require.False(t, l.Configure(Options{Count: 5, Theme: theme.Name("custom"), Palette: theme.Palette{"#000000"}}))
	require.Same(t, before, l.Field())
}

func TestConfigureHouseColorsIsMaterial(t *testing.T) {
	t.Parallel()

	house := &theme.HouseColors{Primary: "#740001", Secondary: "#D3A625", Accent: "#EEBA30"}
	l, _ := newLoop(Options{Count: 2, Theme: theme.House, HouseColors: house})
	require.True(t, l.Mount(&recordingSurface{width: 100, height: 100}))

	same := *house
	require.False(t, l.Configure(Options{Count: 2, Theme: theme.House, HouseColors: &same}))

	other := theme.HouseColors{Primary: "#1A472A", Secondary: "#5D5D5D", Accent: "#AAAAAA"}
	require.True(t, l.Configure(Options{Count: 2, Theme: theme.House, HouseColors: &other}))
	palette, _ := l.Resolved()
	require.Equal(t, theme.Palette{"#1A472A", "#5D5D5D", "#AAAAAA"}, palette)
}

func TestGlyphsDrawnOnGlyphSurface(t *testing.T) {
	t.Parallel()

	l, q := newLoop(Options{Count: 1, Glyphs: overlay.Default()})
	s := &glyphSurface{recordingSurface{width: 100, height: 100}}
	require.True(t, l.Mount(s))

	q.Flush()
	require.Len(t, s.glyphs, len(overlay.Default()))
}

func TestRemountReplacesSurface(t *testing.T) {
	t.Parallel()

	l, q := newLoop(Options{Count: 2})
	first := &recordingSurface{width: 10, height: 10}
	second := &recordingSurface{width: 20, height: 20}
	require.True(t, l.Mount(first))
	require.True(t, l.Mount(second))

	require.Equal(t, 1, first.released)
	require.Equal(t, 1, q.Flush())
	require.Equal(t, 0, first.clears)
	require.Equal(t, 1, second.clears)
}
