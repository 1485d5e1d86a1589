package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ambient-particles/internal/ambient"
	"github.com/iburimskiy/ambient-particles/internal/overlay"
)

var _ ambient.GlyphSurface = (*Surface)(nil)

// glowRadius is the radius of the pre-rendered glow sprite in pixels.
const glowRadius = 32

// Surface draws onto an offscreen ebiten image that Present copies to the screen.
type Surface struct {
	canvas *ebiten.Image
	glow   *ebiten.Image
	width  int
	height int
}

// NewSurface allocates a width x height canvas.
func NewSurface(width, height int) *Surface {
	s := &Surface{glow: ebiten.NewImageFromImage(glowSprite(glowRadius))}
	s.Resize(width, height)
	return s
}

// glowSprite is a white disc whose alpha falls linearly from 1 at the centre
// to 0 at radius; it is tinted and scaled per particle.
func glowSprite(radius int) image.Image {
	size := radius * 2
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-float64(radius), float64(y)+0.5-float64(radius))
			a := clamp01(1 - d/float64(radius))
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a*255 + 0.5)})
		}
	}
	return img
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

func (s *Surface) Resize(width, height int) {
	if width == s.width && height == s.height && s.canvas != nil {
		return
	}
	if s.canvas != nil {
		s.canvas.Deallocate()
		s.canvas = nil
	}
	s.width, s.height = max(width, 0), max(height, 0)
	if s.width > 0 && s.height > 0 {
		s.canvas = ebiten.NewImage(s.width, s.height)
	}
}

func (s *Surface) Clear() {
	if s.canvas != nil {
		s.canvas.Clear()
	}
}

func (s *Surface) Glow(x, y, radius float64, c color.RGBA, alpha float64) {
	if s.canvas == nil || radius <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-glowRadius, -glowRadius)
	op.GeoM.Scale(radius/glowRadius, radius/glowRadius)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	s.canvas.DrawImage(s.glow, op)
}

func (s *Surface) Disc(x, y, radius float64, c color.RGBA, alpha float64) {
	if s.canvas == nil || radius <= 0 {
		return
	}
	fill := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(alpha)*255 + 0.5)}
	vector.DrawFilledCircle(s.canvas, float32(x), float32(y), float32(radius), fill, true)
}

// Glyph draws a four-ray sparkle rotated and scaled by pose.
func (s *Surface) Glyph(pose overlay.Pose, c color.RGBA) {
	if s.canvas == nil {
		return
	}
	const rayLength = 9.0
	length := rayLength * pose.Scale
	stroke := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 220}
	for ray := 0; ray < 4; ray++ {
		angle := pose.Rotation + float64(ray)*math.Pi/2
		x1 := pose.X + math.Cos(angle)*length
		y1 := pose.Y + math.Sin(angle)*length
		vector.StrokeLine(s.canvas, float32(pose.X), float32(pose.Y), float32(x1), float32(y1), float32(2*pose.Scale), stroke, true)
	}
	vector.DrawFilledCircle(s.canvas, float32(pose.X), float32(pose.Y), float32(2*pose.Scale), stroke, true)
}

func (s *Surface) Release() {
	if s.canvas != nil {
		s.canvas.Deallocate()
		s.canvas = nil
	}
	s.width, s.height = 0, 0
}

// Present copies the canvas onto screen.
func (s *Surface) Present(screen *ebiten.Image) {
	if s.canvas == nil {
		return
	}
	screen.DrawImage(s.canvas, nil)
}
