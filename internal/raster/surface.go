// Package raster implements a software pixel surface over image.RGBA.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/iburimskiy/ambient-particles/internal/overlay"
)

// Background is the colour frames are cleared to.
var Background = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Surface is a CPU-composited drawing target.
type Surface struct {
	img  *image.RGBA
	mask []uint8
}

// New allocates a width x height surface cleared to Background.
func New(width, height int) *Surface {
	s := &Surface{}
	s.Resize(width, height)
	return s
}

// Image returns the current frame, nil after Release.
func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the backing image; the previous content is discarded.
func (s *Surface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.Clear()
}

func (s *Surface) Clear() {
	if s.img == nil {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
}

func (s *Surface) Release() {
	s.img = nil
	s.mask = nil
}

// Glow composites a radial fade from c (at alpha) in the centre to fully
// transparent at radius.
func (s *Surface) Glow(x, y, radius float64, c color.RGBA, alpha float64) {
	s.stamp(x, y, radius, c, func(d float64) float64 {
		return alpha * (1 - d/radius)
	})
}

// Disc composites a solid circle with a one-pixel anti-aliased rim.
func (s *Surface) Disc(x, y, radius float64, c color.RGBA, alpha float64) {
	s.stamp(x, y, radius+0.5, c, func(d float64) float64 {
		return alpha * clamp01(radius-d+0.5)
	})
}

// Glyph stamps a four-ray sparkle following pose.
func (s *Surface) Glyph(pose overlay.Pose, c color.RGBA) {
	const rayLength = 7.0
	length := rayLength * pose.Scale
	for ray := 0; ray < 4; ray++ {
		angle := pose.Rotation + float64(ray)*math.Pi/2
		dx, dy := math.Cos(angle), math.Sin(angle)
		for t := 0.0; t <= length; t += 0.75 {
			width := 1.5 * pose.Scale * (1 - t/length)
			s.Disc(pose.X+dx*t, pose.Y+dy*t, width, c, 0.8)
		}
	}
}

// stamp composites c over the pixels within radius of (x, y), using
// coverage(distance) as the per-pixel alpha.
func (s *Surface) stamp(x, y, radius float64, c color.RGBA, coverage func(d float64) float64) {
	if s.img == nil || radius <= 0 {
		return
	}
	rect := image.Rect(
		int(math.Floor(x-radius)), int(math.Floor(y-radius)),
		int(math.Ceil(x+radius))+1, int(math.Ceil(y+radius))+1,
	).Intersect(s.img.Bounds())
	if rect.Empty() {
		return
	}

	n := rect.Dx() * rect.Dy()
	if cap(s.mask) < n {
		s.mask = make([]uint8, n)
	}
	mask := &image.Alpha{Pix: s.mask[:n], Stride: rect.Dx(), Rect: rect}

	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			d := math.Hypot(float64(px)+0.5-x, float64(py)+0.5-y)
			a := 0.0
			if d < radius {
				a = clamp01(coverage(d))
			}
			mask.SetAlpha(px, py, color.Alpha{A: uint8(a*255 + 0.5)})
		}
	}

	opaque := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	draw.DrawMask(s.img, rect, image.NewUniform(opaque), image.Point{}, mask, rect.Min, draw.Over)
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
