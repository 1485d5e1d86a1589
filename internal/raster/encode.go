package raster

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"time"
)

// EncodePNG writes the current frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.img == nil {
		return errReleased
	}
	return png.Encode(w, s.img)
}

// GIFRecorder accumulates frames for an animated GIF.
type GIFRecorder struct {
	anim  gif.GIF
	delay int
}

// NewGIFRecorder records frames shown for interval each, rounded to 10ms.
func NewGIFRecorder(interval time.Duration) *GIFRecorder {
	delay := int((interval + 5*time.Millisecond) / (10 * time.Millisecond))
	if delay < 2 {
		// most viewers clamp 0 and 1 to a slow default
		delay = 2
	}
	return &GIFRecorder{delay: delay}
}

// Capture quantizes the surface's current frame and appends it.
func (r *GIFRecorder) Capture(s *Surface) {
	src := s.Image()
	if src == nil {
		return
	}
	frame := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(frame, src.Bounds(), src, src.Bounds().Min)
	r.anim.Image = append(r.anim.Image, frame)
	r.anim.Delay = append(r.anim.Delay, r.delay)
}

// Frames returns the number of captured frames.
func (r *GIFRecorder) Frames() int { return len(r.anim.Image) }

// Encode writes the looping animation.
func (r *GIFRecorder) Encode(w io.Writer) error {
	if len(r.anim.Image) == 0 {
		return errNoFrames
	}
	return gif.EncodeAll(w, &r.anim)
}
