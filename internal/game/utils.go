package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// hsv converts hue (degrees), saturation and value (0-1) into an opaque colour.
func hsv(h, s, v float64) color.RGBA {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
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

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
