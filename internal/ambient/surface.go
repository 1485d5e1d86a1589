package ambient

import (
	"image/color"

	"github.com/iburimskiy/ambient-particles/internal/overlay"
)

// Surface is the pixel target owned by a Loop while mounted.
type Surface interface {
	Size() (width, height int)
	Resize(width, height int)
	Clear()
	// Glow fills a radial gradient from c at the centre to transparent at radius.
	Glow(x, y, radius float64, c color.RGBA, alpha float64)
	// Disc fills a solid circle.
	Disc(x, y, radius float64, c color.RGBA, alpha float64)
	Release()
}

// GlyphSurface is implemented by surfaces that can draw overlay decorations.
type GlyphSurface interface {
	Surface
	Glyph(pose overlay.Pose, c color.RGBA)
}
