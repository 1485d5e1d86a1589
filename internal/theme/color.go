package theme

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Unparsable is used for palette entries that are not valid hex colors.
var Unparsable = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Colors parses a palette into opaque RGBA values.
func (p Palette) Colors() []color.RGBA {
	out := make([]color.RGBA, 0, len(p))
	for _, hex := range p {
		out = append(out, ParseHex(hex))
	}
	return out
}

// ParseHex parses #RRGGBB or #RGB, returning Unparsable on failure.
func ParseHex(hex string) color.RGBA {
	c, err := colorful.Hex(expandShortHex(hex))
	if err != nil {
		return Unparsable
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func expandShortHex(hex string) string {
	if len(hex) != 4 || hex[0] != '#' {
		return hex
	}
	return string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
}
