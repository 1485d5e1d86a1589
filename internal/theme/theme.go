package theme

// Name selects a canned palette.
type Name string

const (
	Golden   Name = "golden"
	Mystical Name = "mystical"
	Dark     Name = "dark"
	Rainbow  Name = "rainbow"
	House    Name = "house"
)

// Intensity selects a canned motion preset.
type Intensity string

const (
	Light  Intensity = "light"
	Medium Intensity = "medium"
	Heavy  Intensity = "heavy"
)

// Palette is an ordered list of hex colors (#RRGGBB).
type Palette []string

// HouseColors is the palette used by the house theme.
type HouseColors struct {
	Primary   string `yaml:"primary" validate:"required,hexcolor"`
	Secondary string `yaml:"secondary" validate:"required,hexcolor"`
	Accent    string `yaml:"accent" validate:"required,hexcolor"`
}

// Motion holds the resolved motion parameters.
// Speed bounds the per-frame velocity, Size is the base radius and Opacity the base alpha.
type Motion struct {
	Speed   float64
	Size    float64
	Opacity float64
}

var palettes = map[Name]Palette{
	Golden:   {"#FFD700", "#FFA500", "#FFEB3B", "#FF8F00", "#FFC107"},
	Mystical: {"#9C27B0", "#673AB7", "#E1BEE7", "#7C4DFF", "#B388FF"},
	Dark:     {"#37474F", "#546E7A", "#78909C", "#263238", "#90A4AE"},
	Rainbow:  {"#FF0000", "#FF7F00", "#FFFF00", "#00FF00", "#0000FF", "#4B0082", "#9400D3"},
}

var presets = map[Intensity]Motion{
	Light:  {Speed: 0.5, Size: 2, Opacity: 0.3},
	Medium: {Speed: 1.0, Size: 3, Opacity: 0.5},
	Heavy:  {Speed: 1.5, Size: 4, Opacity: 0.7},
}

// Resolve maps a theme and intensity to a palette and motion parameters.
// The house theme uses house when present, unknown themes fall back to
// fallback and unknown intensities to the medium preset.
func Resolve(name Name, intensity Intensity, fallback Palette, house *HouseColors) (Palette, Motion) {
	return resolvePalette(name, fallback, house), ResolveMotion(intensity)
}

// ResolveMotion returns the preset for intensity, medium when unknown.
func ResolveMotion(intensity Intensity) Motion {
	if m, ok := presets[intensity]; ok {
		return m
	}
	return presets[Medium]
}

func resolvePalette(name Name, fallback Palette, house *HouseColors) Palette {
	if name == House {
		if house != nil {
			return Palette{house.Primary, house.Secondary, house.Accent}
		}
		return clone(fallback)
	}
	if p, ok := palettes[name]; ok {
		return clone(p)
	}
	return clone(fallback)
}

func clone(p Palette) Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Names lists the supported themes in display order.
func Names() []Name {
	return []Name{Golden, Mystical, Dark, Rainbow, House}
}

// Intensities lists the supported intensities from weakest to strongest.
func Intensities() []Intensity {
	return []Intensity{Light, Medium, Heavy}
}
