package config

import (
	"github.com/iburimskiy/ambient-particles/internal/ambient"
	"github.com/iburimskiy/ambient-particles/internal/overlay"
	"github.com/iburimskiy/ambient-particles/internal/theme"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "SpellAcademia"

	// Terminal refresh rate
	TerminalFPS = 30
)

// Config is the full application configuration.
type Config struct {
	Particles  Particles  `yaml:"particles"`
	Window     Window     `yaml:"window"`
	Overlay    Overlay    `yaml:"overlay"`
	Soundtrack Soundtrack `yaml:"soundtrack"`
	Terminal   Terminal   `yaml:"terminal"`
	Log        Log        `yaml:"log"`
}

type Particles struct {
	Count       int                `yaml:"count" validate:"min=1,max=10000"`
	Theme       string             `yaml:"theme"`
	Intensity   string             `yaml:"intensity"`
	Palette     []string           `yaml:"palette" validate:"dive,hexcolor"`
	HouseColors *theme.HouseColors `yaml:"house_colors" validate:"omitempty"`
}

type Window struct {
	Width  int    `yaml:"width" validate:"min=1"`
	Height int    `yaml:"height" validate:"min=1"`
	Title  string `yaml:"title"`
}

type Overlay struct {
	Enabled bool `yaml:"enabled"`
}

type Soundtrack struct {
	Path string `yaml:"path"`
	// Volume is in beep's exponential units: 0 is unchanged, -1 halves.
	Volume float64 `yaml:"volume" validate:"min=-10,max=2"`
}

type Terminal struct {
	FPS int `yaml:"fps" validate:"min=1,max=120"`
}

type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Particles: Particles{
			Count:     ambient.DefaultCount,
			Theme:     string(theme.Golden),
			Intensity: string(theme.Medium),
			Palette:   append([]string(nil), ambient.DefaultPalette...),
		},
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Overlay:  Overlay{Enabled: true},
		Terminal: Terminal{FPS: TerminalFPS},
		Log:      Log{Level: "info"},
	}
}

// AmbientOptions converts the particle settings into loop options.
func (c Config) AmbientOptions() ambient.Options {
	opts := ambient.Options{
		Count:       c.Particles.Count,
		Palette:     theme.Palette(c.Particles.Palette),
		Theme:       theme.Name(c.Particles.Theme),
		Intensity:   theme.Intensity(c.Particles.Intensity),
		HouseColors: c.Particles.HouseColors,
	}
	if c.Overlay.Enabled {
		opts.Glyphs = overlay.Default()
	}
	return opts
}
