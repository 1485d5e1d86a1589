// Package game hosts the particle loop in a desktop window.
package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/ambient-particles/internal/ambience"
	"github.com/iburimskiy/ambient-particles/internal/ambient"
	"github.com/iburimskiy/ambient-particles/internal/config"
	"github.com/iburimskiy/ambient-particles/internal/frame"
	"github.com/iburimskiy/ambient-particles/internal/logger"
	"github.com/iburimskiy/ambient-particles/internal/particle"
)

// Options configures the window host.
type Options struct {
	Config config.Config
	Rand   particle.Rand
	Log    *logger.Logger
	// PickSoundtrack opens a file dialog before the window appears.
	PickSoundtrack bool
}

type game struct {
	cfg     config.Config
	log     *logger.Logger
	queue   *frame.Queue
	loop    *ambient.Loop
	surface *Surface
	player  *ambience.Player

	width, height int
	showHUD       bool
	lastErr       error
}

func newGame(opts Options) *game {
	queue := frame.NewQueue()
	cfg := opts.Config
	g := &game{
		cfg:     cfg,
		log:     opts.Log,
		queue:   queue,
		loop:    ambient.New(cfg.AmbientOptions(), queue, opts.Rand, opts.Log),
		surface: NewSurface(cfg.Window.Width, cfg.Window.Height),
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		showHUD: true,
	}
	g.loop.Mount(g.surface)
	return g
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := newGame(opts)
	defer g.close()

	path := opts.Config.Soundtrack.Path
	if opts.PickSoundtrack {
		picked, err := ambience.PickFile()
		if err != nil {
			g.log.Error(err, "soundtrack dialog failed")
		}
		if picked != "" {
			path = picked
		}
	}
	if path != "" {
		g.playSoundtrack(path)
	}

	ebiten.SetWindowSize(opts.Config.Window.Width, opts.Config.Window.Height)
	ebiten.SetWindowTitle(opts.Config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.openSoundtrackDialog()
	}

	g.queue.Flush()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surface.Present(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.loop.Resize(w, h)
	}
	return w, h
}

func (g *game) openSoundtrackDialog() {
	path, err := ambience.PickFile()
	if err != nil {
		g.lastErr = err
		g.log.Error(err, "soundtrack dialog failed")
		return
	}
	if path == "" {
		return
	}
	g.playSoundtrack(path)
}

func (g *game) playSoundtrack(path string) {
	if err := g.player.Close(); err != nil {
		g.log.Error(err, "closing previous soundtrack")
	}
	g.player = nil

	p, err := ambience.Open(path, g.cfg.Soundtrack.Volume)
	if err != nil {
		g.lastErr = err
		g.log.WithFields(map[string]any{"path": path}).Error(err, "soundtrack unavailable")
		return
	}
	g.player = p
	g.lastErr = nil
	g.log.WithFields(map[string]any{"path": path, "duration": p.Duration().String()}).Info("soundtrack playing")
}

func (g *game) close() {
	g.loop.Unmount()
	if err := g.player.Close(); err != nil {
		g.log.Error(err, "closing soundtrack")
	}
}
