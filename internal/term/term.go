// Package term hosts the particle loop in a terminal. Each cell shows two
// vertically stacked pixels using the upper half block glyph.
package term

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/ambient-particles/internal/ambient"
	"github.com/iburimskiy/ambient-particles/internal/config"
	"github.com/iburimskiy/ambient-particles/internal/frame"
	"github.com/iburimskiy/ambient-particles/internal/logger"
	"github.com/iburimskiy/ambient-particles/internal/particle"
	"github.com/iburimskiy/ambient-particles/internal/raster"
)

const halfBlock = '▀'

// Options configures the terminal host.
type Options struct {
	Config config.Config
	Rand   particle.Rand
	Log    *logger.Logger
}

// Run animates until ctx is done or the user quits.
func Run(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	cols, rows := screen.Size()
	surface := raster.New(cols, rows*2)
	queue := frame.NewQueue()
	loop := ambient.New(opts.Config.AmbientOptions(), queue, opts.Rand, opts.Log)
	loop.Mount(surface)
	defer loop.Unmount()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go pollEvents(screen, events, quit)

	fps := max(opts.Config.Terminal.FPS, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				if loop.Running() {
					loop.Resize(w, h*2)
				} else {
					surface.Resize(w, h*2)
					loop.Mount(surface)
				}
				screen.Sync()
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			}

		case <-ticker.C:
			if queue.Flush() > 0 {
				present(screen, surface.Image())
				screen.Show()
			}
		}
	}
}

func pollEvents(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func present(screen tcell.Screen, img *image.RGBA) {
	if img == nil {
		return
	}
	cols, rows := screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			screen.SetContent(x, y, halfBlock, nil, cellStyle(img, x, y))
		}
	}
}

// cellStyle colours cell (x, y) with pixel (x, 2y) as foreground and
// (x, 2y+1) as background.
func cellStyle(img *image.RGBA, x, y int) tcell.Style {
	top := img.RGBAAt(x, 2*y)
	bottom := img.RGBAAt(x, 2*y+1)
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
}
