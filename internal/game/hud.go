package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	meterWidth  = 120
	meterHeight = 6
	hudMargin   = 12
)

func (g *game) status() string {
	_, motion := g.loop.Resolved()
	line := fmt.Sprintf("%s  %s/%s  %d particles  speed %.1f",
		g.cfg.Window.Title, g.cfg.Particles.Theme, g.cfg.Particles.Intensity, g.cfg.Particles.Count, motion.Speed)

	switch {
	case g.player == nil:
		line += "  |  O: soundtrack"
	case g.player.Paused():
		line += fmt.Sprintf("  |  paused %s / %s", formatDuration(g.player.Position()), formatDuration(g.player.Duration()))
	default:
		line += fmt.Sprintf("  |  %s / %s", formatDuration(g.player.Position()), formatDuration(g.player.Duration()))
	}
	if g.lastErr != nil {
		line += "  |  error: " + g.lastErr.Error()
	}
	return line + "  |  H: hide  Esc: quit"
}

func (g *game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.status(), hudMargin, hudMargin)
	if g.player == nil {
		return
	}

	x := float32(hudMargin)
	y := float32(hudMargin + 20)
	level := clamp01(g.player.Level())

	vector.DrawFilledRect(screen, x, y, meterWidth, meterHeight, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	// gold when quiet, violet when loud
	fill := hsv(45+225*level, 0.8, 0.95)
	vector.DrawFilledRect(screen, x, y, float32(meterWidth*level), meterHeight, fill, false)
	vector.StrokeRect(screen, x, y, meterWidth, meterHeight, 1, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)
}
