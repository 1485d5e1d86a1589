package term

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ambient-particles/internal/raster"
)

func TestCellStyleStacksTwoPixels(t *testing.T) {
	t.Parallel()

	s := raster.New(4, 4)
	img := s.Image()
	img.SetRGBA(1, 2, color.RGBA{R: 255, G: 215, A: 255})
	img.SetRGBA(1, 3, color.RGBA{R: 147, G: 112, B: 219, A: 255})

	fg, bg, _ := cellStyle(img, 1, 1).Decompose()
	require.Equal(t, tcell.NewRGBColor(255, 215, 0), fg)
	require.Equal(t, tcell.NewRGBColor(147, 112, 219), bg)

	fg, bg, _ = cellStyle(img, 0, 0).Decompose()
	require.Equal(t, tcell.NewRGBColor(0, 0, 0), fg)
	require.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	require.True(t, isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	require.True(t, isQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	require.True(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	require.False(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	require.False(t, isQuit(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
}
