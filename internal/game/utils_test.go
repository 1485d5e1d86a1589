package game

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	require.Equal(t, "00:00", formatDuration(0))
	require.Equal(t, "01:05", formatDuration(65*time.Second))
	require.Equal(t, "12:00", formatDuration(12*time.Minute+400*time.Millisecond))
}

func TestHSVPrimaries(t *testing.T) {
	t.Parallel()

	red := hsv(0, 1, 1)
	require.Equal(t, uint8(255), red.R)
	require.Zero(t, red.G)
	require.Zero(t, red.B)

	blue := hsv(240, 1, 1)
	require.Equal(t, uint8(255), blue.B)
	require.Equal(t, uint8(255), blue.A)
}

func TestGlowSpriteFadesToTransparentEdge(t *testing.T) {
	t.Parallel()

	sprite := glowSprite(16).(*image.NRGBA)
	require.Equal(t, image.Rect(0, 0, 32, 32), sprite.Bounds())

	centre := sprite.NRGBAAt(16, 16).A
	mid := sprite.NRGBAAt(24, 16).A
	require.Greater(t, centre, uint8(240))
	require.Greater(t, centre, mid)
	require.Zero(t, sprite.NRGBAAt(0, 0).A)
	require.Equal(t, uint8(255), sprite.NRGBAAt(16, 16).R)
}
