package ambience

import (
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/require"
)

func constant(value float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{value, value}
		}
		return len(samples), true
	})
}

func TestDecoderDispatchIgnoresCase(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"theme.wav", "THEME.WAV", "a/b/song.Mp3", "loop.flac"} {
		decode, err := decoderFor(name)
		require.NoError(t, err, name)
		require.NotNil(t, decode, name)
	}
}

func TestDecoderRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	_, err := decoderFor("chant.ogg")
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestOpenUnsupportedFailsBeforeTouchingDisk(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.ogg"), 0)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.wav"), 0)
	require.Error(t, err)
}

func TestTapLevelIsRMS(t *testing.T) {
	t.Parallel()

	tap := newLevelTap(constant(0.5), 64)
	require.Zero(t, tap.Level())

	buf := make([][2]float64, 16)
	n, ok := tap.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 16, n)
	require.InDelta(t, 0.5, tap.Level(), 1e-12)
	require.Equal(t, [2]float64{0.5, 0.5}, buf[3])
}

func TestTapRemembersOnlyRecentSamples(t *testing.T) {
	t.Parallel()

	loud := newLevelTap(constant(0.9), 8)
	loud.Stream(make([][2]float64, 8))

	loud.Source = constant(0.1)
	loud.Stream(make([][2]float64, 8))
	require.InDelta(t, 0.1, loud.Level(), 1e-12)
}

func TestNilPlayerIsInert(t *testing.T) {
	t.Parallel()

	var p *Player
	require.False(t, p.TogglePause())
	require.Zero(t, p.Position())
	require.Zero(t, p.Level())
	require.NoError(t, p.Close())
}
