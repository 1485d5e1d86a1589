// Package ambience plays an optional looping soundtrack behind the particles.
package ambience

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
)

const (
	ringSize      = 4096
	resampleLevel = 4
)

// ErrUnsupported is returned for files without a known audio extension.
var ErrUnsupported = errors.New("unsupported soundtrack format")

var (
	speakerMu   sync.Mutex
	speakerRate beep.SampleRate
)

type decodeFunc func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return func(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(r) }, nil
	case ".mp3":
		return mp3.Decode, nil
	case ".flac":
		return func(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(r) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// Player is one looping soundtrack.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *levelTap
}

// Open decodes path and starts playing it on a loop. volume is in halvings:
// 0 plays at source level, -1 at half amplitude.
func Open(path string, volume float64) (*Player, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	rate, err := ensureSpeaker(format.SampleRate)
	if err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	var chain beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != rate {
		chain = beep.Resample(resampleLevel, format.SampleRate, rate, chain)
	}
	tap := newLevelTap(chain, ringSize)
	ctrl := &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: tap,
		Base:     2,
		Volume:   volume,
		Silent:   volume <= -10,
	}}

	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	speaker.Play(ctrl)

	return &Player{
		file:     f,
		streamer: streamer,
		format:   format,
		ctrl:     ctrl,
		tap:      tap,
	}, nil
}

// ensureSpeaker initializes the speaker on first use and returns its rate.
func ensureSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerRate != 0 {
		return speakerRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return 0, err
	}
	speakerRate = rate
	return rate, nil
}

// TogglePause pauses or resumes playback and reports whether it is now paused.
func (p *Player) TogglePause() bool {
	if p == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	p.ctrl.Paused = !p.ctrl.Paused
	return p.ctrl.Paused
}

// Paused reports whether playback is paused.
func (p *Player) Paused() bool {
	if p == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

// Position is the playback offset within the current loop iteration.
func (p *Player) Position() time.Duration {
	if p == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.streamer.Position())
}

// Duration is the length of one loop iteration.
func (p *Player) Duration() time.Duration {
	if p == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Level is the recent loudness in [0, 1].
func (p *Player) Level() float64 {
	if p == nil {
		return 0
	}
	return p.tap.Level()
}

// Close stops playback and releases the file.
func (p *Player) Close() error {
	if p == nil {
		return nil
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()

	err := p.streamer.Close()
	if cerr := p.file.Close(); err == nil && !errors.Is(cerr, os.ErrClosed) {
		err = cerr
	}
	return err
}

// PickFile asks the user for a soundtrack. Cancelling returns "", nil.
func PickFile() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Choose Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}
