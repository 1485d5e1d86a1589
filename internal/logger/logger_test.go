package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestInfoCarriesFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"theme": "golden", "count": 50}).Info("field ready")

	entry := decode(t, buf)
	require.Equal(t, "field ready", entry["message"])
	require.Equal(t, "golden", entry["theme"])
	require.EqualValues(t, 50, entry["count"])
	require.Equal(t, "info", entry["level"])
}

func TestDebugFilteredAtInfo(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "INFO", Writer: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	require.Empty(t, strings.TrimSpace(buf.String()))
}

func TestErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("decode failed"), "soundtrack unavailable")

	entry := decode(t, buf)
	require.Equal(t, "soundtrack unavailable", entry["message"])
	require.Equal(t, "decode failed", entry["error"])
}

func TestInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.WithFields(map[string]any{"a": 1}).Info("ignored")
		log.Debug("ignored")
		log.Warn("ignored")
		log.Error(errors.New("x"), "ignored")
	})
}

func TestHumanReadableWritesText(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("palette fallback")
	require.Contains(t, buf.String(), "palette fallback")
}
