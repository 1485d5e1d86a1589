package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is a thin zerolog wrapper. A nil *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger writing to opts.Writer, stderr by default.
func New(opts Options) (*Logger, error) {
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields derives a logger that always includes fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{base: ctx.Logger()}
}

func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error logs msg with err attached when non-nil.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	ev := l.base.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}
