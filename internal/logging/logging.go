// Package logging builds the diagnostic logger. The terminal belongs to the
// UI, so records go to a rotated file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much is logged.
type Options struct {
	File    string
	Level   zerolog.Level
	Verbose bool
	// Console writes human-readable records to Writer instead of File.
	Console bool
	Writer  io.Writer
}

// New returns a logger and the closer for its sink.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level := opts.Level
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	var (
		out    io.Writer
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.Console:
		w := opts.Writer
		if w == nil {
			w = os.Stderr
		}
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("creating log directory: %w", err)
		}
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     14,
		}
		out, closer = rotating, rotating
	default:
		return zerolog.Nop(), closer, nil
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
