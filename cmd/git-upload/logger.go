package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the diagnostics logger. Debug level with verbose, Info otherwise.
// A terminal gets the console writer, anything else gets JSON lines.
// With logFile set, entries are also written to a rotated file; the returned
// closer must then be closed on exit.
func newLogger(stderr io.Writer, verbose bool, logFile string) (zerolog.Logger, io.Closer) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := stderr
	if f, ok := stderr.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		console = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}

	writer := console
	var closer io.Closer
	if logFile != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writer = zerolog.MultiLevelWriter(console, fileWriter)
		closer = fileWriter
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), closer
}
