// Package logging builds the progress logger shared by the command line tools.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Options controls logger verbosity.
type Options struct {
	// Verbose enables debug output such as every matched import.
	Verbose bool
	// Quiet disables progress output entirely. It wins over Verbose.
	Quiet bool
}

// New returns a console logger writing human-readable lines to w.
func New(w io.Writer, opts Options) zerolog.Logger {
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	if opts.Quiet {
		level = zerolog.Disabled
	}

	writer := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(writer).Level(level)
}
