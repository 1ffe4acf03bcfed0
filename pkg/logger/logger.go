package logger

import (
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/core"
	"github.com/rs/zerolog"
)

type Options struct {
	Environment core.Environment
	Output      io.Writer
}

// New builds the root logger. Production logs JSON at info level, every other
// environment gets a console writer at debug level with caller info.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if opts.Environment.IsProduction() {
		return zerolog.New(out).
			Level(zerolog.InfoLevel).
			With().Timestamp().Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Caller().Logger()
}
