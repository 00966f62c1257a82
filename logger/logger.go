package logger

import (
	"io"
	"os"
	"time"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
)

// Supported log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New builds the node logger on stdout. Any format other than json is
// rendered through the console writer.
func New(logLevel int, logFormat string, logSampler bool) zerolog.Logger {
	return NewWithWriter(os.Stdout, logLevel, logFormat, logSampler)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(out io.Writer, logLevel int, logFormat string, logSampler bool) zerolog.Logger {
	if logFormat != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(out).
		Level(zerolog.Level(logLevel)).
		With().
		Timestamp().
		Logger()

	if logSampler {
		// one event in five
		l = l.Sample(&zerolog.BasicSampler{N: 5})
	}
	return l
}

// ModuleLogger exposes a zerolog logger through the key/value interface the
// ledger modules log with, so both share one writer and level.
func ModuleLogger(logger zerolog.Logger) log.Logger {
	return log.NewCustomLogger(logger)
}
