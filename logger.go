package novelwriting

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is used by everything in this package unless a manager is given its
// own logger with WithLogger. It is silent by default.
var Logger = zerolog.Nop()

// SetLogOutput makes the package log human-readable lines to w at the given
// level. Pass nil to go back to silence.
func SetLogOutput(w io.Writer, level zerolog.Level) {
	if w == nil {
		Logger = zerolog.Nop()
		return
	}
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Str("lib", appName).
		Logger()
}

// EnableDebugLog is a shortcut for SetLogOutput(os.Stderr, zerolog.DebugLevel).
func EnableDebugLog() {
	SetLogOutput(os.Stderr, zerolog.DebugLevel)
}
