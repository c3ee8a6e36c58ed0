package cli

import (
	"os"

	"github.com/rs/zerolog"
)

// newLogger returns a JSON debug logger appending to path. Without a path,
// or when the file cannot be opened, logging is disabled so nothing ever
// reaches the host's terminal.
func newLogger(path string) (zerolog.Logger, func()) {
	if path == "" {
		return zerolog.Nop(), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), func() {}
	}

	logger := zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("version", Version).
		Logger()

	return logger, func() { f.Close() }
}
