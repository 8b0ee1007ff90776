package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger with console output. Unknown levels fall
// back to info.
func New(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(parsed).With().Timestamp().Logger()
}
