// Package logging provides the CLI's zerolog-backed logger. Output goes to
// stderr so tables on stdout stay pipeable.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger zerolog.Logger
	once   sync.Once
)

// Logger returns the lazily initialized process logger.
func Logger() zerolog.Logger {
	once.Do(func() {
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		logger = zerolog.New(out).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	})
	return logger
}

// SetDebug raises the log level to debug for the process logger.
func SetDebug() {
	logger = Logger().Level(zerolog.DebugLevel)
}
