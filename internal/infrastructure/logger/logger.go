// Package logger exposes the process-wide zerolog instance. Batch output
// meant for the user (progress, summary) goes through internal/display;
// this logger carries diagnostics and engine chatter.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	Level(zerolog.InfoLevel).
	With().Timestamp().Logger()

// SetVerbose lowers the level to debug.
func SetVerbose(verbose bool) {
	if verbose {
		log = log.Level(zerolog.DebugLevel)
	}
}

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }
