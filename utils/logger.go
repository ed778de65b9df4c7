package utils

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// NewLogger builds a zerolog logger for the given level and format ("console" or "json").
// A nil output defaults to stderr, so the logs never mix with piped image data.
func NewLogger(level, format string, output io.Writer) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	if output == nil {
		output = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if format == "console" {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		})
	} else {
		zl = zerolog.New(output)
	}

	return zl.Level(lvl).With().
		Timestamp().
		Str("service", "mirrorsvg").
		Logger()
}
