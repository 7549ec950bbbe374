// Package logger owns the process-wide zerolog instance shared by the
// registry, dispatcher and server. It writes console output to stderr
// and goes quiet under go test so table output stays readable.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput redirects the shared logger to w.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set replaces the shared logger wholesale.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable silences all logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the shared logger. Callers attach their own component
// field rather than holding a copy at init time.
func Logger() zerolog.Logger {
	return logger
}
