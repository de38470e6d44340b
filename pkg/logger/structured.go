package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog = zerolog.New(os.Stdout).With().Timestamp().Str("service", serviceName).Logger()

const serviceName = "bulletin-backend"

// InitStructured initializes the structured zerolog logger
func InitStructured(env string) {
	zlog = New(env, os.Stdout)
	zerolog.TimeFieldFormat = time.RFC3339
}

// New builds a logger writing to out; console format for local environments
func New(env string, out io.Writer) zerolog.Logger {
	var w io.Writer

	switch env {
	case "development", "dev", "local":
		// Pretty console output for development
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	default:
		// JSON output for production (machine-readable)
		w = out
	}

	return zerolog.New(w).With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// SetLogger replaces the global logger (tests)
func SetLogger(l zerolog.Logger) {
	zlog = l
}

// GetLogger returns the global zerolog logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a logger with request_id field
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}
