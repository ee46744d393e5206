package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "stepup"

// NewLogger returns a slog.Logger writing to stdout, configured from GO_ENV, LOG_LEVEL and LOG_FORMAT.
func NewLogger() *slog.Logger {
	return newLogger(os.Stdout, os.Getenv("GO_ENV"), os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// newLogger picks the JSON handler in production or when format is "json", text otherwise.
// Every record carries the service name.
func newLogger(w io.Writer, env, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	format = strings.ToLower(format)
	if format == "" && env == "production" {
		format = "json"
	}
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("service", serviceName)
}

// parseLevel maps debug, info, warn and error. Anything else is info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
