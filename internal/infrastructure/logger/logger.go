package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	*slog.Logger
}

// DefaultLogger creates a logger using slog.Default()
func DefaultLogger() *Logger {
	return &Logger{
		Logger: slog.Default(),
	}
}

// NewLogger creates a configured logger based on environment variables:
// - DOWNTIMED_LOG_LEVEL: DEBUG, INFO, WARN, ERROR (default: INFO)
// - DOWNTIMED_LOG_FORMAT: json or text (default: text)
// - DOWNTIMED_LOG_OUTPUT: stdout, stderr, or file path (default: stderr)
//
// Defaulting to stderr keeps operational logging separate from report
// output on stdout.
func NewLogger() *Logger {
	level := parseLogLevel(os.Getenv("DOWNTIMED_LOG_LEVEL"))
	format := strings.ToLower(os.Getenv("DOWNTIMED_LOG_FORMAT"))
	output := os.Getenv("DOWNTIMED_LOG_OUTPUT")

	if format == "" {
		format = "text"
	}

	if output == "" {
		output = "stderr"
	}

	var writer io.Writer
	switch output {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		// File path
		file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			// Fallback to stderr if file can't be opened
			writer = os.Stderr
		} else {
			writer = file
		}
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// SLog exposes the underlying slog.Logger for middleware that needs the
// concrete type.
func (l *Logger) SLog() *slog.Logger {
	return l.Logger
}

// parseLogLevel parses log level from string
func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetDefaultLogger sets the logger as the default slog logger
func SetDefaultLogger(l *Logger) {
	slog.SetDefault(l.Logger)
}
