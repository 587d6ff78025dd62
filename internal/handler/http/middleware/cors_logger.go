package middleware

import (
	"log/slog"
)

// CORSLogger is an interface for logging CORS-related events.
// It allows injecting custom loggers for testing or different logging backends.
type CORSLogger interface {
	// Info logs informational messages about CORS operations.
	Info(msg string, fields map[string]interface{})

	// Warn logs warning messages about CORS policy violations.
	Warn(msg string, fields map[string]interface{})

	// Debug logs debug messages about CORS request processing.
	Debug(msg string, fields map[string]interface{})
}

// SlogAdapter adapts Go's standard log/slog Logger to the CORSLogger interface.
// It converts the map-based fields to slog.Any attributes for structured logging.
type SlogAdapter struct {
	Logger *slog.Logger
}

// Info logs informational messages using slog.Info.
func (a *SlogAdapter) Info(msg string, fields map[string]interface{}) {
	a.Logger.Info(msg, fieldsToArgs(fields)...)
}

// Warn logs warning messages using slog.Warn.
func (a *SlogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.Logger.Warn(msg, fieldsToArgs(fields)...)
}

// Debug logs debug messages using slog.Debug.
func (a *SlogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.Logger.Debug(msg, fieldsToArgs(fields)...)
}

func fieldsToArgs(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields))
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return args
}

// NoOpLogger is a no-operation logger for testing purposes.
type NoOpLogger struct{}

// Info does nothing.
func (l *NoOpLogger) Info(msg string, fields map[string]interface{}) {}

// Warn does nothing.
func (l *NoOpLogger) Warn(msg string, fields map[string]interface{}) {}

// Debug does nothing.
func (l *NoOpLogger) Debug(msg string, fields map[string]interface{}) {}
