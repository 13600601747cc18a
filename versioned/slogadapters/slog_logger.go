// Package slogadapters provides log/slog implementations of the logger
// interfaces the storage engines accept. The structural Debug/Info/Warn/Error
// shape satisfies both postgresengine.Logger and memoryengine.Logger.
package slogadapters

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// SlogLogger adapts a slog.Logger to the engines' logger interfaces.
type SlogLogger struct {
	logger *slog.Logger
}

// NewTintLogger creates a logger with colored console output, suitable for
// examples and development use.
func NewTintLogger(level slog.Level) *SlogLogger {
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})

	return &SlogLogger{logger: slog.New(handler)}
}

// NewHandlerLogger creates a logger using the provided slog.Handler.
func NewHandlerLogger(handler slog.Handler) *SlogLogger {
	return &SlogLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
