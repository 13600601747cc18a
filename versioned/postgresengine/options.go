package postgresengine

import (
	"time"
)

// Logger interface for SQL query logging, operational messages, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting VersionStore performance and operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// Option defines a functional option for configuring VersionStore.
type Option func(*VersionStore) error

// WithLogger sets the logger for the VersionStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: row counts and durations (production-safe)
// Warn level: non-critical issues like cleanup failures
// Error level: critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(s *VersionStore) error {
		s.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the VersionStore.
// The collector will receive create/query durations and database error counts.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *VersionStore) error {
		s.metricsCollector = collector
		return nil
	}
}
