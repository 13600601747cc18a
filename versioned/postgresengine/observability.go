package postgresengine

import (
	"math"
	"time"
)

const (
	metricOperationDuration = "versionstore_operation_duration_seconds"
	metricDatabaseErrors    = "versionstore_database_errors_total"

	labelOperation = "operation"
)

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (s *VersionStore) logQueryWithDuration(
	sqlQuery string,
	action string,
	duration time.Duration,
) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, s.toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (s *VersionStore) logOperation(action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

// logError logs error information at the error level if the logger is configured.
func (s *VersionStore) logError(
	message string,
	err error,
	args ...any,
) {
	if s.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		s.logger.Error(message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (s *VersionStore) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// recordDuration records an operation duration if the metrics collector is configured.
func (s *VersionStore) recordDuration(operation string, duration time.Duration) {
	if s.metricsCollector != nil {
		s.metricsCollector.RecordDuration(metricOperationDuration, duration, map[string]string{
			labelOperation: operation,
		})
	}
}

// recordError counts a database error if the metrics collector is configured.
func (s *VersionStore) recordError(operation string) {
	if s.metricsCollector != nil {
		s.metricsCollector.IncrementCounter(metricDatabaseErrors, map[string]string{
			labelOperation: operation,
		})
	}
}
