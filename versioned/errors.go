package versioned

import (
	"errors"
)

// Configuration errors are caller programming errors: fatal, never retryable.
var (
	// ErrEmptyEntityTypeName is returned when an entity type is built without a name.
	ErrEmptyEntityTypeName = errors.New("entity type name must not be empty")

	// ErrNoFieldDefinitions is returned when an entity type is built without any fields.
	ErrNoFieldDefinitions = errors.New("entity type must have at least one field definition")

	// ErrDuplicateFieldName is returned when two field definitions share a name.
	ErrDuplicateFieldName = errors.New("duplicate field name in entity type")

	// ErrNoKeyFields is returned when no field of an entity type forms its key.
	ErrNoKeyFields = errors.New("entity type must have at least one key field")

	// ErrNoWatchedFields is returned when versioning is configured without watched fields.
	ErrNoWatchedFields = errors.New("versioning requires at least one watched field")

	// ErrUnknownWatchedField is returned when a watched field does not exist on the entity type.
	ErrUnknownWatchedField = errors.New("watched field is not defined on the entity type")

	// ErrNotConfigured is returned when versioning is used for an entity type
	// that was never configured with Configure.
	ErrNotConfigured = errors.New("versioning is not configured for this entity type")

	// ErrAlreadyConfigured is returned when Configure is called twice for the same entity type.
	ErrAlreadyConfigured = errors.New("versioning is already configured for this entity type")

	// ErrNilVersionStore is returned when versioning is configured without a store.
	ErrNilVersionStore = errors.New("nil version store supplied")
)

var (
	// ErrCreatingVersionFailed is returned when persisting a version row fails.
	// The base update has already committed at that point; the failure is
	// propagated to the caller and never retried or masked (see package docs).
	ErrCreatingVersionFailed = errors.New("creating version row failed")

	// ErrQueryingVersionsFailed is returned when reading version history fails.
	ErrQueryingVersionsFailed = errors.New("querying version history failed")
)

// Engine-level errors, shared by the store implementations.
var (
	ErrNilDatabaseConnection  = errors.New("nil database connection supplied")
	ErrBuildingQueryFailed    = errors.New("failed to build sql query")
	ErrDatabaseQueryFailed    = errors.New("database query execution failed")
	ErrDatabaseExecFailed     = errors.New("database statement execution failed")
	ErrScanningRowFailed      = errors.New("failed to scan database row")
	ErrExecutingDDLFailed     = errors.New("failed to execute schema statement")
	ErrUnexpectedRowsAffected = errors.New("unexpected number of rows affected")
)
