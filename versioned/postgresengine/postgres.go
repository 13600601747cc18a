package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"

	"github.com/datamapper/dm-is-versioned/versioned"
	"github.com/datamapper/dm-is-versioned/versioned/postgresengine/internal/adapters"
)

const (
	dialectPostgres = "postgres"

	logMsgBuildInsertQueryFailed = "failed to build version insert query"
	logMsgBuildSelectQueryFailed = "failed to build version select query"
	logMsgDBExecFailed           = "database execution failed during version create"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan version row"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgVersionCreated         = "version row created"
	logMsgVersionsQueried        = "version history queried"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "version store operation: "

	logAttrError       = "error"
	logAttrQuery       = "query"
	logAttrTable       = "table"
	logAttrRowCount    = "row_count"
	logAttrDurationMS  = "duration_ms"
	logActionCreate    = "create"
	logActionVersions  = "versions"
	logActionMigrate   = "migrate"
	castJsonb          = "?::jsonb"
)

type sqlQueryString = string

// VersionStore is a PostgreSQL implementation of versioned.VersionStore and
// versioned.SchemaMigrator. It leverages a database adapter and supports
// customizable logging and metrics collection.
type VersionStore struct {
	db               adapters.DBAdapter
	logger           Logger
	metricsCollector MetricsCollector
}

// NewVersionStoreFromPGXPool creates a new VersionStore using a pgx Pool with optional configuration.
func NewVersionStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*VersionStore, error) {
	if db == nil {
		return nil, versioned.ErrNilDatabaseConnection
	}

	return newVersionStore(adapters.NewPGXAdapter(db), options...)
}

// NewVersionStoreFromPGXPoolWithReplica creates a new VersionStore using a
// primary pgx Pool for writes and a replica pool for history reads.
func NewVersionStoreFromPGXPoolWithReplica(primary *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*VersionStore, error) {
	if primary == nil || replica == nil {
		return nil, versioned.ErrNilDatabaseConnection
	}

	return newVersionStore(adapters.NewPGXAdapterWithReplica(primary, replica), options...)
}

// NewVersionStoreFromSQLDB creates a new VersionStore using a sql.DB with optional configuration.
func NewVersionStoreFromSQLDB(db *sql.DB, options ...Option) (*VersionStore, error) {
	if db == nil {
		return nil, versioned.ErrNilDatabaseConnection
	}

	return newVersionStore(adapters.NewSQLAdapter(db), options...)
}

// NewVersionStoreFromSQLX creates a new VersionStore using a sqlx.DB with optional configuration.
func NewVersionStoreFromSQLX(db *sqlx.DB, options ...Option) (*VersionStore, error) {
	if db == nil {
		return nil, versioned.ErrNilDatabaseConnection
	}

	return newVersionStore(adapters.NewSQLXAdapter(db), options...)
}

func newVersionStore(db adapters.DBAdapter, options ...Option) (*VersionStore, error) {
	store := &VersionStore{db: db}

	for _, option := range options {
		if err := option(store); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// CreateVersion persists one version row for the given history type.
// Column order follows the history type's declared field order.
func (s *VersionStore) CreateVersion(
	ctx context.Context,
	historyType *versioned.EntityType,
	attributes map[string]any,
) error {

	sqlQuery, buildErr := s.buildInsertQuery(historyType, attributes)
	if buildErr != nil {
		s.logError(logMsgBuildInsertQueryFailed, buildErr, logAttrTable, historyType.TableName())
		return buildErr
	}

	start := time.Now()
	tag, execErr := s.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(sqlQuery, logActionCreate, duration)

	if execErr != nil {
		s.logError(logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		s.recordError(logActionCreate)

		return errors.Join(versioned.ErrDatabaseExecFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := tag.RowsAffected()
	if rowsAffectedErr != nil {
		s.logError(logMsgRowsAffectedFailed, rowsAffectedErr)
		return errors.Join(versioned.ErrDatabaseExecFailed, rowsAffectedErr)
	}

	if rowsAffected != 1 {
		s.recordError(logActionCreate)
		return versioned.ErrUnexpectedRowsAffected
	}

	s.logOperation(logMsgVersionCreated, logAttrTable, historyType.TableName(), logAttrDurationMS, s.toMilliseconds(duration))
	s.recordDuration(logActionCreate, duration)

	return nil
}

// Versions retrieves the version rows of the given history type matching all
// conditions, sorted by the given ordering.
func (s *VersionStore) Versions(
	ctx context.Context,
	historyType *versioned.EntityType,
	conditions []versioned.Condition,
	order []versioned.Ordering,
) ([]versioned.VersionRow, error) {

	sqlQuery, buildErr := s.buildSelectQuery(historyType, conditions, order)
	if buildErr != nil {
		s.logError(logMsgBuildSelectQueryFailed, buildErr, logAttrTable, historyType.TableName())
		return nil, buildErr
	}

	start := time.Now()
	rows, queryErr := s.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(sqlQuery, logActionVersions, duration)

	if queryErr != nil {
		s.logError(logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		s.recordError(logActionVersions)

		return nil, errors.Join(versioned.ErrDatabaseQueryFailed, queryErr)
	}
	defer s.closeRows(rows)

	result, scanErr := s.processQueryResults(historyType, rows)
	if scanErr != nil {
		return nil, scanErr
	}

	s.logOperation(logMsgVersionsQueried, logAttrTable, historyType.TableName(), logAttrRowCount, len(result), logAttrDurationMS, s.toMilliseconds(duration))
	s.recordDuration(logActionVersions, duration)

	return result, nil
}

// closeRows safely closes database rows and logs any errors.
func (s *VersionStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if s.logger != nil {
			s.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// processQueryResults scans database rows into version rows, converting each
// column value to its field kind's natural Go representation.
func (s *VersionStore) processQueryResults(
	historyType *versioned.EntityType,
	rows adapters.DBRows,
) ([]versioned.VersionRow, error) {

	fields := historyType.Fields()
	result := make([]versioned.VersionRow, 0)

	for rows.Next() {
		values := make([]any, len(fields))
		dests := make([]any, len(fields))
		for i := range values {
			dests[i] = &values[i]
		}

		if scanErr := rows.Scan(dests...); scanErr != nil {
			s.logError(logMsgScanRowFailed, scanErr)
			return nil, errors.Join(versioned.ErrScanningRowFailed, scanErr)
		}

		row := make(versioned.VersionRow, len(fields))
		for i, field := range fields {
			converted, convErr := convertColumnValue(field.Kind, values[i])
			if convErr != nil {
				s.logError(logMsgScanRowFailed, convErr, logAttrTable, historyType.TableName())
				return nil, errors.Join(versioned.ErrScanningRowFailed, convErr)
			}
			row[field.Name] = converted
		}

		result = append(result, row)
	}

	return result, nil
}

func (s *VersionStore) buildInsertQuery(
	historyType *versioned.EntityType,
	attributes map[string]any,
) (sqlQueryString, error) {

	fields := historyType.Fields()
	cols := make([]any, 0, len(fields))
	vals := make([]any, 0, len(fields))

	for _, field := range fields {
		cols = append(cols, field.Name)

		value, encodeErr := encodeColumnValue(field.Kind, attributes[field.Name])
		if encodeErr != nil {
			return "", errors.Join(versioned.ErrBuildingQueryFailed, encodeErr)
		}
		vals = append(vals, value)
	}

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(historyType.TableName()).
		Cols(cols...).
		Vals(vals)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(versioned.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (s *VersionStore) buildSelectQuery(
	historyType *versioned.EntityType,
	conditions []versioned.Condition,
	order []versioned.Ordering,
) (sqlQueryString, error) {

	fields := historyType.Fields()
	cols := make([]any, 0, len(fields))
	for _, field := range fields {
		cols = append(cols, field.Name)
	}

	selectStmt := goqu.Dialect(dialectPostgres).
		From(historyType.TableName()).
		Select(cols...)

	for _, condition := range conditions {
		selectStmt = selectStmt.Where(goqu.Ex{condition.Field(): condition.Value()})
	}

	for _, ordering := range order {
		if ordering.Descending() {
			selectStmt = selectStmt.Order(goqu.I(ordering.Field()).Desc())
		} else {
			selectStmt = selectStmt.Order(goqu.I(ordering.Field()).Asc())
		}
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(versioned.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// encodeColumnValue prepares an attribute value for SQL interpolation.
// JSON-kind values are serialized so arbitrary maps and slices round-trip.
func encodeColumnValue(kind versioned.FieldKind, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	if kind == versioned.KindJSON {
		raw, marshalErr := jsoniter.ConfigFastest.Marshal(value)
		if marshalErr != nil {
			return nil, marshalErr
		}

		return goqu.L(castJsonb, string(raw)), nil
	}

	return value, nil
}

// convertColumnValue maps a scanned column value back to the field kind's
// natural Go representation.
func convertColumnValue(kind versioned.FieldKind, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch kind {
	case versioned.KindJSON:
		var decoded any
		switch raw := value.(type) {
		case []byte:
			if err := jsoniter.ConfigFastest.Unmarshal(raw, &decoded); err != nil {
				return nil, err
			}
			return decoded, nil
		case string:
			if err := jsoniter.ConfigFastest.Unmarshal([]byte(raw), &decoded); err != nil {
				return nil, err
			}
			return decoded, nil
		default:
			return value, nil
		}

	case versioned.KindString, versioned.KindDiscriminator:
		if raw, ok := value.([]byte); ok {
			return string(raw), nil
		}
		return value, nil

	case versioned.KindInteger, versioned.KindSerial:
		switch raw := value.(type) {
		case int32:
			return int64(raw), nil
		case int:
			return int64(raw), nil
		default:
			return value, nil
		}

	default:
		return value, nil
	}
}
