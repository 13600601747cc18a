package postgresengine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/datamapper/dm-is-versioned/versioned"
)

// AutoMigrate creates the entity type's table from scratch, plus a
// supporting index over its key fields.
//
// A serial field becomes the table's primary key. A derived history type has
// no serial field, so its table carries no primary key constraint: the
// history key (the watched fields) orders the lookup but is deliberately
// not enforced as unique, several live rows of one type may legitimately
// produce version rows with equal watched values.
func (s *VersionStore) AutoMigrate(ctx context.Context, entityType *versioned.EntityType) error {
	return s.execDDL(ctx, buildCreateTableSQL(entityType))
}

// AutoUpgrade brings an existing table up to the entity type's current field
// set, creating the table first when it is missing. Existing columns and
// data are left untouched.
func (s *VersionStore) AutoUpgrade(ctx context.Context, entityType *versioned.EntityType) error {
	return s.execDDL(ctx, buildUpgradeSQL(entityType))
}

func (s *VersionStore) execDDL(ctx context.Context, statements []string) error {
	for _, statement := range statements {
		if _, execErr := s.db.Exec(ctx, statement); execErr != nil {
			s.logError(logMsgDBExecFailed, execErr, logAttrQuery, statement)
			s.recordError(logActionMigrate)

			return errors.Join(versioned.ErrExecutingDDLFailed, execErr)
		}

		if s.logger != nil {
			s.logger.Debug(logMsgSQLExecuted+logActionMigrate, logAttrQuery, statement)
		}
	}

	return nil
}

func buildCreateTableSQL(entityType *versioned.EntityType) []string {
	fields := entityType.Fields()
	columns := make([]string, 0, len(fields))

	for _, field := range fields {
		columns = append(columns, columnDefinition(field))
	}

	createTable := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (%s)",
		quoteIdent(entityType.TableName()),
		strings.Join(columns, ", "),
	)

	statements := []string{createTable}

	if indexStmt, ok := buildKeyIndexSQL(entityType); ok {
		statements = append(statements, indexStmt)
	}

	return statements
}

func buildUpgradeSQL(entityType *versioned.EntityType) []string {
	statements := buildCreateTableSQL(entityType)

	for _, field := range entityType.Fields() {
		statements = append(statements, fmt.Sprintf(
			"ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s",
			quoteIdent(entityType.TableName()),
			columnDefinition(field),
		))
	}

	return statements
}

// buildKeyIndexSQL returns an index over the key fields, unless the serial
// primary key already covers them.
func buildKeyIndexSQL(entityType *versioned.EntityType) (string, bool) {
	keyFields := entityType.KeyFields()
	if len(keyFields) == 0 {
		return "", false
	}

	if len(keyFields) == 1 && keyFields[0].Kind == versioned.KindSerial {
		return "", false
	}

	quoted := make([]string, len(keyFields))
	for i, field := range keyFields {
		quoted[i] = quoteIdent(field.Name)
	}

	indexName := fmt.Sprintf("idx_%s_key", entityType.TableName())

	return fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
		quoteIdent(indexName),
		quoteIdent(entityType.TableName()),
		strings.Join(quoted, ", "),
	), true
}

func columnDefinition(field versioned.FieldDefinition) string {
	definition := quoteIdent(field.Name) + " " + columnType(field.Kind)

	if field.Kind == versioned.KindSerial {
		definition += " PRIMARY KEY"
	}

	if required, ok := field.Options[versioned.OptionRequired].(bool); ok && required {
		definition += " NOT NULL"
	}

	return definition
}

func columnType(kind versioned.FieldKind) string {
	switch kind {
	case versioned.KindSerial:
		return "BIGSERIAL"
	case versioned.KindInteger:
		return "BIGINT"
	case versioned.KindFloat:
		return "DOUBLE PRECISION"
	case versioned.KindBoolean:
		return "BOOLEAN"
	case versioned.KindTimestamp:
		return "TIMESTAMPTZ"
	case versioned.KindJSON:
		return "JSONB"
	default:
		return "TEXT"
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
