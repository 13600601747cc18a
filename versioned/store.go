package versioned

import (
	"context"
)

// VersionRow is one archived set of attribute values, keyed by field name.
// Version rows are immutable once created; this subsystem never updates or
// deletes them.
type VersionRow = map[string]any

// VersionStore is the narrow interface a storage engine implements so that
// version rows can be written and read back.
type VersionStore interface {
	// CreateVersion persists one version row for the given history type.
	CreateVersion(ctx context.Context, historyType *EntityType, attributes map[string]any) error

	// Versions returns the rows of the given history type matching all
	// conditions, sorted by the given ordering. No matches yields an empty
	// slice, not an error.
	Versions(ctx context.Context, historyType *EntityType, conditions []Condition, order []Ordering) ([]VersionRow, error)
}

// SchemaMigrator is the optional capability interface for stores that can
// create or upgrade schemas. Lifecycle propagation is gated on it: stores
// without migration support simply skip propagation.
type SchemaMigrator interface {
	// AutoMigrate creates the entity type's schema from scratch.
	AutoMigrate(ctx context.Context, entityType *EntityType) error

	// AutoUpgrade upgrades the entity type's schema in place, keeping data.
	AutoUpgrade(ctx context.Context, entityType *EntityType) error
}

/***** Condition *****/

// Condition is a single field = value equality restriction.
type Condition struct {
	field string
	value any
}

// Eq builds an equality condition.
func Eq(field string, value any) Condition {
	return Condition{field: field, value: value}
}

// Field returns the restricted field name.
func (c Condition) Field() string {
	return c.field
}

// Value returns the value the field must equal.
func (c Condition) Value() any {
	return c.value
}

/***** Ordering *****/

// Ordering is a single sort instruction.
type Ordering struct {
	field      string
	descending bool
}

// Desc builds a descending ordering on the given field.
func Desc(field string) Ordering {
	return Ordering{field: field, descending: true}
}

// Asc builds an ascending ordering on the given field.
func Asc(field string) Ordering {
	return Ordering{field: field}
}

// Field returns the ordered field name.
func (o Ordering) Field() string {
	return o.field
}

// Descending reports whether the ordering is descending.
func (o Ordering) Descending() bool {
	return o.descending
}
