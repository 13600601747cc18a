package memoryengine

import (
	"errors"

	"github.com/datamapper/dm-is-versioned/versioned"
)

// ErrUnknownField is returned when a record attribute is set for a field the
// entity type does not define.
var ErrUnknownField = errors.New("field is not defined on the entity type")

// Record is the engine's entity instance. It tracks the current and the last
// persisted attribute values so the change set and dirty state fall out of
// the difference, and carries the per-instance pending version snapshot.
//
// A Record is bound to one save cycle at a time and is not safe for
// concurrent use.
type Record struct {
	entityType *versioned.EntityType
	current    map[string]any
	original   map[string]any
	persisted  bool
	snapshot   versioned.PendingSnapshot
}

// NewRecord creates a new, never persisted record with the given attributes.
func NewRecord(entityType *versioned.EntityType, attributes map[string]any) (*Record, error) {
	rec := &Record{
		entityType: entityType,
		current:    make(map[string]any, len(attributes)),
	}

	for name, value := range attributes {
		if err := rec.Set(name, value); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

// Set assigns a field value on the record.
func (r *Record) Set(name string, value any) error {
	if _, ok := r.entityType.Field(name); !ok {
		return errors.Join(ErrUnknownField, errors.New(name))
	}

	r.current[name] = value

	return nil
}

// Get returns the current value of a field.
func (r *Record) Get(name string) any {
	return r.current[name]
}

// EntityType returns the record's entity type.
func (r *Record) EntityType() *versioned.EntityType {
	return r.entityType
}

// Attributes returns a copy of the current attribute values.
func (r *Record) Attributes() map[string]any {
	return copyAttributes(r.current)
}

// OriginalAttributes returns a copy of the last persisted attribute values.
func (r *Record) OriginalAttributes() map[string]any {
	return copyAttributes(r.original)
}

// ChangeSet maps each field whose current value differs from the last
// persisted one to its new value. A never persisted record changes nothing.
func (r *Record) ChangeSet() map[string]any {
	changes := make(map[string]any)

	if !r.persisted {
		return changes
	}

	for name, value := range r.current {
		if compareValues(r.original[name], value) != 0 {
			changes[name] = value
		}
	}

	return changes
}

// IsNew reports whether the record has never been persisted.
func (r *Record) IsNew() bool {
	return !r.persisted
}

// Clean reports whether the record has no uncommitted changes.
func (r *Record) Clean() bool {
	return r.persisted && len(r.ChangeSet()) == 0
}

// VersionSnapshot returns the record's pending snapshot holding area.
func (r *Record) VersionSnapshot() *versioned.PendingSnapshot {
	return &r.snapshot
}

// markPersisted promotes the current values to the persisted baseline. The
// repository calls it once storage has confirmed an insert or update.
func (r *Record) markPersisted() {
	r.original = copyAttributes(r.current)
	r.persisted = true
}
