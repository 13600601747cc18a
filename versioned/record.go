package versioned

// Record is the view of an entity instance that a persistence engine exposes
// to the versioning hooks during a save cycle.
//
// Attribute maps are snapshots: mutating a returned map never mutates the
// record. OriginalAttributes holds the last persisted values, Attributes the
// current (possibly dirty) values, and ChangeSet the changed-field subset.
type Record interface {
	// EntityType returns the record's entity type. Versioning is looked up
	// by this type's identity.
	EntityType() *EntityType

	// Attributes returns the current value of every field.
	Attributes() map[string]any

	// OriginalAttributes returns the last persisted value of every field.
	OriginalAttributes() map[string]any

	// ChangeSet maps each changed field name to its new value.
	ChangeSet() map[string]any

	// IsNew reports whether the record has never been persisted.
	IsNew() bool

	// Clean reports whether the record has no uncommitted changes.
	Clean() bool

	// VersionSnapshot returns the record's pending snapshot holding area.
	// It is owned exclusively by this record for the duration of a save cycle.
	VersionSnapshot() *PendingSnapshot
}

// PendingSnapshot is the per-instance holding area for pre-change attribute
// values, populated between "update about to happen" and "update confirmed".
// The zero value is ready to use and means "no version pending".
//
// A PendingSnapshot is instance-local state and is not safe for concurrent
// use; it lives entirely within one save cycle of one record.
type PendingSnapshot struct {
	values map[string]any
}

// Empty reports whether no version capture is pending.
func (p *PendingSnapshot) Empty() bool {
	return len(p.values) == 0
}

// Values returns a copy of the captured pre-change attributes.
func (p *PendingSnapshot) Values() map[string]any {
	return copyAttributes(p.values)
}

// stage captures the given original attributes. Staging again within the
// same save cycle recaptures the identical originals, so it is idempotent.
func (p *PendingSnapshot) stage(original map[string]any) {
	p.values = copyAttributes(original)
}

// clear resets the holding area to "no version pending".
func (p *PendingSnapshot) clear() {
	p.values = nil
}

func copyAttributes(attributes map[string]any) map[string]any {
	if attributes == nil {
		return nil
	}

	clone := make(map[string]any, len(attributes))
	for name, value := range attributes {
		clone[name] = value
	}

	return clone
}
