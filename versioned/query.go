package versioned

import (
	"context"
	"errors"
)

// Versions returns the ordered version history for a record through the
// process-wide registry. See Versioning.Versions.
func Versions(ctx context.Context, rec Record) ([]VersionRow, error) {
	v, err := Of(rec.EntityType())
	if err != nil {
		return nil, err
	}

	return v.Versions(ctx, rec)
}

// Versions returns the record's version history, newest first.
//
// The lookup restricts history rows with one equality condition per key
// field of the LIVE entity type, using the record's current values, and
// orders by the history type's key fields (the watched fields) descending.
// No history yields an empty slice. Results are never cached here; every
// call re-evaluates the lookup.
func (v *Versioning) Versions(ctx context.Context, rec Record) ([]VersionRow, error) {
	historyType := v.HistoryType()
	attributes := rec.Attributes()

	keyFields := v.entity.KeyFields()
	conditions := make([]Condition, 0, len(keyFields))
	for _, field := range keyFields {
		conditions = append(conditions, Eq(field.Name, attributes[field.Name]))
	}

	historyKeys := historyType.KeyFields()
	order := make([]Ordering, 0, len(historyKeys))
	for _, field := range historyKeys {
		order = append(order, Desc(field.Name))
	}

	rows, err := v.store.Versions(ctx, historyType, conditions, order)
	if err != nil {
		return nil, errors.Join(ErrQueryingVersionsFailed, err)
	}

	if rows == nil {
		rows = []VersionRow{}
	}

	return rows, nil
}
