package versioned

import (
	"context"
	"errors"
)

// BeforeUpdate is the staging hook. Persistence engines call it once per
// save cycle, after computing the change set and before sending the update
// to storage. It is a no-op for entity types without versioning configured.
func BeforeUpdate(rec Record) {
	v, err := Of(rec.EntityType())
	if err != nil {
		return
	}

	v.Stage(rec)
}

// AfterUpdate is the commit hook. Persistence engines call it once per save
// cycle, strictly after the update has been confirmed successful. It is a
// no-op for entity types without versioning configured.
func AfterUpdate(ctx context.Context, rec Record) error {
	v, err := Of(rec.EntityType())
	if err != nil {
		return nil
	}

	return v.Commit(ctx, rec)
}

// Stage captures the record's pre-change attribute values into its pending
// snapshot when at least one watched field is about to change.
//
// It captures ALL original attributes, not only the changed ones, so the
// committed version row is a complete pre-change image. New records and
// records with no watched change are left untouched. Stage performs no I/O
// and mutates only the record's own snapshot.
func (v *Versioning) Stage(rec Record) {
	if rec.IsNew() {
		return
	}

	changes := rec.ChangeSet()

	for _, name := range v.watched {
		if _, changing := changes[name]; changing {
			rec.VersionSnapshot().stage(rec.OriginalAttributes())
			return
		}
	}
}

// Commit persists the staged snapshot as a new version row.
//
// It only acts when the record is clean (the update fully committed) and a
// snapshot is pending. The archived row is the record's current attributes
// overlaid with the snapshot values, snapshot values winning: those are the
// pre-change values that must be preserved. The snapshot is cleared
// unconditionally after the attempt, also when the store fails.
//
// A store failure propagates joined with ErrCreatingVersionFailed. The base
// update has already committed by then, leaving an updated live row without
// a matching version row; this window is accepted and never retried here.
func (v *Versioning) Commit(ctx context.Context, rec Record) error {
	if !rec.Clean() {
		// Partial save, the cycle is not over: keep the snapshot for the
		// commit that follows the completing update.
		return nil
	}

	snapshot := rec.VersionSnapshot()
	if snapshot.Empty() {
		return nil
	}

	defer snapshot.clear()

	attributes := rec.Attributes()
	for name, value := range snapshot.Values() {
		attributes[name] = value
	}

	if err := v.store.CreateVersion(ctx, v.HistoryType(), attributes); err != nil {
		return errors.Join(ErrCreatingVersionFailed, err)
	}

	return nil
}
