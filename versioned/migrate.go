package versioned

import (
	"context"
)

// AutoMigrate creates the schemas for the versioned entity type and its
// history type, in that order: the history schema must exist before any
// snapshot that depends on it is written, while deriving it never requires
// the base schema to exist.
//
// Propagation is capability-gated: when the bound store does not implement
// SchemaMigrator, AutoMigrate is a no-op.
func (v *Versioning) AutoMigrate(ctx context.Context) error {
	migrator, ok := v.store.(SchemaMigrator)
	if !ok {
		return nil
	}

	if err := migrator.AutoMigrate(ctx, v.entity); err != nil {
		return err
	}

	return migrator.AutoMigrate(ctx, v.HistoryType())
}

// AutoUpgrade upgrades both schemas in place, entity type first, with the
// same capability gating as AutoMigrate.
func (v *Versioning) AutoUpgrade(ctx context.Context) error {
	migrator, ok := v.store.(SchemaMigrator)
	if !ok {
		return nil
	}

	if err := migrator.AutoUpgrade(ctx, v.entity); err != nil {
		return err
	}

	return migrator.AutoUpgrade(ctx, v.HistoryType())
}
