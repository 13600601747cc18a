// Package postgresengine provides a PostgreSQL implementation of the versioned.VersionStore interface.
//
// This package stores version rows in per-entity-type history tables using
// PostgreSQL, supporting multiple database adapters (pgx, sql.DB, sqlx) and
// runtime schema migration for the derived history tables.
//
// Key features:
//   - Multiple database adapter support (PGX, SQL, SQLX)
//   - SQL built with goqu, one column per history field in declared order
//   - Schema creation and in-place upgrade (AutoMigrate / AutoUpgrade)
//   - Configurable logging and metrics collection
//
// Usage example:
//
//	db, _ := pgxpool.New(context.Background(), dsn)
//	store, _ := postgresengine.NewVersionStoreFromPGXPool(
//		db,
//		postgresengine.WithLogger(logger),
//	)
//
//	v, _ := versioned.Configure(storyType, store, versioned.On("updated_at"))
//	_ = v.AutoMigrate(ctx)
package postgresengine
