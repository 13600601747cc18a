// Package postgreswrapper provides adapter-agnostic setup helpers for
// running the version store test suite against each supported PostgreSQL
// adapter (pgx.Pool, sql.DB, sqlx.DB).
package postgreswrapper
