// Package config provides PostgreSQL database configuration for version store testing.
//
// This package contains factory functions for creating database connections
// with the supported PostgreSQL adapters (pgx.Pool, sql.DB, sqlx.DB) against
// the test database. The DSN is resolved through viper and can be overridden
// with the VERSIONED_TEST_DSN environment variable.
package config
