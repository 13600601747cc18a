package postgreswrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/datamapper/dm-is-versioned/testutil/postgresengine/config"
	"github.com/datamapper/dm-is-versioned/versioned/postgresengine"
)

// Engine type constants
const (
	typePGXPool = "pgx.pool"
	typeSQLDB   = "sql.db"
	typeSQLXDB  = "sqlx.db"
)

// Wrapper abstracts over the different adapter types so the same test
// suite can run against each of them.
type Wrapper interface {
	GetVersionStore() *postgresengine.VersionStore
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing
type PGXPoolWrapper struct {
	pool *pgxpool.Pool
	vs   *postgresengine.VersionStore
}

func (w *PGXPoolWrapper) GetVersionStore() *postgresengine.VersionStore {
	return w.vs
}

func (w *PGXPoolWrapper) Close() {
	w.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing
type SQLDBWrapper struct {
	db *sql.DB
	vs *postgresengine.VersionStore
}

func (w *SQLDBWrapper) GetVersionStore() *postgresengine.VersionStore {
	return w.vs
}

func (w *SQLDBWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// SQLXWrapper wraps sqlx.DB-based testing
type SQLXWrapper struct {
	db *sqlx.DB
	vs *postgresengine.VersionStore
}

func (w *SQLXWrapper) GetVersionStore() *postgresengine.VersionStore {
	return w.vs
}

func (w *SQLXWrapper) Close() {
	_ = w.db.Close() // ignore error
}

// CreateWrapperWithTestConfig creates the appropriate wrapper based on the
// ADAPTER_TYPE environment variable, defaulting to pgx.pool.
func CreateWrapperWithTestConfig(t testing.TB, options ...postgresengine.Option) Wrapper {
	engineTypeFromEnv := strings.ToLower(os.Getenv("ADAPTER_TYPE"))

	switch engineTypeFromEnv {
	case typePGXPool, "":
		connPool, err := pgxpool.NewWithConfig(context.Background(), config.PostgresPGXPoolConfig())
		require.NoError(t, err, "error connecting to DB pool in test setup")

		vs, err := postgresengine.NewVersionStoreFromPGXPool(connPool, options...)
		require.NoError(t, err, "error creating version store in test setup")

		return &PGXPoolWrapper{pool: connPool, vs: vs}

	case typeSQLDB:
		db := config.PostgresSQLDBConfig()

		vs, err := postgresengine.NewVersionStoreFromSQLDB(db, options...)
		require.NoError(t, err, "error creating version store in test setup")

		return &SQLDBWrapper{db: db, vs: vs}

	case typeSQLXDB:
		db := config.PostgresSQLXConfig()

		vs, err := postgresengine.NewVersionStoreFromSQLX(db, options...)
		require.NoError(t, err, "error creating version store in test setup")

		return &SQLXWrapper{db: db, vs: vs}

	default: // neither one of the known types nor empty
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", engineTypeFromEnv))
	}
}
