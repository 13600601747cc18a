package postgresengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datamapper/dm-is-versioned/versioned"
	"github.com/datamapper/dm-is-versioned/versioned/postgresengine"
)

func Test_NewVersionStore_NilConnectionsAreRejected(t *testing.T) {
	_, err := postgresengine.NewVersionStoreFromPGXPool(nil)
	assert.ErrorIs(t, err, versioned.ErrNilDatabaseConnection)

	_, err = postgresengine.NewVersionStoreFromPGXPoolWithReplica(nil, nil)
	assert.ErrorIs(t, err, versioned.ErrNilDatabaseConnection)

	_, err = postgresengine.NewVersionStoreFromSQLDB(nil)
	assert.ErrorIs(t, err, versioned.ErrNilDatabaseConnection)

	_, err = postgresengine.NewVersionStoreFromSQLX(nil)
	assert.ErrorIs(t, err, versioned.ErrNilDatabaseConnection)
}
