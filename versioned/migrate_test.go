package versioned_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamapper/dm-is-versioned/testutil/fixtures"
	"github.com/datamapper/dm-is-versioned/versioned"
)

func Test_AutoMigrate_PropagatesEntityTypeFirst(t *testing.T) {
	store := &migratorSpy{}
	storyType := fixtures.NewStoryType()
	versioning, err := versioned.Configure(storyType, store, versioned.On("updated_at"))
	require.NoError(t, err)

	require.NoError(t, versioning.AutoMigrate(context.Background()))

	assert.Equal(t, []string{"stories", "story_versions"}, store.migrated)
}

func Test_AutoUpgrade_PropagatesEntityTypeFirst(t *testing.T) {
	store := &migratorSpy{}
	storyType := fixtures.NewStoryType()
	versioning, err := versioned.Configure(storyType, store, versioned.On("updated_at"))
	require.NoError(t, err)

	require.NoError(t, versioning.AutoUpgrade(context.Background()))

	assert.Equal(t, []string{"stories", "story_versions"}, store.upgraded)
}

func Test_AutoMigrate_SkipsStoresWithoutMigrationSupport(t *testing.T) {
	_, versioning := configuredStoryVersioning(t, &storeSpy{})

	assert.NoError(t, versioning.AutoMigrate(context.Background()))
	assert.NoError(t, versioning.AutoUpgrade(context.Background()))
}
