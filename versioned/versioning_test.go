package versioned_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamapper/dm-is-versioned/testutil/fixtures"
	"github.com/datamapper/dm-is-versioned/versioned"
)

func Test_Configure_ErrorCases(t *testing.T) {
	tests := []struct {
		name        string
		store       versioned.VersionStore
		options     []versioned.ConfigOption
		expectedErr error
	}{
		{
			name:        "nil store",
			store:       nil,
			options:     []versioned.ConfigOption{versioned.On("updated_at")},
			expectedErr: versioned.ErrNilVersionStore,
		},
		{
			name:        "no watched fields",
			store:       &storeSpy{},
			options:     nil,
			expectedErr: versioned.ErrNoWatchedFields,
		},
		{
			name:        "unknown watched field",
			store:       &storeSpy{},
			options:     []versioned.ConfigOption{versioned.On("no_such_field")},
			expectedErr: versioned.ErrUnknownWatchedField,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := versioned.Configure(fixtures.NewStoryType(), tc.store, tc.options...)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func Test_Configure_RejectsSecondConfiguration(t *testing.T) {
	storyType := fixtures.NewStoryType()

	_, err := versioned.Configure(storyType, &storeSpy{}, versioned.On("updated_at"))
	require.NoError(t, err)

	_, err = versioned.Configure(storyType, &storeSpy{}, versioned.On("title"))
	assert.ErrorIs(t, err, versioned.ErrAlreadyConfigured)
}

func Test_Configure_IsKeyedByTypeIdentity(t *testing.T) {
	// Two Story instances are distinct entity types as far as the
	// registry is concerned, so both can be configured.
	first := fixtures.NewStoryType()
	second := fixtures.NewStoryType()

	_, err := versioned.Configure(first, &storeSpy{}, versioned.On("updated_at"))
	require.NoError(t, err)

	_, err = versioned.Configure(second, &storeSpy{}, versioned.On("updated_at"))
	require.NoError(t, err)

	firstVersioning, err := versioned.Of(first)
	require.NoError(t, err)
	secondVersioning, err := versioned.Of(second)
	require.NoError(t, err)
	assert.NotSame(t, firstVersioning, secondVersioning)
}

func Test_Of_ReturnsErrorForUnconfiguredType(t *testing.T) {
	_, err := versioned.Of(fixtures.NewStoryType())
	assert.ErrorIs(t, err, versioned.ErrNotConfigured)
}

func Test_Versioning_Accessors(t *testing.T) {
	storyType := fixtures.NewStoryType()
	store := &storeSpy{}

	versioning, err := versioned.Configure(storyType, store, versioned.On("updated_at", "title"))
	require.NoError(t, err)

	assert.Same(t, storyType, versioning.EntityType())
	assert.Equal(t, []string{"updated_at", "title"}, versioning.WatchedFields())
	assert.Same(t, store, versioning.Store().(*storeSpy))
}
