package memoryengine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamapper/dm-is-versioned/testutil/fixtures"
	"github.com/datamapper/dm-is-versioned/versioned/memoryengine"
)

func Test_NewRecord_RejectsUnknownFields(t *testing.T) {
	_, err := memoryengine.NewRecord(fixtures.NewStoryType(), map[string]any{
		"no_such_field": "value",
	})

	assert.ErrorIs(t, err, memoryengine.ErrUnknownField)
}

func Test_Record_SetAndGet(t *testing.T) {
	rec, err := memoryengine.NewRecord(fixtures.NewStoryType(), nil)
	require.NoError(t, err)

	require.NoError(t, rec.Set("title", "A"))
	assert.Equal(t, "A", rec.Get("title"))

	assert.ErrorIs(t, rec.Set("no_such_field", "x"), memoryengine.ErrUnknownField)
}

func Test_Record_NewRecordHasNoChanges(t *testing.T) {
	rec, err := memoryengine.NewRecord(fixtures.NewStoryType(), map[string]any{
		"id":    int64(1),
		"title": "A",
	})
	require.NoError(t, err)

	assert.True(t, rec.IsNew())
	assert.False(t, rec.Clean())
	assert.Empty(t, rec.ChangeSet())
}

func Test_Record_ChangeSetTracksDirtyFields(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	repo := memoryengine.NewRepository()

	rec, err := memoryengine.NewRecord(fixtures.NewStoryType(), fixtures.StoryAttributes(1, "A", t1))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), rec))

	assert.False(t, rec.IsNew())
	assert.True(t, rec.Clean())
	assert.Empty(t, rec.ChangeSet())

	require.NoError(t, rec.Set("title", "B"))

	assert.False(t, rec.Clean())
	assert.Equal(t, map[string]any{"title": "B"}, rec.ChangeSet())
	assert.Equal(t, "A", rec.OriginalAttributes()["title"])
	assert.Equal(t, "B", rec.Attributes()["title"])
}

func Test_Record_AttributeMapsAreSnapshots(t *testing.T) {
	rec, err := memoryengine.NewRecord(fixtures.NewStoryType(), map[string]any{
		"id":    int64(1),
		"title": "A",
	})
	require.NoError(t, err)

	attributes := rec.Attributes()
	attributes["title"] = "mutated"

	assert.Equal(t, "A", rec.Get("title"))
}
