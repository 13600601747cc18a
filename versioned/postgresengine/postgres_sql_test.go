package postgresengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamapper/dm-is-versioned/testutil/fixtures"
	"github.com/datamapper/dm-is-versioned/versioned"
)

func storyHistoryType(t *testing.T) *versioned.EntityType {
	t.Helper()

	versioning, err := versioned.Configure(fixtures.NewStoryType(), &VersionStore{}, versioned.On("updated_at"))
	require.NoError(t, err)

	return versioning.HistoryType()
}

func pageHistoryType(t *testing.T) *versioned.EntityType {
	t.Helper()

	versioning, err := versioned.Configure(fixtures.NewPageType(), &VersionStore{}, versioned.On("revised_at"))
	require.NoError(t, err)

	return versioning.HistoryType()
}

func Test_BuildInsertQuery_UsesDeclaredColumnOrder(t *testing.T) {
	store := &VersionStore{}
	historyType := storyHistoryType(t)

	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	sqlQuery, err := store.buildInsertQuery(historyType, fixtures.StoryAttributes(1, "A", t1))
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, `INSERT INTO "story_versions"`)
	assert.Contains(t, sqlQuery, `("id", "title", "body", "updated_at")`)
	assert.Contains(t, sqlQuery, `'A'`)
}

func Test_BuildInsertQuery_SerializesJSONColumns(t *testing.T) {
	store := &VersionStore{}
	historyType := pageHistoryType(t)

	sqlQuery, err := store.buildInsertQuery(historyType, map[string]any{
		"id":         int64(1),
		"type":       "LandingPage",
		"path":       "/welcome",
		"metadata":   map[string]any{"lang": "en"},
		"revised_at": time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, `::jsonb`)
	assert.Contains(t, sqlQuery, `"lang":"en"`)
}

func Test_BuildInsertQuery_MissingAttributesBecomeNull(t *testing.T) {
	store := &VersionStore{}
	historyType := storyHistoryType(t)

	sqlQuery, err := store.buildInsertQuery(historyType, map[string]any{"id": int64(1)})
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, "NULL")
}

func Test_BuildSelectQuery_WithoutRestrictions(t *testing.T) {
	store := &VersionStore{}
	historyType := storyHistoryType(t)

	sqlQuery, err := store.buildSelectQuery(historyType, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, `SELECT "id", "title", "body", "updated_at" FROM "story_versions"`, sqlQuery)
}

func Test_BuildSelectQuery_WithConditionsAndOrdering(t *testing.T) {
	store := &VersionStore{}
	historyType := storyHistoryType(t)

	sqlQuery, err := store.buildSelectQuery(
		historyType,
		[]versioned.Condition{versioned.Eq("id", int64(7))},
		[]versioned.Ordering{versioned.Desc("updated_at")},
	)
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, `WHERE ("id" = 7)`)
	assert.Contains(t, sqlQuery, `ORDER BY "updated_at" DESC`)
}

func Test_BuildSelectQuery_AscendingOrdering(t *testing.T) {
	store := &VersionStore{}
	historyType := storyHistoryType(t)

	sqlQuery, err := store.buildSelectQuery(historyType, nil, []versioned.Ordering{versioned.Asc("updated_at")})
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, `ORDER BY "updated_at" ASC`)
}

func Test_ConvertColumnValue(t *testing.T) {
	tests := []struct {
		name     string
		kind     versioned.FieldKind
		input    any
		expected any
	}{
		{name: "nil stays nil", kind: versioned.KindString, input: nil, expected: nil},
		{name: "string bytes become string", kind: versioned.KindString, input: []byte("A"), expected: "A"},
		{name: "int32 widens to int64", kind: versioned.KindInteger, input: int32(7), expected: int64(7)},
		{name: "int widens to int64", kind: versioned.KindInteger, input: 7, expected: int64(7)},
		{name: "int64 passes through", kind: versioned.KindInteger, input: int64(7), expected: int64(7)},
		{name: "json bytes decode", kind: versioned.KindJSON, input: []byte(`{"lang":"en"}`), expected: map[string]any{"lang": "en"}},
		{name: "json string decodes", kind: versioned.KindJSON, input: `["a","b"]`, expected: []any{"a", "b"}},
		{name: "boolean passes through", kind: versioned.KindBoolean, input: true, expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			converted, err := convertColumnValue(tc.kind, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, converted)
		})
	}
}

func Test_ConvertColumnValue_InvalidJSONFails(t *testing.T) {
	_, err := convertColumnValue(versioned.KindJSON, []byte(`{"broken":`))
	assert.Error(t, err)
}
