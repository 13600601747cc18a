package versioned_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamapper/dm-is-versioned/versioned"
)

func Test_NewEntityType_ErrorCases(t *testing.T) {
	tests := []struct {
		name        string
		typeName    string
		fields      []versioned.FieldDefinition
		expectedErr error
	}{
		{
			name:        "empty name",
			typeName:    "",
			fields:      []versioned.FieldDefinition{versioned.Field("id", versioned.KindSerial)},
			expectedErr: versioned.ErrEmptyEntityTypeName,
		},
		{
			name:        "no fields",
			typeName:    "Story",
			fields:      nil,
			expectedErr: versioned.ErrNoFieldDefinitions,
		},
		{
			name:     "duplicate field name",
			typeName: "Story",
			fields: []versioned.FieldDefinition{
				versioned.Field("id", versioned.KindSerial),
				versioned.Field("title", versioned.KindString),
				versioned.Field("title", versioned.KindString),
			},
			expectedErr: versioned.ErrDuplicateFieldName,
		},
		{
			name:     "no key fields",
			typeName: "Story",
			fields: []versioned.FieldDefinition{
				versioned.Field("title", versioned.KindString),
			},
			expectedErr: versioned.ErrNoKeyFields,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := versioned.NewEntityType(tc.typeName, tc.fields...)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func Test_NewEntityType_DerivesTableName(t *testing.T) {
	storyType, err := versioned.NewEntityType("Story", versioned.Field("id", versioned.KindSerial))
	require.NoError(t, err)
	assert.Equal(t, "stories", storyType.TableName())

	postType, err := versioned.NewEntityType("BlogPost", versioned.Field("id", versioned.KindSerial))
	require.NoError(t, err)
	assert.Equal(t, "blog_posts", postType.TableName())
}

func Test_EntityType_Accessors(t *testing.T) {
	entityType, err := versioned.NewEntityType("Page",
		versioned.Field("id", versioned.KindSerial),
		versioned.Field("type", versioned.KindDiscriminator),
		versioned.FieldWithOptions("path", versioned.KindString, versioned.Options{
			versioned.OptionKey: true,
		}),
		versioned.Field("revised_at", versioned.KindTimestamp),
	)
	require.NoError(t, err)

	assert.Equal(t, "Page", entityType.Name())
	assert.Equal(t, []string{"id", "type", "path", "revised_at"}, entityType.FieldNames())

	field, ok := entityType.Field("path")
	require.True(t, ok)
	assert.Equal(t, versioned.KindString, field.Kind)
	assert.True(t, field.IsKey())

	_, ok = entityType.Field("missing")
	assert.False(t, ok)

	keyFields := entityType.KeyFields()
	require.Len(t, keyFields, 2)
	assert.Equal(t, "id", keyFields[0].Name)
	assert.Equal(t, "path", keyFields[1].Name)

	serial, ok := entityType.SerialField()
	require.True(t, ok)
	assert.Equal(t, "id", serial.Name)

	discriminator, ok := entityType.DiscriminatorField()
	require.True(t, ok)
	assert.Equal(t, "type", discriminator.Name)
}

func Test_EntityType_FieldsReturnsCopy(t *testing.T) {
	entityType, err := versioned.NewEntityType("Story",
		versioned.Field("id", versioned.KindSerial),
		versioned.Field("title", versioned.KindString),
	)
	require.NoError(t, err)

	fields := entityType.Fields()
	fields[1].Name = "mutated"

	assert.Equal(t, []string{"id", "title"}, entityType.FieldNames())
}

func Test_FieldDefinition_SerialIsAlwaysKey(t *testing.T) {
	field := versioned.Field("id", versioned.KindSerial)

	assert.True(t, field.IsKey())
	assert.True(t, field.IsSerial())
}
