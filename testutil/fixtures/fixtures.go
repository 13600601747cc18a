// Package fixtures provides entity types used across the test suites.
//
// Each factory returns a fresh *EntityType: versioning configuration is
// keyed by entity type identity, so tests that configure versioning need
// their own instance.
package fixtures

import (
	"github.com/datamapper/dm-is-versioned/versioned"
)

// NewStoryType builds the canonical versioned fixture: a story whose
// updated_at timestamp is watched.
func NewStoryType() *versioned.EntityType {
	storyType, err := versioned.NewEntityType("Story",
		versioned.Field("id", versioned.KindSerial),
		versioned.Field("title", versioned.KindString),
		versioned.Field("body", versioned.KindString),
		versioned.Field("updated_at", versioned.KindTimestamp),
	)
	if err != nil {
		panic(err)
	}

	return storyType
}

// NewPageType builds a fixture with a discriminator, a JSON field, and a
// required option, exercising every special mapping of history derivation.
func NewPageType() *versioned.EntityType {
	pageType, err := versioned.NewEntityType("Page",
		versioned.Field("id", versioned.KindSerial),
		versioned.Field("type", versioned.KindDiscriminator),
		versioned.FieldWithOptions("path", versioned.KindString, versioned.Options{
			versioned.OptionRequired: true,
		}),
		versioned.Field("metadata", versioned.KindJSON),
		versioned.Field("revised_at", versioned.KindTimestamp),
	)
	if err != nil {
		panic(err)
	}

	return pageType
}

// StoryAttributes returns a complete attribute map for NewStoryType.
func StoryAttributes(id int64, title string, updatedAt any) map[string]any {
	return map[string]any{
		"id":         id,
		"title":      title,
		"body":       "",
		"updated_at": updatedAt,
	}
}
