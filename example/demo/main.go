// Command demo shows the versioning lifecycle end to end with the
// in-memory engine: configure an entity type, migrate, save updates,
// and read back the captured history.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/datamapper/dm-is-versioned/versioned"
	"github.com/datamapper/dm-is-versioned/versioned/memoryengine"
	"github.com/datamapper/dm-is-versioned/versioned/slogadapters"
)

func main() {
	ctx := context.Background()
	logger := slogadapters.NewTintLogger(slog.LevelDebug)

	storyType, err := versioned.NewEntityType("Story",
		versioned.Field("id", versioned.KindSerial),
		versioned.Field("title", versioned.KindString),
		versioned.Field("body", versioned.KindString),
		versioned.Field("updated_at", versioned.KindTimestamp),
	)
	if err != nil {
		log.Fatal("defining entity type failed: ", err)
	}

	store := memoryengine.NewVersionStore(memoryengine.WithLogger(logger))

	versioning, err := versioned.Configure(storyType, store, versioned.On("updated_at"))
	if err != nil {
		log.Fatal("configuring versioning failed: ", err)
	}

	if migrateErr := versioning.AutoMigrate(ctx); migrateErr != nil {
		log.Fatal("migrating schema failed: ", migrateErr)
	}

	repo := memoryengine.NewRepository()

	story, err := memoryengine.NewRecord(storyType, map[string]any{
		"id":         int64(1),
		"title":      "A Tale of Two Databases",
		"body":       "It was the best of schemas, it was the worst of schemas.",
		"updated_at": time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		log.Fatal("building record failed: ", err)
	}

	if saveErr := repo.Save(ctx, story); saveErr != nil {
		log.Fatal("initial save failed: ", saveErr)
	}

	// The first revision: touching the watched field captures the
	// pre-change state as a version row.
	_ = story.Set("title", "A Tale of Two Schemas")
	_ = story.Set("updated_at", time.Date(2026, 8, 2, 14, 30, 0, 0, time.UTC))
	if saveErr := repo.Save(ctx, story); saveErr != nil {
		log.Fatal("second save failed: ", saveErr)
	}

	// A second revision.
	_ = story.Set("body", "It was the age of migrations.")
	_ = story.Set("updated_at", time.Date(2026, 8, 3, 8, 15, 0, 0, time.UTC))
	if saveErr := repo.Save(ctx, story); saveErr != nil {
		log.Fatal("third save failed: ", saveErr)
	}

	rows, err := versioned.Versions(ctx, story)
	if err != nil {
		log.Fatal("querying versions failed: ", err)
	}

	fmt.Printf("story has %d captured versions (newest first):\n", len(rows))
	for _, row := range rows {
		fmt.Printf("  %v: %q\n", row["updated_at"], row["title"])
	}
}
