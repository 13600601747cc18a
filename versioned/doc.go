// Package versioned adds transparent record versioning to a persistence
// layer: when a watched field of a tracked entity changes and the entity is
// updated, the pre-update attribute values are archived as an immutable
// version row, without explicit code at the mutation sites.
//
// The package defines the entity type model (field definitions with special
// discriminator and serial kinds), derives a shadow history type per
// versioned entity type, and implements a two-phase hook protocol that a
// persistence engine calls around its update pipeline:
//
//	story, _ := versioned.NewEntityType("Story",
//		versioned.Field("id", versioned.KindSerial),
//		versioned.Field("title", versioned.KindString),
//		versioned.Field("updated_at", versioned.KindTimestamp),
//	)
//
//	v, _ := versioned.Configure(story, store, versioned.On("updated_at"))
//	_ = v.AutoMigrate(ctx)
//
//	// inside the engine's save pipeline, per updated record:
//	versioned.BeforeUpdate(rec)       // stage pre-change snapshot
//	// ... engine sends the update to storage ...
//	_ = versioned.AfterUpdate(ctx, rec) // persist the version row
//
//	history, _ := versioned.Versions(ctx, rec) // newest first
//
// Storage engines implement the VersionStore interface; see the
// postgresengine and memoryengine packages for the provided ones.
//
// Known limitation: when the base update commits but writing the version row
// fails, the failure propagates to the caller and the update is NOT rolled
// back or retried. The live row is then ahead of its history until the next
// watched change. Callers that cannot accept this window must wrap the save
// and the version write in one storage transaction themselves.
package versioned
