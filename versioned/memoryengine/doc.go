// Package memoryengine provides an in-memory implementation of the
// versioned.VersionStore interface together with a minimal persistence
// engine (Record, Repository) that drives the versioning hook protocol.
//
// It exists so the complete staging/commit data flow can be exercised and
// tested without a live database, and serves as the reference for how a
// persistence engine integrates the hooks into its save pipeline.
package memoryengine
