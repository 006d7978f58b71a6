// Package types defines the shopping-list entities, the collaborator interfaces
// the engine depends on (Pantry, Catalog, SnapshotStore, AisleLookup), and the
// standard error values shared by every layer.
//
// Storage backends implement Pantry; the engine in internal/shopping only sees
// these interfaces so it can run against in-memory fakes in tests.
package types
