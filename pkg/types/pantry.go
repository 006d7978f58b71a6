package types

import "errors"

// Pantry is the backend-agnostic persistence handle. Callers attach to a
// backend, use the Catalog and SnapshotStore it exposes, and detach when done.
type Pantry interface {
	// Attach connects to the backend described by config. Creates DataDir if
	// it does not exist. Returns ErrAlreadyAttached if already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent.
	Detach() error

	// Catalog returns the Reference Catalog, or ErrDetached.
	Catalog() (Catalog, error)

	// Snapshots returns the durable snapshot store, or ErrDetached.
	Snapshots() (SnapshotStore, error)
}

// Pantry lifecycle errors.
var (
	ErrDetached        = errors.New("pantry is detached")
	ErrAlreadyAttached = errors.New("pantry is already attached")
)
