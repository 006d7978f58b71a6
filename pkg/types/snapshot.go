package types

import (
	"errors"
	"time"
)

// Snapshot is a named, point-in-time copy of both category lists.
type Snapshot struct {
	// SnapshotID is a UUID v7 assigned when the snapshot is first stored.
	SnapshotID string `json:"snapshot_id"`

	// Name is the user-chosen key. Saving under an existing name overwrites.
	Name string `json:"name"`

	Pickup  []string `json:"pickup"`
	InStore []string `json:"in_store"`

	CreatedAt time.Time `json:"created_at"`
}

// Lists returns copies of the captured lists.
func (s Snapshot) Lists() Lists {
	return Lists{Pickup: s.Pickup, InStore: s.InStore}.Clone()
}

// SnapshotStore is the durable mirror for snapshots. Implementations must copy
// on the way in and on the way out.
type SnapshotStore interface {
	// Put stores s under s.Name, replacing any snapshot with that name.
	Put(s Snapshot) (Snapshot, error)

	// Get returns ErrSnapshotNotFound if no snapshot has that name.
	Get(name string) (Snapshot, error)

	// Delete returns ErrSnapshotNotFound if no snapshot has that name.
	Delete(name string) error

	// Names returns snapshot names in ascending order.
	Names() ([]string, error)
}

// Snapshot errors.
var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrInvalidName      = errors.New("invalid name")
)
