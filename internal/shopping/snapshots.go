package shopping

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// SnapshotManager keeps named copies of the category lists. When a durable
// SnapshotStore is attached, saves and deletes are mirrored to it and loads
// fall back to it for names not seen in this session.
type SnapshotManager struct {
	snapshots map[string]types.Snapshot
	durable   types.SnapshotStore
	now       func() time.Time
}

// NewSnapshotManager returns a manager. durable may be nil.
func NewSnapshotManager(durable types.SnapshotStore) *SnapshotManager {
	return &SnapshotManager{
		snapshots: make(map[string]types.Snapshot),
		durable:   durable,
		now:       time.Now,
	}
}

// Save stores a deep copy of lists under name, silently replacing any
// snapshot with the same name.
func (m *SnapshotManager) Save(name string, lists types.Lists) (types.Snapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Snapshot{}, fmt.Errorf("%w: snapshot name is empty", types.ErrInvalidName)
	}
	cp := lists.Clone()
	snap := types.Snapshot{
		SnapshotID: generateUUID(),
		Name:       name,
		Pickup:     cp.Pickup,
		InStore:    cp.InStore,
		CreatedAt:  m.now().UTC(),
	}
	m.snapshots[name] = snap

	if m.durable != nil {
		if _, err := m.durable.Put(snap); err != nil {
			return snap, fmt.Errorf("persist snapshot %q: %w", name, err)
		}
	}
	return snap, nil
}

// Load returns copies of the lists saved under name, or ErrSnapshotNotFound.
func (m *SnapshotManager) Load(name string) (types.Lists, error) {
	name = strings.TrimSpace(name)
	if snap, ok := m.snapshots[name]; ok {
		return snap.Lists(), nil
	}
	if m.durable != nil && name != "" {
		snap, err := m.durable.Get(name)
		if err == nil {
			m.snapshots[name] = snap
			return snap.Lists(), nil
		}
		if !errors.Is(err, types.ErrSnapshotNotFound) {
			return types.Lists{}, fmt.Errorf("load snapshot %q: %w", name, err)
		}
	}
	return types.Lists{}, fmt.Errorf("%w: %q", types.ErrSnapshotNotFound, name)
}

// Delete removes name from the session and the durable store.
func (m *SnapshotManager) Delete(name string) error {
	name = strings.TrimSpace(name)
	_, inMemory := m.snapshots[name]
	delete(m.snapshots, name)

	if m.durable != nil {
		err := m.durable.Delete(name)
		if err == nil {
			return nil
		}
		if !errors.Is(err, types.ErrSnapshotNotFound) {
			return fmt.Errorf("delete snapshot %q: %w", name, err)
		}
	}
	if !inMemory {
		return fmt.Errorf("%w: %q", types.ErrSnapshotNotFound, name)
	}
	return nil
}

// Names returns every known snapshot name in ascending order. Durable store
// failures degrade to the in-session names.
func (m *SnapshotManager) Names() []string {
	seen := make(map[string]bool, len(m.snapshots))
	names := make([]string, 0, len(m.snapshots))
	for name := range m.snapshots {
		seen[name] = true
		names = append(names, name)
	}
	if m.durable != nil {
		if stored, err := m.durable.Names(); err == nil {
			for _, name := range stored {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
	}
	sort.Strings(names)
	return names
}

// generateUUID returns a UUID v7, falling back to v4 if v7 generation fails.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
