package shopping

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// memCatalog is an in-memory types.Catalog.
type memCatalog struct {
	mu         sync.Mutex
	entries    []types.CatalogEntry
	failAppend error
	failList   error
}

func (c *memCatalog) Append(tag types.CatalogTag, item string) (types.CatalogEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failAppend != nil {
		return types.CatalogEntry{}, c.failAppend
	}
	e := types.CatalogEntry{EntryID: generateUUID(), Category: tag, Item: item, CreatedAt: time.Now()}
	c.entries = append(c.entries, e)
	return e, nil
}

func (c *memCatalog) Contains(item string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.Item == item {
			return true, nil
		}
	}
	return false, nil
}

func (c *memCatalog) List(tag types.CatalogTag) ([]types.CatalogEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failList != nil {
		return nil, c.failList
	}
	var out []types.CatalogEntry
	for _, e := range c.entries {
		if tag == "" || e.Category == tag {
			out = append(out, e)
		}
	}
	return out, nil
}

// memSnapshots is an in-memory types.SnapshotStore.
type memSnapshots struct {
	byName map[string]types.Snapshot
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{byName: make(map[string]types.Snapshot)}
}

func (m *memSnapshots) Put(s types.Snapshot) (types.Snapshot, error) {
	l := s.Lists()
	s.Pickup, s.InStore = l.Pickup, l.InStore
	m.byName[s.Name] = s
	return s, nil
}

func (m *memSnapshots) Get(name string) (types.Snapshot, error) {
	s, ok := m.byName[name]
	if !ok {
		return types.Snapshot{}, types.ErrSnapshotNotFound
	}
	return s, nil
}

func (m *memSnapshots) Delete(name string) error {
	if _, ok := m.byName[name]; !ok {
		return types.ErrSnapshotNotFound
	}
	delete(m.byName, name)
	return nil
}

func (m *memSnapshots) Names() ([]string, error) {
	names := make([]string, 0, len(m.byName))
	for n := range m.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// staticAisles answers from a fixed table.
type staticAisles map[string]string

func (s staticAisles) Lookup(_ context.Context, item string) (string, bool) {
	a, ok := s[item]
	return a, ok
}

// gatedAisles blocks every lookup until release is closed or ctx ends.
type gatedAisles struct {
	started chan struct{}
	release chan struct{}
}

func (g *gatedAisles) Lookup(ctx context.Context, item string) (string, bool) {
	close(g.started)
	select {
	case <-g.release:
		return "Aisle 7", true
	case <-ctx.Done():
		return "", false
	}
}

var errDiskFull = errors.New("disk full")
