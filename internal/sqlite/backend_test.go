// Tests for the SQLite backend: attach lifecycle, catalog and snapshot tables.
package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

func attachTemp(t *testing.T) (*Backend, string) {
	t.Helper()
	dir := t.TempDir()
	b := NewBackend()
	if err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { b.Detach() })
	return b, dir
}

func TestBackend_Attach(t *testing.T) {
	b, dir := attachTemp(t)

	if _, err := os.Stat(filepath.Join(dir, dbFileName)); os.IsNotExist(err) {
		t.Errorf("%s not created", dbFileName)
	}

	err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	if err != types.ErrAlreadyAttached {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}
}

func TestBackend_AttachInvalidConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	if !errors.Is(err, types.ErrBackendUnknown) {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
	if _, err := b.Catalog(); err != types.ErrDetached {
		t.Errorf("expected ErrDetached after failed attach, got %v", err)
	}
}

func TestBackend_Detach(t *testing.T) {
	b, _ := attachTemp(t)
	cat, _ := b.Catalog()

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	if _, err := b.Catalog(); err != types.ErrDetached {
		t.Errorf("expected ErrDetached, got %v", err)
	}
	if _, err := b.Snapshots(); err != types.ErrDetached {
		t.Errorf("expected ErrDetached, got %v", err)
	}
	if _, err := cat.Contains("Rice"); err != types.ErrDetached {
		t.Errorf("expected ErrDetached from stale handle, got %v", err)
	}
}

func TestCatalogTable_Seeded(t *testing.T) {
	b, _ := attachTemp(t)
	cat, err := b.Catalog()
	if err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}

	meats, err := cat.List(types.TagMeat)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(meats) != len(types.DefaultMealPlan.Meats) {
		t.Fatalf("expected %d meats, got %d", len(types.DefaultMealPlan.Meats), len(meats))
	}
	for i, m := range meats {
		if m.Item != types.DefaultMealPlan.Meats[i] {
			t.Errorf("meat %d: expected %q, got %q", i, types.DefaultMealPlan.Meats[i], m.Item)
		}
	}

	ok, err := cat.Contains("Broccoli")
	if err != nil || !ok {
		t.Errorf("expected Broccoli in catalog, got %v, %v", ok, err)
	}
}

func TestCatalogTable_Append(t *testing.T) {
	b, _ := attachTemp(t)
	cat, _ := b.Catalog()

	entry, err := cat.Append(types.TagInStore, "  Paper Towels ")
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if entry.EntryID == "" || entry.Item != "Paper Towels" || entry.CreatedAt.IsZero() {
		t.Errorf("unexpected entry %+v", entry)
	}

	ok, _ := cat.Contains("Paper Towels")
	if !ok {
		t.Error("expected appended item to be found")
	}
	ok, _ = cat.Contains("paper towels")
	if ok {
		t.Error("membership should be case sensitive")
	}

	rows, _ := cat.List(types.TagInStore)
	if len(rows) != 1 {
		t.Errorf("expected 1 InStore row, got %d", len(rows))
	}

	if _, err := cat.Append("Dessert", "Cake"); !errors.Is(err, types.ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
	if _, err := cat.Append(types.TagSide, "   "); !errors.Is(err, types.ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
}

func TestSnapshotsTable_CRUD(t *testing.T) {
	b, _ := attachTemp(t)
	st, err := b.Snapshots()
	if err != nil {
		t.Fatalf("Snapshots failed: %v", err)
	}

	saved, err := st.Put(types.Snapshot{Name: "weekly", Pickup: []string{"Milk"}})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if saved.SnapshotID == "" || saved.CreatedAt.IsZero() {
		t.Errorf("expected id and timestamp, got %+v", saved)
	}
	if saved.InStore == nil {
		t.Error("nil list should be stored as empty")
	}

	got, err := st.Get("weekly")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Pickup) != 1 || got.Pickup[0] != "Milk" || len(got.InStore) != 0 {
		t.Errorf("unexpected snapshot %+v", got)
	}

	// Saving under the same name overwrites.
	if _, err := st.Put(types.Snapshot{Name: "weekly", InStore: []string{"Bread"}}); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}
	got, _ = st.Get("weekly")
	if len(got.Pickup) != 0 || len(got.InStore) != 1 {
		t.Errorf("expected overwrite, got %+v", got)
	}

	st.Put(types.Snapshot{Name: "alpha"})
	names, _ := st.Names()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "weekly" {
		t.Errorf("expected [alpha weekly], got %v", names)
	}

	if err := st.Delete("weekly"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := st.Get("weekly"); !errors.Is(err, types.ErrSnapshotNotFound) {
		t.Errorf("expected ErrSnapshotNotFound, got %v", err)
	}
	if err := st.Delete("weekly"); !errors.Is(err, types.ErrSnapshotNotFound) {
		t.Errorf("expected ErrSnapshotNotFound on second delete, got %v", err)
	}
	if _, err := st.Put(types.Snapshot{Name: " "}); !errors.Is(err, types.ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestSnapshotsTable_CopiesOnTheWayOut(t *testing.T) {
	b, _ := attachTemp(t)
	st, _ := b.Snapshots()
	st.Put(types.Snapshot{Name: "s", Pickup: []string{"Eggs"}})

	first, _ := st.Get("s")
	first.Pickup[0] = "changed"

	second, _ := st.Get("s")
	if second.Pickup[0] != "Eggs" {
		t.Errorf("stored snapshot mutated through returned copy: %v", second.Pickup)
	}
}
