// This file implements the durable snapshot store.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

var _ types.SnapshotStore = (*snapshotsTable)(nil)

type snapshotsTable struct {
	backend *Backend
}

// Put stores s under its name, replacing any snapshot already saved there.
// Missing SnapshotID and CreatedAt are filled in.
func (st *snapshotsTable) Put(s types.Snapshot) (types.Snapshot, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return types.Snapshot{}, fmt.Errorf("%w: snapshot name is empty", types.ErrInvalidName)
	}
	lists := s.Lists()
	s.Pickup, s.InStore = lists.Pickup, lists.InStore
	if s.SnapshotID == "" {
		s.SnapshotID = generateUUID()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	pickup, err := json.Marshal(s.Pickup)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("encoding pickup list: %w", err)
	}
	inStore, err := json.Marshal(s.InStore)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("encoding in-store list: %w", err)
	}

	b := st.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return types.Snapshot{}, types.ErrDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM snapshots WHERE name = ?", s.Name); err != nil {
		return types.Snapshot{}, fmt.Errorf("replacing snapshot: %w", err)
	}
	_, err = tx.Exec(
		"INSERT INTO snapshots (snapshot_id, name, pickup, in_store, created_at) VALUES (?, ?, ?, ?, ?)",
		s.SnapshotID, s.Name, string(pickup), string(inStore), s.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("inserting snapshot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return types.Snapshot{}, fmt.Errorf("committing snapshot: %w", err)
	}

	if err := st.persistLocked(); err != nil {
		return types.Snapshot{}, fmt.Errorf("persisting %s: %w", snapshotsJSONL, err)
	}
	return s, nil
}

// Get returns the snapshot saved under name.
func (st *snapshotsTable) Get(name string) (types.Snapshot, error) {
	b := st.backend
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return types.Snapshot{}, types.ErrDetached
	}

	row := b.db.QueryRow(
		"SELECT snapshot_id, name, pickup, in_store, created_at FROM snapshots WHERE name = ?",
		strings.TrimSpace(name),
	)
	s, err := hydrateSnapshot(row)
	if err == sql.ErrNoRows {
		return types.Snapshot{}, fmt.Errorf("%w: %q", types.ErrSnapshotNotFound, name)
	}
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("getting snapshot %q: %w", name, err)
	}
	return s, nil
}

// Delete removes the snapshot saved under name.
func (st *snapshotsTable) Delete(name string) error {
	b := st.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return types.ErrDetached
	}

	res, err := b.db.Exec("DELETE FROM snapshots WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("deleting snapshot %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", types.ErrSnapshotNotFound, name)
	}
	return st.persistLocked()
}

// Names returns stored snapshot names in ascending order.
func (st *snapshotsTable) Names() ([]string, error) {
	b := st.backend
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}

	rows, err := b.db.Query("SELECT name FROM snapshots ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying snapshot names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning snapshot name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// persistLocked rewrites snapshots.jsonl. The caller must hold the backend
// write lock.
func (st *snapshotsTable) persistLocked() error {
	rows, err := st.backend.db.Query(
		"SELECT snapshot_id, name, pickup, in_store, created_at FROM snapshots ORDER BY name",
	)
	if err != nil {
		return fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var all []types.Snapshot
	for rows.Next() {
		s, err := hydrateSnapshot(rows)
		if err != nil {
			return err
		}
		all = append(all, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return writeJSONL(st.backend.jsonlPath(snapshotsJSONL), all)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func hydrateSnapshot(row scanner) (types.Snapshot, error) {
	var s types.Snapshot
	var pickup, inStore, createdAt string
	if err := row.Scan(&s.SnapshotID, &s.Name, &pickup, &inStore, &createdAt); err != nil {
		return types.Snapshot{}, err
	}
	if err := json.Unmarshal([]byte(pickup), &s.Pickup); err != nil {
		return types.Snapshot{}, fmt.Errorf("decoding pickup list of %q: %w", s.Name, err)
	}
	if err := json.Unmarshal([]byte(inStore), &s.InStore); err != nil {
		return types.Snapshot{}, fmt.Errorf("decoding in-store list of %q: %w", s.Name, err)
	}
	lists := s.Lists()
	s.Pickup, s.InStore = lists.Pickup, lists.InStore
	s.CreatedAt = parseTime(createdAt)
	return s, nil
}
