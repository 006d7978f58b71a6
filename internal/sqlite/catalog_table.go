// This file implements the Reference Catalog table.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

var _ types.Catalog = (*catalogTable)(nil)

type catalogTable struct {
	backend *Backend
}

// Append inserts a row and rewrites catalog.jsonl.
func (ct *catalogTable) Append(tag types.CatalogTag, item string) (types.CatalogEntry, error) {
	if !tag.IsValid() {
		return types.CatalogEntry{}, fmt.Errorf("%w: %q", types.ErrInvalidCategory, tag)
	}
	item = strings.TrimSpace(item)
	if item == "" {
		return types.CatalogEntry{}, types.ErrEmptyText
	}

	b := ct.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return types.CatalogEntry{}, types.ErrDetached
	}

	entry := types.CatalogEntry{
		EntryID:   generateUUID(),
		Category:  tag,
		Item:      item,
		CreatedAt: time.Now().UTC(),
	}
	_, err := b.db.Exec(
		"INSERT INTO catalog (entry_id, category, item, created_at) VALUES (?, ?, ?, ?)",
		entry.EntryID, string(entry.Category), entry.Item, entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return types.CatalogEntry{}, fmt.Errorf("inserting catalog entry: %w", err)
	}

	if err := ct.persistLocked(); err != nil {
		return types.CatalogEntry{}, fmt.Errorf("persisting %s: %w", catalogJSONL, err)
	}
	return entry, nil
}

// Contains reports whether item appears under any tag. Matching is exact.
func (ct *catalogTable) Contains(item string) (bool, error) {
	b := ct.backend
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return false, types.ErrDetached
	}

	var one int
	err := b.db.QueryRow("SELECT 1 FROM catalog WHERE item = ? LIMIT 1", strings.TrimSpace(item)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking catalog item: %w", err)
	}
	return true, nil
}

// List returns rows in insertion order. An empty tag returns every row.
func (ct *catalogTable) List(tag types.CatalogTag) ([]types.CatalogEntry, error) {
	b := ct.backend
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}
	return ct.listLocked(tag)
}

func (ct *catalogTable) listLocked(tag types.CatalogTag) ([]types.CatalogEntry, error) {
	query := "SELECT entry_id, category, item, created_at FROM catalog"
	var args []any
	if tag != "" {
		query += " WHERE category = ?"
		args = append(args, string(tag))
	}
	query += " ORDER BY rowid"

	rows, err := ct.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	entries := []types.CatalogEntry{}
	for rows.Next() {
		var e types.CatalogEntry
		var category, createdAt string
		if err := rows.Scan(&e.EntryID, &category, &e.Item, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		e.Category = types.CatalogTag(category)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// persistLocked rewrites catalog.jsonl from the table. The caller must hold
// the backend write lock (or be inside Attach).
func (ct *catalogTable) persistLocked() error {
	entries, err := ct.listLocked("")
	if err != nil {
		return err
	}
	return writeJSONL(ct.backend.jsonlPath(catalogJSONL), entries)
}

// parseTime parses a stored timestamp, returning the zero time when the value
// is not RFC 3339.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
