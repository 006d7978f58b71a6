// Package sqlite implements the SQLite storage backend for shoplist: the
// Reference Catalog and the durable snapshot store.
//
// JSONL files in DataDir are the source of truth. SQLite is the query engine,
// rebuilt from those files on every Attach; each write updates SQLite and then
// rewrites the affected JSONL file atomically.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// dbFileName is the SQLite file created inside DataDir.
const dbFileName = "shoplist.db"

var _ types.Pantry = (*Backend)(nil)

// Backend implements types.Pantry on SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	catalog   *catalogTable
	snapshots *snapshotsTable
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach validates config, creates DataDir if needed, rebuilds the database
// from the JSONL files, and seeds the built-in catalog on first run.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// The database is derived state; start from a fresh file.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	// One connection keeps JSONL rewrites and SQLite writes in step.
	db.SetMaxOpenConns(1)

	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if err := initJSONLFiles(dataDir); err != nil {
		db.Close()
		return err
	}
	if err := loadAllJSONL(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.config.DataDir = dataDir
	b.catalog = &catalogTable{backend: b}
	b.snapshots = &snapshotsTable{backend: b}

	seeded, err := seedCatalog(db)
	if err != nil {
		db.Close()
		return err
	}
	if seeded {
		if err := b.catalog.persistLocked(); err != nil {
			db.Close()
			return fmt.Errorf("persist seeded catalog: %w", err)
		}
	}

	b.attached = true
	return nil
}

// Detach closes the database. Idempotent. After Detach, Catalog and Snapshots
// return ErrDetached and existing table handles fail the same way.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	return nil
}

// Catalog returns the Reference Catalog.
func (b *Backend) Catalog() (types.Catalog, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.catalog, nil
}

// Snapshots returns the durable snapshot store.
func (b *Backend) Snapshots() (types.SnapshotStore, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrDetached
	}
	return b.snapshots, nil
}

// DataDir returns the resolved data directory of an attached backend.
func (b *Backend) DataDir() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config.DataDir
}

// jsonlPath returns the path of a JSONL file in the data directory.
// The caller must hold b.mu.
func (b *Backend) jsonlPath(name string) string {
	return filepath.Join(b.config.DataDir, name)
}

// generateUUID generates a new UUID v7 for entity IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
