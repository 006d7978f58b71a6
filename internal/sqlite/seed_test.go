// Unit tests for built-in catalog seeding on backend attach.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// setupTestDB creates a temporary directory with empty JSONL files, opens a
// SQLite database in it, and applies the schema.
func setupTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()

	dataDir := t.TempDir()
	for _, name := range jsonlFiles {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), nil, 0o644))
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		_, err := db.Exec(ddl)
		require.NoError(t, err)
	}
	return db, dataDir
}

func countRows(t *testing.T, db *sql.DB, where string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM catalog "+where, args...).Scan(&n))
	return n
}

func TestSeedCatalog(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, db *sql.DB)
		check func(t *testing.T, db *sql.DB, seeded bool)
	}{
		{
			name: "empty catalog receives built-in rows",
			check: func(t *testing.T, db *sql.DB, seeded bool) {
				assert.True(t, seeded)
				assert.Equal(t, len(builtInCatalog()), countRows(t, db, ""))
				assert.Equal(t, 4, countRows(t, db, "WHERE category = ?", string(types.TagMeat)))
				assert.Equal(t, 4, countRows(t, db, "WHERE category = ?", string(types.TagVegetable)))
				assert.Equal(t, 4, countRows(t, db, "WHERE category = ?", string(types.TagSide)))
				assert.Equal(t, 0, countRows(t, db, "WHERE category = ?", string(types.TagInStore)))
			},
		},
		{
			name: "non-empty catalog is left alone",
			setup: func(t *testing.T, db *sql.DB) {
				_, err := db.Exec(
					"INSERT INTO catalog (entry_id, category, item, created_at) VALUES (?, ?, ?, ?)",
					"e-1", "InStore", "Soap", "2025-01-15T10:00:00Z",
				)
				require.NoError(t, err)
			},
			check: func(t *testing.T, db *sql.DB, seeded bool) {
				assert.False(t, seeded)
				assert.Equal(t, 1, countRows(t, db, ""))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := setupTestDB(t)
			if tt.setup != nil {
				tt.setup(t, db)
			}
			seeded, err := seedCatalog(db)
			require.NoError(t, err)
			tt.check(t, db, seeded)
		})
	}
}

func TestSeedIdempotency(t *testing.T) {
	db, _ := setupTestDB(t)

	seeded, err := seedCatalog(db)
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = seedCatalog(db)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, len(builtInCatalog()), countRows(t, db, ""))
}

func TestSeedOrderMatchesMealPlan(t *testing.T) {
	rows := builtInCatalog()
	require.Len(t, rows, 12)
	assert.Equal(t, types.CatalogEntry{Category: types.TagMeat, Item: "Chicken"}, rows[0])
	assert.Equal(t, types.CatalogEntry{Category: types.TagVegetable, Item: "Broccoli"}, rows[4])
	assert.Equal(t, types.CatalogEntry{Category: types.TagSide, Item: "Dinner Rolls"}, rows[11])
}
