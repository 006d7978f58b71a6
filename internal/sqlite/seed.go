// This file seeds the built-in meal-planning catalog on first attach.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// builtInCatalog returns the rows seeded into an empty catalog, in the order
// the meal-plan shortcut shows them.
func builtInCatalog() []types.CatalogEntry {
	var rows []types.CatalogEntry
	add := func(tag types.CatalogTag, items []string) {
		for _, item := range items {
			rows = append(rows, types.CatalogEntry{Category: tag, Item: item})
		}
	}
	add(types.TagMeat, types.DefaultMealPlan.Meats)
	add(types.TagVegetable, types.DefaultMealPlan.Vegetables)
	add(types.TagSide, types.DefaultMealPlan.Sides)
	return rows
}

// seedCatalog inserts the built-in rows when the catalog table is empty.
// Returns true if rows were inserted, so the caller can persist them.
func seedCatalog(db *sql.DB) (bool, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM catalog").Scan(&count); err != nil {
		return false, fmt.Errorf("counting catalog rows: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, row := range builtInCatalog() {
		_, err := tx.Exec(
			"INSERT INTO catalog (entry_id, category, item, created_at) VALUES (?, ?, ?, ?)",
			generateUUID(), string(row.Category), row.Item, now,
		)
		if err != nil {
			return false, fmt.Errorf("seeding %s %q: %w", row.Category, row.Item, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing seed transaction: %w", err)
	}
	return true, nil
}
