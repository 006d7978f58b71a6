package types

import (
	"errors"
	"time"
)

// CatalogEntry is one row of the Reference Catalog.
type CatalogEntry struct {
	EntryID   string     `json:"entry_id"`
	Category  CatalogTag `json:"category"`
	Item      string     `json:"item"`
	CreatedAt time.Time  `json:"created_at"`
}

// Catalog is the persisted reference table. Entries are appended, never removed.
type Catalog interface {
	// Append adds a row and returns it with EntryID and CreatedAt populated.
	Append(tag CatalogTag, item string) (CatalogEntry, error)

	// Contains reports whether any row, under any tag, has exactly this item name.
	Contains(item string) (bool, error)

	// List returns rows in insertion order; an empty tag returns every row.
	List(tag CatalogTag) ([]CatalogEntry, error)
}

// MealPlan holds the options offered by the meal-plan shortcut.
type MealPlan struct {
	Meats      []string `json:"meats"`
	Vegetables []string `json:"vegetables"`
	Sides      []string `json:"sides"`
}

// Meal is one pick from each meal-plan column. Empty fields are skipped.
type Meal struct {
	Meat      string `json:"meat"`
	Vegetable string `json:"vegetable"`
	Side      string `json:"side"`
}

// ErrCatalogWrite wraps failures appending to the Reference Catalog.
var ErrCatalogWrite = errors.New("catalog write failed")

// DefaultMealPlan is the built-in meal-planning set. Storage backends seed it
// on first attach; the engine offers it when the catalog cannot be read.
var DefaultMealPlan = MealPlan{
	Meats:      []string{"Chicken", "Ground Beef", "Pork Chops", "Salmon"},
	Vegetables: []string{"Broccoli", "Green Beans", "Carrots", "Asparagus"},
	Sides:      []string{"Rice", "Potatoes", "Pasta", "Dinner Rolls"},
}
