// Package sqlite exposes the SQLite storage backend for shoplist while keeping
// its implementation internal.
package sqlite

import (
	"github.com/Redwards2/MeijerShoppingList/internal/sqlite"
	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	pantry := sqlite.NewBackend()
//	err := pantry.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".shoplist-db",
//	})
//	defer pantry.Detach()
//	catalog, err := pantry.Catalog()
func NewBackend() types.Pantry {
	return sqlite.NewBackend()
}
