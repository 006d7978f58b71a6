// This file holds the schema DDL.
package sqlite

// Schema DDL. SQLite is rebuilt from the JSONL files on every Attach, so the
// schema carries no migrations.
const (
	createCatalog = `CREATE TABLE catalog (
    entry_id TEXT PRIMARY KEY,
    category TEXT NOT NULL,
    item TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createSnapshots = `CREATE TABLE snapshots (
    snapshot_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    pickup TEXT NOT NULL,
    in_store TEXT NOT NULL,
    created_at TEXT NOT NULL
);`
)

// Index DDL.
const (
	indexCatalogCategory = `CREATE INDEX idx_catalog_category ON catalog(category);`
	indexCatalogItem     = `CREATE INDEX idx_catalog_item ON catalog(item);`
)

// schemaDDL lists table creation statements in dependency order.
var schemaDDL = []string{
	createCatalog,
	createSnapshots,
}

// indexDDL lists index creation statements.
var indexDDL = []string{
	indexCatalogCategory,
	indexCatalogItem,
}
