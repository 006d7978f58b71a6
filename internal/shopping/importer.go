package shopping

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// ImportResult summarizes one bulk import.
type ImportResult struct {
	Imported     int `json:"imported"`
	Pickup       int `json:"pickup"`
	InStore      int `json:"in_store"`
	CatalogAdded int `json:"catalog_added"`
}

// SplitItems splits pasted text on commas and newlines, trims every token and
// drops the empty ones. Order is preserved.
func SplitItems(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	items := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			items = append(items, f)
		}
	}
	return items
}

// Importer routes bulk text through the classifier into a Store and records
// unseen names in the Reference Catalog.
type Importer struct {
	classifier *Classifier
	catalog    types.Catalog
	logger     *slog.Logger
}

// NewImporter returns an importer. catalog may be nil, in which case the
// catalog side effect is skipped.
func NewImporter(classifier *Classifier, catalog types.Catalog, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{classifier: classifier, catalog: catalog, logger: logger}
}

// Import appends every token in raw to store, then records unseen tokens in
// the catalog under TagInStore. Catalog failures are returned wrapped in
// ErrCatalogWrite; items already added to store stay added.
func (im *Importer) Import(store *Store, raw string) (ImportResult, error) {
	var res ImportResult
	tokens := SplitItems(raw)
	for _, tok := range tokens {
		c := im.classifier.Classify(tok)
		if err := store.Add(c, tok); err != nil {
			return res, err
		}
		res.Imported++
		if c == types.CategoryPickup {
			res.Pickup++
		} else {
			res.InStore++
		}
	}

	if im.catalog == nil || len(tokens) == 0 {
		return res, nil
	}

	var errs []error
	for _, tok := range tokens {
		known, err := im.catalog.Contains(tok)
		if err != nil {
			errs = append(errs, fmt.Errorf("lookup %q: %w", tok, err))
			continue
		}
		if known {
			continue
		}
		if _, err := im.catalog.Append(types.TagInStore, tok); err != nil {
			errs = append(errs, fmt.Errorf("append %q: %w", tok, err))
			continue
		}
		res.CatalogAdded++
	}
	if len(errs) > 0 {
		im.logger.Warn("catalog update incomplete", "failed", len(errs), "imported", res.Imported)
		return res, fmt.Errorf("%w: %w", types.ErrCatalogWrite, errors.Join(errs...))
	}
	return res, nil
}
