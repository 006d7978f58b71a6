package types

import (
	"context"
	"errors"
)

// AisleLookup resolves an item name to a human-readable aisle description.
// ok is false whenever no aisle could be determined, for any reason.
type AisleLookup interface {
	Lookup(ctx context.Context, item string) (aisle string, ok bool)
}

// ErrEnrichmentUnavailable marks aisle lookup failures. It never crosses the
// AisleLookup boundary; clients log it and report "no result".
var ErrEnrichmentUnavailable = errors.New("aisle enrichment unavailable")
