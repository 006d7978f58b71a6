package types

import "errors"

// EditCursor identifies the single item currently open for editing.
type EditCursor struct {
	Category Category `json:"category"`
	Index    int      `json:"index"`
}

// View is the read-only state handed back to the UI layer after every command.
// All slices and maps are copies; mutating them never affects the engine.
type View struct {
	Pickup  []string          `json:"pickup"`
	InStore []string          `json:"in_store"`
	Editing *EditCursor       `json:"editing,omitempty"`
	Draft   string            `json:"draft,omitempty"` // text of the item under edit
	Aisles  map[string]string `json:"aisles,omitempty"`
}

// Items returns the list for c, or nil for an unknown category.
func (v View) Items(c Category) []string {
	switch c {
	case CategoryPickup:
		return v.Pickup
	case CategoryInStore:
		return v.InStore
	default:
		return nil
	}
}

// Len returns the total number of items across both categories.
func (v View) Len() int {
	return len(v.Pickup) + len(v.InStore)
}

// Lists is a pair of category lists, the unit that snapshots capture.
type Lists struct {
	Pickup  []string `json:"pickup"`
	InStore []string `json:"in_store"`
}

// Items returns the list for c, or nil for an unknown category.
func (l Lists) Items(c Category) []string {
	switch c {
	case CategoryPickup:
		return l.Pickup
	case CategoryInStore:
		return l.InStore
	default:
		return nil
	}
}

// Clone returns a deep copy. Nil lists become empty, non-nil slices.
func (l Lists) Clone() Lists {
	return Lists{
		Pickup:  append([]string{}, l.Pickup...),
		InStore: append([]string{}, l.InStore...),
	}
}

// Item list errors.
var (
	// ErrEmptyText is a validation error; UI layers treat it as a silent no-op.
	ErrEmptyText       = errors.New("item text is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidCategory = errors.New("invalid category")
	ErrEditInProgress  = errors.New("an edit is in progress")
	ErrNotEditing      = errors.New("no edit in progress")
)
