package shopping

import (
	"strings"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// Controller enforces the edit/delete rules on top of a Store: at most one
// item is open for editing, plain adds are refused while an edit is open, and
// deletions at or before the cursor drop it.
type Controller struct {
	store  *Store
	cursor *types.EditCursor
}

// NewController wraps store. The controller starts Idle.
func NewController(store *Store) *Controller {
	return &Controller{store: store}
}

// Cursor returns a copy of the active cursor, or nil when Idle.
func (c *Controller) Cursor() *types.EditCursor {
	if c.cursor == nil {
		return nil
	}
	cp := *c.cursor
	return &cp
}

// Editing reports whether an edit is open.
func (c *Controller) Editing() bool {
	return c.cursor != nil
}

// Add appends text to category while Idle. Returns ErrEditInProgress without
// mutating while an edit is open.
func (c *Controller) Add(category types.Category, text string) error {
	if c.cursor != nil {
		return types.ErrEditInProgress
	}
	return c.store.Add(category, text)
}

// BeginEdit opens the item at (category, index) for editing and returns its
// current text. Any previous cursor is replaced.
func (c *Controller) BeginEdit(category types.Category, index int) (string, error) {
	text, err := c.store.At(category, index)
	if err != nil {
		return "", err
	}
	c.cursor = &types.EditCursor{Category: category, Index: index}
	return text, nil
}

// Commit writes text over the item under the cursor and returns to Idle.
// Blank text drops the edit; the cursor is cleared either way.
func (c *Controller) Commit(text string) error {
	if c.cursor == nil {
		return types.ErrNotEditing
	}
	cur := *c.cursor
	c.cursor = nil
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return c.store.ReplaceAt(cur.Category, cur.Index, text)
}

// Cancel returns to Idle without touching the store.
func (c *Controller) Cancel() {
	c.cursor = nil
}

// Delete removes the item at (category, index). When the removed index is at
// or before the cursor in the same category, the cursor no longer names the
// item it was opened on, so the controller returns to Idle.
func (c *Controller) Delete(category types.Category, index int) error {
	if err := c.store.RemoveAt(category, index); err != nil {
		return err
	}
	if c.cursor != nil && c.cursor.Category == category && index <= c.cursor.Index {
		c.cursor = nil
	}
	return nil
}

// Reset drops the cursor. Used whenever the lists are replaced wholesale.
func (c *Controller) Reset() {
	c.cursor = nil
}
