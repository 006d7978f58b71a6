package shopping

import (
	"fmt"
	"strings"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// Store owns the two ordered category lists. It is not safe for concurrent
// use; Session serializes access.
type Store struct {
	pickup  []string
	inStore []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// list returns a pointer to the backing slice for c.
func (s *Store) list(c types.Category) (*[]string, error) {
	switch c {
	case types.CategoryPickup:
		return &s.pickup, nil
	case types.CategoryInStore:
		return &s.inStore, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidCategory, c)
	}
}

// Add appends the trimmed text to c. Blank text returns ErrEmptyText and
// leaves the store unchanged.
func (s *Store) Add(c types.Category, text string) error {
	l, err := s.list(c)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return types.ErrEmptyText
	}
	*l = append(*l, text)
	return nil
}

// At returns the item at index in c.
func (s *Store) At(c types.Category, index int) (string, error) {
	l, err := s.list(c)
	if err != nil {
		return "", err
	}
	if err := checkIndex(c, index, len(*l)); err != nil {
		return "", err
	}
	return (*l)[index], nil
}

// ReplaceAt overwrites the item at index in c with the trimmed text.
func (s *Store) ReplaceAt(c types.Category, index int, text string) error {
	l, err := s.list(c)
	if err != nil {
		return err
	}
	if err := checkIndex(c, index, len(*l)); err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return types.ErrEmptyText
	}
	(*l)[index] = text
	return nil
}

// RemoveAt deletes the item at index in c, shifting later items down by one.
// An invalid index changes nothing and returns ErrIndexOutOfRange.
func (s *Store) RemoveAt(c types.Category, index int) error {
	l, err := s.list(c)
	if err != nil {
		return err
	}
	if err := checkIndex(c, index, len(*l)); err != nil {
		return err
	}
	*l = append((*l)[:index], (*l)[index+1:]...)
	return nil
}

// Len returns the number of items in c, or 0 for an unknown category.
func (s *Store) Len(c types.Category) int {
	l, err := s.list(c)
	if err != nil {
		return 0
	}
	return len(*l)
}

// Clear empties both lists.
func (s *Store) Clear() {
	s.pickup = nil
	s.inStore = nil
}

// Lists returns copies of both lists.
func (s *Store) Lists() types.Lists {
	return types.Lists{Pickup: s.pickup, InStore: s.inStore}.Clone()
}

// Replace installs copies of l as the live lists.
func (s *Store) Replace(l types.Lists) {
	cp := l.Clone()
	s.pickup = cp.Pickup
	s.inStore = cp.InStore
}

func checkIndex(c types.Category, index, n int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("%w: %s[%d] (len %d)", types.ErrIndexOutOfRange, c, index, n)
	}
	return nil
}
