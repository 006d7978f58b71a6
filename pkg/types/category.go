package types

import (
	"fmt"
	"strings"
)

// Category is the acquisition channel an item belongs to.
type Category string

// The two shopping categories. The set is fixed.
const (
	CategoryPickup  Category = "Pickup"
	CategoryInStore Category = "InStore"
)

// Categories lists the shopping categories in display order.
var Categories = []Category{CategoryPickup, CategoryInStore}

// IsValid reports whether c is one of the two shopping categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPickup, CategoryInStore:
		return true
	default:
		return false
	}
}

// Label returns the human-facing name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryPickup:
		return "Pickup"
	case CategoryInStore:
		return "In-Store"
	default:
		return string(c)
	}
}

// ParseCategory accepts the canonical names plus the spellings UIs tend to send
// ("pickup", "in-store", "in store", "instore"). Matching ignores case.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "pickup", "p":
		return CategoryPickup, nil
	case "instore", "store", "i", "s":
		return CategoryInStore, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}

// CatalogTag classifies Reference Catalog rows. Meat, Vegetable and Side feed
// the meal-plan shortcut; InStore marks names accumulated from imports.
type CatalogTag string

// Catalog tags.
const (
	TagMeat      CatalogTag = "Meat"
	TagVegetable CatalogTag = "Vegetable"
	TagSide      CatalogTag = "Side"
	TagInStore   CatalogTag = "InStore"
)

// IsValid reports whether t is a known catalog tag.
func (t CatalogTag) IsValid() bool {
	switch t {
	case TagMeat, TagVegetable, TagSide, TagInStore:
		return true
	default:
		return false
	}
}

// ParseCatalogTag matches a tag name ignoring case.
func ParseCatalogTag(s string) (CatalogTag, error) {
	for _, t := range []CatalogTag{TagMeat, TagVegetable, TagSide, TagInStore} {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}
