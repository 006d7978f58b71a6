package shopping

import (
	"strings"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// DefaultPickupKeywords are the substrings that route an item to Pickup when
// no keyword set is configured.
var DefaultPickupKeywords = []string{"milk", "eggs", "bread", "butter", "juice"}

// Classifier maps free text to a category by keyword substring match.
type Classifier struct {
	keywords []string
}

// NewClassifier builds a classifier from keywords. Keywords are lower-cased and
// blanks dropped; an empty set falls back to DefaultPickupKeywords.
func NewClassifier(keywords []string) *Classifier {
	c := &Classifier{}
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			c.keywords = append(c.keywords, k)
		}
	}
	if len(c.keywords) == 0 {
		c.keywords = append([]string{}, DefaultPickupKeywords...)
	}
	return c
}

// Classify returns CategoryPickup if any keyword occurs in the lower-cased
// text, otherwise CategoryInStore.
func (c *Classifier) Classify(text string) types.Category {
	lower := strings.ToLower(text)
	for _, k := range c.keywords {
		if strings.Contains(lower, k) {
			return types.CategoryPickup
		}
	}
	return types.CategoryInStore
}

// Keywords returns a copy of the configured keyword set.
func (c *Classifier) Keywords() []string {
	return append([]string{}, c.keywords...)
}
