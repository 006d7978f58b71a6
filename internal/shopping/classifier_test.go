package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

func TestClassifyDefaults(t *testing.T) {
	c := NewClassifier(nil)
	tests := []struct {
		text string
		want types.Category
	}{
		{"Milk", types.CategoryPickup},
		{"2% milk", types.CategoryPickup},
		{"EGGS", types.CategoryPickup},
		{"Sourdough Bread", types.CategoryPickup},
		{"peanut butter", types.CategoryPickup},
		{"Orange Juice", types.CategoryPickup},
		{"Bananas", types.CategoryInStore},
		{"Chicken", types.CategoryInStore},
		{"", types.CategoryInStore},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestClassifyInjectedKeywords(t *testing.T) {
	c := NewClassifier([]string{" Coffee ", "", "TEA"})
	assert.Equal(t, []string{"coffee", "tea"}, c.Keywords())
	assert.Equal(t, types.CategoryPickup, c.Classify("Green Tea"))
	assert.Equal(t, types.CategoryInStore, c.Classify("Milk"), "defaults are replaced, not extended")
}

func TestClassifyBlankKeywordsFallBack(t *testing.T) {
	c := NewClassifier([]string{" ", ""})
	assert.Equal(t, DefaultPickupKeywords, c.Keywords())
}
