package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

func TestView(t *testing.T) {
	tests := []struct {
		name  string
		view  types.View
		check func(t *testing.T, out string)
	}{
		{
			name: "empty lists show captions",
			view: types.View{},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, Title)
				assert.Contains(t, out, "Pickup Items")
				assert.Contains(t, out, "In-Store Items")
				assert.Contains(t, out, "No pickup items yet.")
				assert.Contains(t, out, "No in-store items yet.")
			},
		},
		{
			name: "items are numbered per category",
			view: types.View{Pickup: []string{"Milk", "Eggs"}, InStore: []string{"Bananas"}},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "1. Milk")
				assert.Contains(t, out, "2. Eggs")
				assert.Contains(t, out, "1. Bananas")
				assert.NotContains(t, out, "No pickup items yet.")
			},
		},
		{
			name: "edited item and aisles are marked",
			view: types.View{
				InStore: []string{"Bananas", "Chicken"},
				Editing: &types.EditCursor{Category: types.CategoryInStore, Index: 1},
				Aisles:  map[string]string{"Bananas": "Produce"},
			},
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "1. Bananas [Produce]")
				assert.Contains(t, out, "> 2. Chicken (editing)")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, View(tt.view, 0))
		})
	}
}

func TestListsMarkdown(t *testing.T) {
	md := ListsMarkdown("Trip", types.Lists{Pickup: []string{"Milk"}})
	assert.True(t, strings.HasPrefix(md, "# Trip\n"))
	assert.Contains(t, md, "## Pickup Items\n\n- Milk\n")
	assert.Contains(t, md, "_No in-store items yet._")
}

func TestSnapshotMarkdown(t *testing.T) {
	s := types.Snapshot{
		Name:      "weekly",
		InStore:   []string{"Bread"},
		CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	md := SnapshotMarkdown(s)
	assert.Contains(t, md, "# Snapshot: weekly")
	assert.Contains(t, md, "- Bread")
	assert.Contains(t, md, "Saved ")
}

func TestMealPlanMarkdown(t *testing.T) {
	md := MealPlanMarkdown(types.DefaultMealPlan)
	for _, want := range []string{"## Meat", "- Salmon", "## Vegetable", "- Asparagus", "## Side", "- Dinner Rolls"} {
		assert.Contains(t, md, want)
	}
}

func TestAislesMarkdown(t *testing.T) {
	assert.Empty(t, AislesMarkdown(nil))
	md := AislesMarkdown(map[string]string{"Milk": "A1", "Bread": "B2"})
	assert.Less(t, strings.Index(md, "Bread"), strings.Index(md, "Milk"))
}

func TestMarkdown(t *testing.T) {
	assert.Empty(t, Markdown("  ", "notty"))
	out := Markdown(ListsMarkdown("Trip", types.Lists{Pickup: []string{"Milk"}}), "notty")
	assert.Contains(t, out, "Milk")
	assert.Contains(t, out, "Pickup Items")
}
