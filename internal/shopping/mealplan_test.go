package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

func TestLoadMealPlanWithoutCatalog(t *testing.T) {
	plan, err := LoadMealPlan(nil)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultMealPlan, plan)
}

func TestLoadMealPlanFromCatalog(t *testing.T) {
	cat := &memCatalog{}
	for _, row := range []struct {
		tag  types.CatalogTag
		item string
	}{
		{types.TagMeat, "Turkey"},
		{types.TagMeat, "Steak"},
		{types.TagSide, "Quinoa"},
		{types.TagInStore, "Bananas"},
	} {
		_, err := cat.Append(row.tag, row.item)
		require.NoError(t, err)
	}

	plan, err := LoadMealPlan(cat)
	require.NoError(t, err)
	assert.Equal(t, []string{"Turkey", "Steak"}, plan.Meats)
	assert.Equal(t, types.DefaultMealPlan.Vegetables, plan.Vegetables, "empty column keeps defaults")
	assert.Equal(t, []string{"Quinoa"}, plan.Sides)
}

func TestLoadMealPlanUnreadableCatalog(t *testing.T) {
	plan, err := LoadMealPlan(&memCatalog{failList: errDiskFull})
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, types.DefaultMealPlan, plan)
}
