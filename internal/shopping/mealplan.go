package shopping

import (
	"fmt"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// LoadMealPlan reads the Meat, Vegetable and Side columns from catalog. It
// always returns a usable plan: columns the catalog cannot supply keep the
// values from types.DefaultMealPlan, and the error reports why.
func LoadMealPlan(catalog types.Catalog) (types.MealPlan, error) {
	plan := types.MealPlan{
		Meats:      append([]string{}, types.DefaultMealPlan.Meats...),
		Vegetables: append([]string{}, types.DefaultMealPlan.Vegetables...),
		Sides:      append([]string{}, types.DefaultMealPlan.Sides...),
	}
	if catalog == nil {
		return plan, nil
	}

	columns := []struct {
		tag  types.CatalogTag
		dest *[]string
	}{
		{types.TagMeat, &plan.Meats},
		{types.TagVegetable, &plan.Vegetables},
		{types.TagSide, &plan.Sides},
	}
	for _, col := range columns {
		entries, err := catalog.List(col.tag)
		if err != nil {
			return plan, fmt.Errorf("read %s column: %w", col.tag, err)
		}
		if len(entries) == 0 {
			continue
		}
		items := make([]string, 0, len(entries))
		for _, e := range entries {
			items = append(items, e.Item)
		}
		*col.dest = items
	}
	return plan, nil
}
