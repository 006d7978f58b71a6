package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Redwards2/MeijerShoppingList/internal/render"
	"github.com/Redwards2/MeijerShoppingList/internal/shopping"
	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the reference catalog of known item names",
	}

	var tag string
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var t types.CatalogTag
			if tag != "" {
				var err error
				if t, err = types.ParseCatalogTag(tag); err != nil {
					return exitError(exitUserError, err)
				}
			}
			return a.withCatalog(func(cat types.Catalog) error {
				entries, err := cat.List(t)
				if err != nil {
					return exitError(exitSysError, err)
				}
				if a.flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), entries)
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "CATEGORY\tITEM")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%s\n", e.Category, e.Item)
				}
				return tw.Flush()
			})
		},
	}
	list.Flags().StringVar(&tag, "tag", "", "only entries with this tag (Meat, Vegetable, Side, InStore)")

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "add <tag> <item>",
			Short: "Add an entry to the catalog",
			Example: `  shoplist catalog add Meat "Turkey Breast"
  shoplist catalog add side couscous`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := types.ParseCatalogTag(args[0])
				if err != nil {
					return exitError(exitUserError, err)
				}
				return a.withCatalog(func(cat types.Catalog) error {
					entry, err := cat.Append(t, args[1])
					if err != nil {
						if errors.Is(err, types.ErrEmptyText) {
							return exitError(exitUserError, err)
						}
						return exitError(exitSysError, err)
					}
					if a.flags.jsonMode {
						return printJSON(cmd.OutOrStdout(), entry)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "added %s %q\n", entry.Category, entry.Item)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "mealplan",
			Short: "Show the meal-plan options read from the catalog",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withCatalog(func(cat types.Catalog) error {
					plan, err := shopping.LoadMealPlan(cat)
					if err != nil {
						a.logger.Warn("meal plan falls back to defaults", "err", err)
					}
					if a.flags.jsonMode {
						return printJSON(cmd.OutOrStdout(), plan)
					}
					fmt.Fprintln(cmd.OutOrStdout(), render.Markdown(render.MealPlanMarkdown(plan), a.settings.RenderStyle))
					return nil
				})
			},
		},
	)
	return cmd
}

// withCatalog attaches the pantry for the duration of fn.
func (a *app) withCatalog(fn func(types.Catalog) error) error {
	pantry, err := a.attachPantry()
	if err != nil {
		return err
	}
	defer pantry.Detach()

	cat, err := pantry.Catalog()
	if err != nil {
		return exitError(exitSysError, err)
	}
	return fn(cat)
}
