package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Redwards2/MeijerShoppingList/internal/shopping"
	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <item>...",
		Short: "Show which list each item would go to",
		Long: `Classify runs the keyword classifier over each argument. Items containing a
configured keyword (classifier.keywords) go to Pickup; everything else is In-Store.

Example:
  shoplist classify "2% milk" Bananas`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := shopping.NewClassifier(a.settings.Keywords)
			type row struct {
				Item     string         `json:"item"`
				Category types.Category `json:"category"`
			}
			rows := make([]row, 0, len(args))
			for _, item := range args {
				rows = append(rows, row{item, c.Classify(item)})
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), rows)
			}
			for _, r := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Item, r.Category.Label())
			}
			return nil
		},
	}
}
