package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Redwards2/MeijerShoppingList/internal/aisle"
)

func newAisleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "aisle <item>",
		Short: "Look up the store aisle for an item",
		Long: `Aisle queries the configured lookup service (aisle.endpoint). A failed or
empty lookup prints "no aisle info" and still exits 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := aisle.New(a.settings.Aisle, a.logger)
			if !client.Enabled() {
				return exitError(exitUserError, fmt.Errorf("aisle lookup is disabled: set %s in config.yaml or SHOPLIST_AISLE_ENDPOINT", cfgKeyAisleEndpoint))
			}
			found, ok := client.Lookup(cmd.Context(), args[0])
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), struct {
					Item  string `json:"item"`
					Aisle string `json:"aisle,omitempty"`
					Found bool   `json:"found"`
				}{args[0], found, ok})
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no aisle info\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: aisle %s\n", args[0], found)
			return nil
		},
	}
}
