package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Redwards2/MeijerShoppingList/internal/render"
	"github.com/Redwards2/MeijerShoppingList/internal/shopping"
	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

func newImportCmd(a *app) *cobra.Command {
	var saveAs string
	cmd := &cobra.Command{
		Use:   "import [text|-]",
		Short: "Split pasted text into items and sort them into lists",
		Long: `Import splits text on commas and newlines, classifies each item, and records
names the reference catalog has not seen. With no argument (or "-") the text
is read from stdin. --save stores the result as a named snapshot.

Example:
  shoplist import "Milk, Bananas, Eggs" --save weekly
  pbpaste | shoplist import`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := textArg(cmd, args)
			if err != nil {
				return err
			}

			pantry, err := a.attachPantry()
			if err != nil {
				return err
			}
			defer pantry.Detach()

			session, err := a.newSession(pantry, saveAs != "")
			if err != nil {
				return err
			}

			v, res, err := session.Import(raw)
			if err != nil && !errors.Is(err, types.ErrCatalogWrite) {
				return exitError(exitSysError, err)
			}
			if err != nil {
				a.logger.Warn("catalog not updated", "err", err)
			}

			if saveAs != "" {
				if v, err = session.SaveSnapshot(saveAs); err != nil {
					if errors.Is(err, types.ErrInvalidName) {
						return exitError(exitUserError, err)
					}
					return exitError(exitSysError, err)
				}
			}

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), struct {
					View   types.View            `json:"view"`
					Result shopping.ImportResult `json:"result"`
				}{v, res})
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.View(v, 0))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d items (%d pickup, %d in-store, %d new in catalog)\n",
				res.Imported, res.Pickup, res.InStore, res.CatalogAdded)
			if saveAs != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "saved snapshot %q\n", saveAs)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&saveAs, "save", "", "save the imported lists as a snapshot with this name")
	return cmd
}
