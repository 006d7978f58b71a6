package cli

import (
	"github.com/spf13/cobra"

	"github.com/Redwards2/MeijerShoppingList/internal/shell"
)

func newShellCmd(a *app) *cobra.Command {
	var load string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Edit the shopping lists in an interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pantry, err := a.attachPantry()
			if err != nil {
				return err
			}
			defer pantry.Detach()

			// Loading a stored snapshot needs the durable store.
			session, err := a.newSession(pantry, a.settings.PersistSnapshots || load != "")
			if err != nil {
				return err
			}
			if load != "" {
				if _, err := session.LoadSnapshot(load); err != nil {
					return snapshotError(err)
				}
			}
			if err := shell.Run(session, a.settings.RenderStyle); err != nil {
				return exitError(exitSysError, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&load, "load", "", "start from a stored snapshot")
	return cmd
}
