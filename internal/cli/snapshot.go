package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Redwards2/MeijerShoppingList/internal/render"
	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

func newSnapshotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snapshot",
		Aliases: []string{"snap"},
		Short:   "Inspect snapshots stored in the data directory",
	}

	var plain bool
	show := &cobra.Command{
		Use:   "show <name>",
		Short: "Render a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSnapshots(func(st types.SnapshotStore) error {
				s, err := st.Get(args[0])
				if err != nil {
					return snapshotError(err)
				}
				if a.flags.jsonMode {
					return printJSON(cmd.OutOrStdout(), s)
				}
				md := render.SnapshotMarkdown(s)
				if plain {
					fmt.Fprint(cmd.OutOrStdout(), md)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.Markdown(md, a.settings.RenderStyle))
				return nil
			})
		},
	}
	show.Flags().BoolVar(&plain, "plain", false, "print markdown without terminal styling")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored snapshot names",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withSnapshots(func(st types.SnapshotStore) error {
					names, err := st.Names()
					if err != nil {
						return exitError(exitSysError, err)
					}
					if a.flags.jsonMode {
						return printJSON(cmd.OutOrStdout(), names)
					}
					for _, n := range names {
						fmt.Fprintln(cmd.OutOrStdout(), n)
					}
					return nil
				})
			},
		},
		show,
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a stored snapshot",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withSnapshots(func(st types.SnapshotStore) error {
					if err := st.Delete(args[0]); err != nil {
						return snapshotError(err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "deleted snapshot %q\n", args[0])
					return nil
				})
			},
		},
	)
	return cmd
}

// withSnapshots attaches the pantry for the duration of fn.
func (a *app) withSnapshots(fn func(types.SnapshotStore) error) error {
	pantry, err := a.attachPantry()
	if err != nil {
		return err
	}
	defer pantry.Detach()

	st, err := pantry.Snapshots()
	if err != nil {
		return exitError(exitSysError, err)
	}
	return fn(st)
}

func snapshotError(err error) error {
	if errors.Is(err, types.ErrSnapshotNotFound) {
		return exitError(exitUserError, err)
	}
	return exitError(exitSysError, err)
}
