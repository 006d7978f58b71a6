// Shared helpers for shoplist CLI commands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Redwards2/MeijerShoppingList/internal/aisle"
	"github.com/Redwards2/MeijerShoppingList/internal/shopping"
	"github.com/Redwards2/MeijerShoppingList/internal/sqlite"
	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// attachPantry creates a SQLite backend for the resolved data directory and
// attaches it. The caller must defer pantry.Detach().
func (a *app) attachPantry() (*sqlite.Backend, error) {
	pantry := sqlite.NewBackend()
	if err := pantry.Attach(a.settings.pantryConfig()); err != nil {
		if errors.Is(err, types.ErrBackendEmpty) || errors.Is(err, types.ErrBackendUnknown) {
			return nil, exitError(exitUserError, fmt.Errorf("attach backend: %w", err))
		}
		return nil, exitError(exitSysError, fmt.Errorf("attach backend: %w", err))
	}
	return pantry, nil
}

// sessionOptions wires engine collaborators over pantry. The durable
// snapshot mirror is included when persistSnapshots is set.
func (a *app) sessionOptions(pantry types.Pantry, persistSnapshots bool) (shopping.Options, error) {
	opts := shopping.Options{
		Classifier:   shopping.NewClassifier(a.settings.Keywords),
		AisleTimeout: a.settings.Aisle.Timeout,
		Logger:       a.logger,
	}
	if pantry != nil {
		cat, err := pantry.Catalog()
		if err != nil {
			return opts, exitError(exitSysError, err)
		}
		opts.Catalog = cat
		if persistSnapshots {
			snaps, err := pantry.Snapshots()
			if err != nil {
				return opts, exitError(exitSysError, err)
			}
			opts.Snapshots = snaps
		}
	}
	if client := aisle.New(a.settings.Aisle, a.logger); client.Enabled() {
		opts.Aisles = client
	}
	return opts, nil
}

// newSession builds a single engine session over pantry.
func (a *app) newSession(pantry types.Pantry, persistSnapshots bool) (*shopping.Session, error) {
	opts, err := a.sessionOptions(pantry, persistSnapshots)
	if err != nil {
		return nil, err
	}
	return shopping.NewSession(opts), nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return exitError(exitSysError, fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// textArg joins args, or reads stdin when args is empty or "-".
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", exitError(exitSysError, fmt.Errorf("read stdin: %w", err))
	}
	return string(data), nil
}
