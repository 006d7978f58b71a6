package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Redwards2/MeijerShoppingList/internal/paths"
	"github.com/Redwards2/MeijerShoppingList/internal/sqlite"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize shoplist storage",
		Long: `Create the configuration and data directories, seed the reference catalog,
and record --data-dir in config.yaml when it is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return exitError(exitSysError, fmt.Errorf("resolve config dir: %w", err))
	}

	if a.flags.dataDir != "" {
		path := filepath.Join(configDir, configFileExt)
		if err := setConfigValue(path, cfgKeyDataDir, a.settings.DataDir); err != nil {
			return exitError(exitSysError, fmt.Errorf("write config: %w", err))
		}
	}

	pantry := sqlite.NewBackend()
	if err := pantry.Attach(a.settings.pantryConfig()); err != nil {
		return exitError(exitSysError, fmt.Errorf("initialize storage: %w", err))
	}
	if err := pantry.Detach(); err != nil {
		return exitError(exitSysError, fmt.Errorf("finalize storage: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "shoplist initialized in %s\n", a.settings.DataDir)
	return nil
}

// setConfigValue sets a top-level key in config.yaml, keeping the other keys.
// Comments in the file are not preserved.
func setConfigValue(path, key string, value any) error {
	doc := map[string]any{}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	doc[key] = value

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, out, 0o644)
}
