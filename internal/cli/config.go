// Config loading for the shoplist CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Redwards2/MeijerShoppingList/internal/aisle"
	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "SHOPLIST"

	cfgKeyBackend         = "backend"
	cfgKeyDataDir         = "data_dir"
	cfgKeyKeywords        = "classifier.keywords"
	cfgKeyAisleEndpoint   = "aisle.endpoint"
	cfgKeyAisleQueryParam = "aisle.query_param"
	cfgKeyAisleTimeout    = "aisle.timeout"
	cfgKeyPersistSnaps    = "snapshots.persist"
	cfgKeyServerAddr      = "server.addr"
	cfgKeyRenderStyle     = "render.style"

	defaultServerAddr  = ":8080"
	defaultRenderStyle = "dark"
)

// envKeys are the config keys that SHOPLIST_* variables override. data_dir is
// absent: SHOPLIST_DATA_DIR ranks below config.yaml and is applied by
// paths.ResolveDataDir.
var envKeys = []string{
	cfgKeyBackend,
	cfgKeyKeywords,
	cfgKeyAisleEndpoint,
	cfgKeyAisleQueryParam,
	cfgKeyAisleTimeout,
	cfgKeyPersistSnaps,
	cfgKeyServerAddr,
	cfgKeyRenderStyle,
}

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# shoplist configuration

# Storage backend
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

classifier:
  # Items containing any of these words go to the Pickup list.
  keywords: [milk, eggs, bread, butter, juice]

aisle:
  # Aisle lookup service; leave empty to disable enrichment.
  endpoint: ""
  query_param: q
  timeout: 5s

snapshots:
  # Mirror snapshots into the data directory so they survive restarts.
  persist: false

server:
  addr: ":8080"

render:
  # glamour style for markdown output: dark, light, notty, ascii
  style: dark
`

// settings is the resolved configuration of one CLI invocation.
type settings struct {
	Backend          string
	DataDir          string
	Keywords         []string
	Aisle            aisle.Config
	PersistSnapshots bool
	ServerAddr       string
	RenderStyle      string
}

// pantryConfig returns the storage configuration.
func (s settings) pantryConfig() types.Config {
	return types.Config{Backend: s.Backend, DataDir: s.DataDir}
}

// loadSettings reads config.yaml from configDir using Viper, creating the
// directory and a default file on first run.
func loadSettings(configDir string) (settings, error) {
	v, err := loadConfig(configDir)
	if err != nil {
		return settings{}, err
	}
	return settings{
		Backend:  v.GetString(cfgKeyBackend),
		DataDir:  v.GetString(cfgKeyDataDir),
		Keywords: splitList(v.GetStringSlice(cfgKeyKeywords)),
		Aisle: aisle.Config{
			Endpoint:   v.GetString(cfgKeyAisleEndpoint),
			QueryParam: v.GetString(cfgKeyAisleQueryParam),
			Timeout:    v.GetDuration(cfgKeyAisleTimeout),
		},
		PersistSnapshots: v.GetBool(cfgKeyPersistSnaps),
		ServerAddr:       v.GetString(cfgKeyServerAddr),
		RenderStyle:      v.GetString(cfgKeyRenderStyle),
	}, nil
}

// loadConfig builds the Viper instance. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyAisleQueryParam, aisle.DefaultQueryParam)
	v.SetDefault(cfgKeyAisleTimeout, aisle.DefaultTimeout)
	v.SetDefault(cfgKeyServerAddr, defaultServerAddr)
	v.SetDefault(cfgKeyRenderStyle, defaultRenderStyle)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates config.yaml if it does not exist.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// splitList flattens comma-separated entries, which is how list values
// arrive from environment variables.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
