package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/linkshelf/internal/paths"
	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

// configFile holds the structure written to config.yaml. The remote token
// is never written here; set it in the environment or in .env.
type configFile struct {
	DataDir  string          `yaml:"data_dir,omitempty"`
	LogLevel string          `yaml:"log_level"`
	Files    configDocuments `yaml:"files"`
	Remote   configRemote    `yaml:"remote"`
	Server   configServer    `yaml:"server"`
}

type configDocuments struct {
	Categories    string `yaml:"categories"`
	Files         string `yaml:"files"`
	Notifications string `yaml:"notifications"`
}

type configRemote struct {
	Owner  string `yaml:"owner"`
	Repo   string `yaml:"repo"`
	Branch string `yaml:"branch"`
	Prefix string `yaml:"prefix"`
}

type configServer struct {
	Addr           string `yaml:"addr"`
	ReloadInterval string `yaml:"reload_interval"`
}

func newInitCmd(a *app) *cobra.Command {
	var user bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and documents",
		Long: `Init creates the configuration directory with a default config.yaml and
writes an empty document for every document missing from the data directory.
Existing files are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user && !cmd.Flags().Changed("data-dir") {
				dir, err := paths.DefaultDataDir()
				if err != nil {
					return systemErr("resolve user data dir: %w", err)
				}
				a.flags.dataDir = dir
			}
			dataDir, err := a.dataDir()
			if err != nil {
				return err
			}

			if err := os.MkdirAll(a.configDir, 0o755); err != nil {
				return systemErr("create config directory: %w", err)
			}
			configPath := filepath.Join(a.configDir, configFileExt)
			written, err := writeConfigIfMissing(configPath, dataDir)
			if err != nil {
				return systemErr("write config: %w", err)
			}
			if written {
				a.log.WithField("path", configPath).Info("wrote default config")
				// Re-read so the new file's values take effect.
				if a.v, err = loadConfig(a.configDir); err != nil {
					return systemErr("%w", err)
				}
			}

			if err := a.openDocuments(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			result := struct {
				ConfigDir string `json:"configDir"`
				DataDir   string `json:"dataDir"`
			}{a.configDir, a.cfg.DataDir}
			return a.emit(out, result, func() {
				fmt.Fprintf(out, "linkshelf initialized\nconfig: %s\ndata:   %s\n", a.configDir, a.cfg.DataDir)
			})
		},
	}
	cmd.Flags().BoolVar(&user, "user", false, "store documents in the per-user data directory")
	return cmd
}

// writeConfigIfMissing creates config.yaml with default values. It reports
// whether a file was written; an existing file is kept as is.
func writeConfigIfMissing(path, dataDir string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	cfg := configFile{
		DataDir:  dataDir,
		LogLevel: defaultLogLevel,
		Files: configDocuments{
			Categories:    types.DefaultCategoriesFile,
			Files:         types.DefaultFilesFile,
			Notifications: types.DefaultNotificationsFile,
		},
		Server: configServer{
			Addr:           defaultServerAddr,
			ReloadInterval: defaultReloadInterval.String(),
		},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	return true, os.WriteFile(path, append([]byte("# linkshelf configuration\n"), data...), 0o644)
}
