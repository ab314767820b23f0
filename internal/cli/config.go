package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/linkshelf/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envFileName    = ".env"
	envPrefix      = "LINKSHELF"

	cfgKeyDataDir           = "data_dir"
	cfgKeyLogLevel          = "log_level"
	cfgKeyCategoriesFile    = "files.categories"
	cfgKeyFilesFile         = "files.files"
	cfgKeyNotificationsFile = "files.notifications"
	cfgKeyRemoteOwner       = "remote.owner"
	cfgKeyRemoteRepo        = "remote.repo"
	cfgKeyRemoteBranch      = "remote.branch"
	cfgKeyRemoteToken       = "remote.token"
	cfgKeyRemoteBaseURL     = "remote.base_url"
	cfgKeyRemotePrefix      = "remote.prefix"
	cfgKeyServerAddr        = "server.addr"
	cfgKeyReloadInterval    = "server.reload_interval"

	defaultLogLevel       = "warn"
	defaultServerAddr     = "127.0.0.1:8080"
	defaultReloadInterval = 5 * time.Second
)

// loadConfig reads config.yaml from configDir with environment overrides
// (LINKSHELF_DATA_DIR, LINKSHELF_REMOTE_TOKEN, ...). An optional .env file
// in configDir is loaded first; variables already set in the environment
// win. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := godotenv.Load(filepath.Join(configDir, envFileName)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFileName, err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyCategoriesFile, types.DefaultCategoriesFile)
	v.SetDefault(cfgKeyFilesFile, types.DefaultFilesFile)
	v.SetDefault(cfgKeyNotificationsFile, types.DefaultNotificationsFile)
	v.SetDefault(cfgKeyServerAddr, defaultServerAddr)
	v.SetDefault(cfgKeyReloadInterval, defaultReloadInterval)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Keys without a default are only found by AutomaticEnv once bound.
	for _, key := range []string{
		cfgKeyDataDir, cfgKeyRemoteOwner, cfgKeyRemoteRepo, cfgKeyRemoteBranch,
		cfgKeyRemoteToken, cfgKeyRemoteBaseURL, cfgKeyRemotePrefix,
	} {
		_ = v.BindEnv(key)
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// storeConfig builds the store configuration for dataDir from v.
func storeConfig(v *viper.Viper, dataDir string) types.Config {
	return types.Config{
		DataDir:           dataDir,
		CategoriesFile:    v.GetString(cfgKeyCategoriesFile),
		FilesFile:         v.GetString(cfgKeyFilesFile),
		NotificationsFile: v.GetString(cfgKeyNotificationsFile),
		Remote: types.RemoteConfig{
			Owner:   v.GetString(cfgKeyRemoteOwner),
			Repo:    v.GetString(cfgKeyRemoteRepo),
			Branch:  v.GetString(cfgKeyRemoteBranch),
			Prefix:  v.GetString(cfgKeyRemotePrefix),
			Token:   v.GetString(cfgKeyRemoteToken),
			BaseURL: v.GetString(cfgKeyRemoteBaseURL),
		},
	}.WithDefaults()
}
