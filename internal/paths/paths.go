// Package paths resolves the configuration and data directories.
// Each directory is chosen from the first non-empty source in a fixed
// precedence chain.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user platform directories.
const AppName = "linkshelf"

// DefaultDataDirName is the CWD-relative data directory used when nothing
// else selects one. The documents live next to the web viewers by default.
const DefaultDataDirName = ".linkshelf-data"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "LINKSHELF_CONFIG_DIR"
	EnvDataDir   = "LINKSHELF_DATA_DIR"
)

// platform holds OS lookups so tests can replace them.
var platform = struct {
	goos          string
	getenv        func(string) string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	getwd         func() (string, error)
}{
	goos:          runtime.GOOS,
	getenv:        os.Getenv,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	getwd:         os.Getwd,
}

// xdgDir describes one XDG base directory on Linux.
type xdgDir struct {
	env      string
	fallback []string // Relative to $HOME.
}

var (
	xdgConfig = xdgDir{env: "XDG_CONFIG_HOME", fallback: []string{".config"}}
	xdgData   = xdgDir{env: "XDG_DATA_HOME", fallback: []string{".local", "share"}}
)

func (x xdgDir) resolve() (string, error) {
	if platform.goos != "linux" {
		// ~/Library/Application Support on macOS, %APPDATA% on Windows.
		dir, err := platform.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
	if base := platform.getenv(x.env); base != "" {
		return filepath.Join(base, AppName), nil
	}
	home, err := platform.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append(append([]string{home}, x.fallback...), AppName)...), nil
}

// DefaultConfigDir returns the platform configuration directory.
func DefaultConfigDir() (string, error) { return xdgConfig.resolve() }

// DefaultDataDir returns the platform data directory. It is not part of the
// ResolveDataDir chain; `linkshelf init --user` uses it.
func DefaultDataDir() (string, error) { return xdgData.resolve() }

// firstAbs returns the absolute form of the first non-empty candidate.
func firstAbs(candidates ...string) (string, bool, error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		abs, err := filepath.Abs(c)
		return abs, true, err
	}
	return "", false, nil
}

// ResolveConfigDir picks flag, then $LINKSHELF_CONFIG_DIR, then the
// platform default.
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok, err := firstAbs(flag, platform.getenv(EnvConfigDir)); ok {
		return dir, err
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks flag, then the configured value, then
// $LINKSHELF_DATA_DIR, then ./.linkshelf-data.
func ResolveDataDir(flag, configured string) (string, error) {
	if dir, ok, err := firstAbs(flag, configured, platform.getenv(EnvDataDir)); ok {
		return dir, err
	}
	cwd, err := platform.getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
