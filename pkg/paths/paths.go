package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/confc/pkg/errors"
)

// Environment variable names
const (
	EnvConfcConfigDir = "CONFC_CONFIG_DIR"
	EnvConfcStateDir  = "CONFC_STATE_DIR"
	EnvHome           = "HOME"
)

// Directory and file names
const (
	AppDirName     = "confc"
	ConfigFileName = "config.toml"
	LogFileName    = "confc.log"
)

// ConfigDir returns the directory holding the user settings file
func ConfigDir() string {
	if dir := os.Getenv(EnvConfcConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory holding the log file
func StateDir() string {
	if dir := os.Getenv(EnvConfcStateDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// UserConfigFile returns where the user settings file lives, whether or not
// it exists
func UserConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// FindUserConfig locates an existing user settings file. With
// CONFC_CONFIG_DIR set only that directory is considered; otherwise the XDG
// config home and then the XDG config dirs are searched.
func FindUserConfig() (string, bool) {
	if os.Getenv(EnvConfcConfigDir) != "" {
		path := UserConfigFile()
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
		return "", false
	}

	path, err := xdg.SearchConfigFile(filepath.Join(AppDirName, ConfigFileName))
	if err != nil {
		return "", false
	}
	return path, true
}

// LogFile returns the path of the log file
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// Normalize expands ~, makes the path absolute and cleans it
func Normalize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %s", path).
			WithDetail("path", path)
	}
	return filepath.Clean(abs), nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	// ~user is left alone
	return path
}
