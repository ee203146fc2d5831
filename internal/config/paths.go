package config

import (
	"os"
	"path/filepath"
)

// GetCapturaHome returns CAPTURA_HOME or ~/.captura default
func GetCapturaHome() string {
	capturaHome := os.Getenv("CAPTURA_HOME")
	if capturaHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".captura"
		}
		return filepath.Join(homeDir, ".captura")
	}
	return ExpandPath(capturaHome)
}

// GetDBPath returns $CAPTURA_HOME/captura.db
func GetDBPath() string {
	return filepath.Join(GetCapturaHome(), "captura.db")
}

// GetSettingsPath returns $CAPTURA_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetCapturaHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
