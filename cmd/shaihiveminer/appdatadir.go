package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// appDataDir returns an operating system appropriate home directory for
// the application, creating none of its parents. appName should not
// contain a leading dot; one is added for the unix home-directory default.
func appDataDir(appName string) string {
	if appName == "" || appName == "." {
		return "."
	}

	appName = strings.TrimPrefix(appName, ".")
	appNameUpper := strings.ToUpper(appName)

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		if appData != "" {
			return filepath.Join(appData, appNameUpper)
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			return filepath.Join(home, "Library", "Application Support", appNameUpper)
		}
	case "plan9":
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			return filepath.Join(home, appName)
		}
	default:
		if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
			return filepath.Join(dataHome, appName)
		}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			return filepath.Join(home, "."+appName)
		}
	}

	return "."
}
