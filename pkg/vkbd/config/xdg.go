package config

import (
	"os"
	"path/filepath"
)

const appName = "vkbd"

// ConfigDir returns $XDG_CONFIG_HOME/vkbd, falling back to ~/.config/vkbd.
// VKBD_CONFIG_DIR overrides both.
func ConfigDir() (string, error) {
	if dir := os.Getenv("VKBD_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}
