package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultProjectConfigPath is the project-level config location, relative to
// the working directory the tool runs in.
const DefaultProjectConfigPath = ".newsplit/config.yml"

// UserConfigPath returns the XDG-style user config location,
// ~/.config/newsplit/config.yml.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "newsplit", "config.yml"), nil
}
