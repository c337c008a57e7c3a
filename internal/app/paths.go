package app

import (
	"os"
	"path/filepath"
)

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/bindpls/config.json"
	}
	return filepath.Join(home, ".config", "bindpls", "config.json")
}
