// Package config handles project discovery and path layout.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stevedore-sh/stevedore/internal/envconfig"
)

// Config holds the resolved project layout.
type Config struct {
	// Root is the project root directory (contains stevedore.yml).
	Root string

	// ConfigFilename is the configuration file name within Root.
	ConfigFilename string

	// OutputDir is where compiled deployment artifacts are written.
	OutputDir string

	// SnapshotsDir is where output snapshots are kept.
	SnapshotsDir string
}

// FindRoot searches upward from the current directory for the project
// root, identified by the presence of a stevedore.yml file.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		marker := filepath.Join(dir, envconfig.DefaultFilename)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("project root not found (no %s in this or any parent directory)", envconfig.DefaultFilename)
}

// Load finds the project root and returns its layout.
func Load() (*Config, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, err
	}
	return At(root), nil
}

// At returns the layout for a known project root.
func At(root string) *Config {
	return &Config{
		Root:           root,
		ConfigFilename: envconfig.DefaultFilename,
		OutputDir:      filepath.Join(root, "deploy"),
		SnapshotsDir:   filepath.Join(root, ".stevedore", "snapshots"),
	}
}

// ConfigFile loads the project configuration. mustExist mirrors
// envconfig.Load semantics.
func (c *Config) ConfigFile(mustExist bool) (*envconfig.ConfigFile, error) {
	return envconfig.Load(c.Root, c.ConfigFilename, mustExist)
}
