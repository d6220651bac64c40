package cmd

import (
	"fmt"

	"github.com/stevedore-sh/stevedore/internal/config"
	"github.com/stevedore-sh/stevedore/internal/envconfig"
)

// withProject locates the project root and runs fn with its layout.
func withProject(fn func(cfg *config.Config) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return fn(cfg)
}

// withConfigFile locates the project and loads its configuration file.
// The file must exist; commands operating on an absent config are
// explicit about it.
func withConfigFile(fn func(cfg *config.Config, cf *envconfig.ConfigFile) error) error {
	return withProject(func(cfg *config.Config) error {
		cf, err := cfg.ConfigFile(true)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		return fn(cfg, cf)
	})
}
