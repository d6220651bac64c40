package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stevedore-sh/stevedore/internal/compose"
	"github.com/stevedore-sh/stevedore/internal/config"
	"github.com/stevedore-sh/stevedore/internal/envconfig"
	"github.com/stevedore-sh/stevedore/internal/ui"
)

// lintCmd represents the lint command.
var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Load and validate the configuration",
	Long: `Load stevedore.yml and report problems: unknown top-level
sections, namespace bodies that are not mappings, and values that
cannot be exported. Previously compiled override manifests in deploy/
are checked against the current configuration.`,
	Args: cobra.NoArgs,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	return withConfigFile(func(cfg *config.Config, cf *envconfig.ConfigFile) error {
		// A full export exercises value normalization for every entry
		if _, err := cf.ExportDict(); err != nil {
			return fmt.Errorf("configuration does not export cleanly: %w", err)
		}

		globalCount := len(cf.GlobalEnvs().Namespaces())
		ui.Info("%d global namespace(s)", globalCount)
		for _, server := range cf.Servers() {
			services, err := cf.Services(server)
			if err != nil {
				return err
			}
			ui.Info("server %s: %d service(s)", server, len(services))

			if err := lintCompiledOverride(cfg, server, services); err != nil {
				return err
			}
		}

		ui.Success("%s is valid", cf.Filepath())
		return nil
	})
}

// lintCompiledOverride checks a server's compiled compose override, when
// one exists, against the services the configuration declares now.
func lintCompiledOverride(cfg *config.Config, server string, services []string) error {
	f, err := compose.LoadComposeFile(filepath.Join(cfg.OutputDir, server), compose.OverrideFilename)
	if errors.Is(err, compose.ErrNoComposeFile) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("compiled override for server %q: %w", server, err)
	}

	// Both lists are sorted
	if strings.Join(f.Services(), ",") != strings.Join(services, ",") {
		ui.Warning("server %s: compiled override is out of date, run 'stevedore deploy'", server)
	}
	return nil
}
