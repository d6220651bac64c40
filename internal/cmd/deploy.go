package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stevedore-sh/stevedore/internal/config"
	"github.com/stevedore-sh/stevedore/internal/deployment"
	"github.com/stevedore-sh/stevedore/internal/envconfig"
	"github.com/stevedore-sh/stevedore/internal/snapshot"
	"github.com/stevedore-sh/stevedore/internal/ui"
)

var (
	deployComposeVersion string
	deployNoSnapshot     bool
)

// deployCmd represents the deploy command.
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Compile the configuration into deployable artifacts",
	Long: `Compile stevedore.yml into the deploy/ directory:

  deploy/envs/global/<ns>.env             shared defaults
  deploy/<server>/envs/<ns>.env           per-server values
  deploy/<server>/docker-compose.override.yml

Unless --no-snapshot is given, the previous output is snapshotted into
.stevedore/snapshots before being replaced.`,
	Args: cobra.NoArgs,
	RunE: runDeploy,
}

func init() {
	rootCmd.AddCommand(deployCmd)
	deployCmd.Flags().StringVar(&deployComposeVersion, "compose-version", "", "compose document version for generated overrides")
	deployCmd.Flags().BoolVar(&deployNoSnapshot, "no-snapshot", false, "skip snapshotting the previous output")
}

func runDeploy(cmd *cobra.Command, args []string) error {
	return withConfigFile(func(cfg *config.Config, cf *envconfig.ConfigFile) error {
		if !deployNoSnapshot {
			name, err := snapshot.Create(cfg.OutputDir, cfg.SnapshotsDir)
			if err != nil {
				return fmt.Errorf("snapshot previous output: %w", err)
			}
			if name != "" {
				ui.Info("Saved snapshot %s", name)
				if _, err := snapshot.Prune(cfg.SnapshotsDir, snapshot.MaxSnapshots); err != nil {
					ui.Warning("Prune snapshots: %v", err)
				}
			}
		}

		// The output is a pure function of the configuration; anything
		// left from a previous compilation would go stale
		if err := os.RemoveAll(cfg.OutputDir); err != nil {
			return fmt.Errorf("clear previous output: %w", err)
		}

		compiler := &deployment.Compiler{
			OutputDir:      cfg.OutputDir,
			ComposeVersion: deployComposeVersion,
		}
		if err := compiler.Compile(cf); err != nil {
			return err
		}

		servers := cf.Servers()
		if len(servers) == 0 {
			ui.Warning("No servers defined; only global envs were written")
		}
		ui.Success("Compiled %d server(s) into %s", len(servers), cfg.OutputDir)
		return nil
	})
}
