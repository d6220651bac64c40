package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stevedore-sh/stevedore/internal/config"
	"github.com/stevedore-sh/stevedore/internal/snapshot"
	"github.com/stevedore-sh/stevedore/internal/ui"
)

var snapshotsPrune bool

// snapshotsCmd represents the snapshots command.
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List output snapshots",
	Long: `List the snapshots of the deploy/ directory taken before each
compilation. With --prune, remove all but the newest ones.`,
	Args: cobra.NoArgs,
	RunE: runSnapshots,
}

func init() {
	rootCmd.AddCommand(snapshotsCmd)
	snapshotsCmd.Flags().BoolVar(&snapshotsPrune, "prune", false, fmt.Sprintf("keep only the newest %d snapshots", snapshot.MaxSnapshots))
}

func runSnapshots(cmd *cobra.Command, args []string) error {
	return withProject(func(cfg *config.Config) error {
		if snapshotsPrune {
			removed, err := snapshot.Prune(cfg.SnapshotsDir, snapshot.MaxSnapshots)
			if err != nil {
				return err
			}
			ui.Success("Removed %d snapshot(s)", removed)
		}

		snapshots, err := snapshot.List(cfg.SnapshotsDir)
		if err != nil {
			return err
		}
		if len(snapshots) == 0 {
			ui.Info("No snapshots")
			return nil
		}
		for _, snap := range snapshots {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", snap.Created.Format("2006-01-02 15:04:05"), snap.Name)
		}
		return nil
	})
}
