package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/stevedore-sh/stevedore/internal/ui"
	"github.com/stevedore-sh/stevedore/internal/update"
)

var updateCheckOnly bool

// updateCmd represents the update command.
var updateCmd = &cobra.Command{
	Use:     "update",
	Aliases: []string{"upgrade", "selfupdate"},
	Short:   "Update stevedore to the latest version",
	Long: `Update stevedore to the latest version from GitHub releases.

Examples:
  stevedore update           # Update to latest version
  stevedore update --check   # Check for updates without installing`,
	Args: cobra.NoArgs,
	Run:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "only check for updates, don't install")
}

func runUpdate(cmd *cobra.Command, args []string) {
	ui.Blue.Printf("Current version: %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)

	if updateCheckOnly {
		release, available, err := update.CheckForUpdate(version)
		if err != nil {
			ui.Error("Failed to check for updates: %v", err)
			return
		}
		if !available {
			ui.Success("Already up to date")
			return
		}
		ui.Info("Version %s is available: %s", release.Version, release.ReleaseURL)
		fmt.Println("Run 'stevedore update' to install it.")
		return
	}

	ui.Blue.Println("Checking for updates...")
	release, err := update.Update(version)
	if err != nil {
		ui.Error("Update failed: %v", err)
		return
	}
	if release == nil {
		ui.Success("Already up to date")
		return
	}
	ui.Success("Updated to %s (published %s)", release.Version, release.PublishedAt)
}
