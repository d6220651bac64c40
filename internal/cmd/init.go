package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stevedore-sh/stevedore/internal/envconfig"
	"github.com/stevedore-sh/stevedore/internal/ui"
)

const starterConfig = `# stevedore deployment configuration
#
# global:   env namespaces shared as defaults across all servers
# services: per-server namespaces; keys left out here are inherited
#           from the same-named global namespace

global:
  database:
    HOST: db.internal
    PORT: 5432

services:
  server1:
    database:
      HOST: db.server1
    web:
      LISTEN: "0.0.0.0:8080"
`

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Scaffold a new project",
	Long: `Initialize a stevedore project with a starter stevedore.yml and
the snapshot directory. If no directory is given, the current directory
is used.

Use --yes to skip interactive prompts (useful for non-TTY environments).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initYes bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "skip interactive prompts")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}
	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	targetDir = absDir

	configPath := filepath.Join(targetDir, envconfig.DefaultFilename)
	if _, err := os.Stat(configPath); err == nil {
		ui.Warning("%s already exists.", configPath)
		if !initYes {
			ok, err := promptYesNo("Reinitialize? Existing files are kept.")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}
	}

	dirs := []string{
		filepath.Join(targetDir, ".stevedore", "snapshots"),
		filepath.Join(targetDir, "deploy"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := os.WriteFile(configPath, []byte(starterConfig), 0644); err != nil {
			return fmt.Errorf("create %s: %w", envconfig.DefaultFilename, err)
		}
		ui.Success("Created %s", configPath)
	} else {
		ui.Warning("%s already exists, skipping", envconfig.DefaultFilename)
	}

	ui.Success("Project initialized")
	ui.Info("Next: edit %s and run 'stevedore deploy'", envconfig.DefaultFilename)
	return nil
}

// promptYesNo asks for confirmation on a TTY; anything else answers no.
func promptYesNo(question string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, nil
	}

	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read answer: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
