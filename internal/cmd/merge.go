package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stevedore-sh/stevedore/internal/config"
	"github.com/stevedore-sh/stevedore/internal/envconfig"
	"github.com/stevedore-sh/stevedore/internal/envstore"
	"github.com/stevedore-sh/stevedore/internal/ui"
)

var (
	mergeOverwrite bool
	mergeOutput    string
)

// mergeCmd represents the merge command.
var mergeCmd = &cobra.Command{
	Use:   "merge <config-file>",
	Short: "Merge another configuration into this project's",
	Long: `Merge the project configuration with another configuration file.

The project configuration is the first operand: by default, on a key
present in both with different values, the project's value is preserved.
With --overwrite the other file's value wins instead. Servers present
only in the other file are adopted as-is.

The merged configuration is printed as YAML, or written with -o. It is
itself a valid stevedore.yml.`,
	Args: cobra.ExactArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().BoolVar(&mergeOverwrite, "overwrite", false, "take the other file's value on conflicts")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "write the result to a file")
}

func runMerge(cmd *cobra.Command, args []string) error {
	return withConfigFile(func(cfg *config.Config, cf *envconfig.ConfigFile) error {
		otherPath, otherFile := filepath.Split(args[0])
		if otherPath == "" {
			otherPath = "."
		}
		other, err := envconfig.Load(otherPath, otherFile, true)
		if err != nil {
			return fmt.Errorf("load %s: %w", args[0], err)
		}

		policy := envstore.MergePreserve
		if mergeOverwrite {
			policy = envstore.MergeOverwrite
		}

		merged := envconfig.Merge(cf, other, policy)
		exported, err := merged.ExportDict()
		if err != nil {
			return fmt.Errorf("export merged configuration: %w", err)
		}

		data, err := yaml.Marshal(exported)
		if err != nil {
			return fmt.Errorf("serialize merged configuration: %w", err)
		}

		if mergeOutput == "" {
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(mergeOutput, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", mergeOutput, err)
		}
		ui.Success("Wrote merged configuration to %s (policy: %s)", mergeOutput, policy)
		return nil
	})
}
