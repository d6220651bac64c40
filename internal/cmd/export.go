package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stevedore-sh/stevedore/internal/config"
	"github.com/stevedore-sh/stevedore/internal/envconfig"
)

var exportJSON bool

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the resolved configuration",
	Long: `Print the configuration as plain data:

  {"global": {namespace: {key: value}}, "services": {server: {...}}}

Server sections hold their own entries only; values inherited from the
global section are never duplicated.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "output JSON instead of YAML")
}

func runExport(cmd *cobra.Command, args []string) error {
	return withConfigFile(func(cfg *config.Config, cf *envconfig.ConfigFile) error {
		exported, err := cf.ExportDict()
		if err != nil {
			return fmt.Errorf("export configuration: %w", err)
		}

		var data []byte
		if exportJSON {
			data, err = json.MarshalIndent(exported, "", "  ")
		} else {
			data, err = yaml.Marshal(exported)
		}
		if err != nil {
			return fmt.Errorf("serialize export: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	})
}
