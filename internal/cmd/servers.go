package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stevedore-sh/stevedore/internal/config"
	"github.com/stevedore-sh/stevedore/internal/envconfig"
	"github.com/stevedore-sh/stevedore/internal/ui"
)

// serversCmd represents the servers command.
var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "List deployment servers",
	Args:  cobra.NoArgs,
	RunE:  runServers,
}

// servicesCmd represents the services command.
var servicesCmd = &cobra.Command{
	Use:   "services <server>",
	Short: "List services (env namespaces) defined for a server",
	Args:  cobra.ExactArgs(1),
	RunE:  runServices,
}

func init() {
	rootCmd.AddCommand(serversCmd)
	rootCmd.AddCommand(servicesCmd)
}

func runServers(cmd *cobra.Command, args []string) error {
	return withConfigFile(func(cfg *config.Config, cf *envconfig.ConfigFile) error {
		servers := cf.Servers()
		if len(servers) == 0 {
			ui.Warning("No servers defined in %s", cf.Filepath())
			return nil
		}
		for _, server := range servers {
			fmt.Fprintln(cmd.OutOrStdout(), server)
		}
		return nil
	})
}

func runServices(cmd *cobra.Command, args []string) error {
	return withConfigFile(func(cfg *config.Config, cf *envconfig.ConfigFile) error {
		services, err := cf.Services(args[0])
		if err != nil {
			return err
		}
		for _, service := range services {
			fmt.Fprintln(cmd.OutOrStdout(), service)
		}
		return nil
	})
}
