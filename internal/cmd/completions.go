package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/stevedore-sh/stevedore/internal/config"
)

// completeServerNames completes server names declared in stevedore.yml.
func completeServerNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Don't complete if we already have an argument
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	cf, err := cfg.ConfigFile(false)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, server := range cf.Servers() {
		if strings.HasPrefix(server, toComplete) {
			names = append(names, server)
		}
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

// registerCompletions registers dynamic completions after all commands
// are defined.
func registerCompletions() {
	servicesCmd.ValidArgsFunction = completeServerNames
}

func init() {
	cobra.OnInitialize(registerCompletions)
}
