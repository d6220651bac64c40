// Package cmd provides the CLI commands for stevedore.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stevedore",
	Short: "Deployment configuration compiler for Docker Compose fleets",
	Long: `stevedore - deployment configuration compiler

Reads a layered stevedore.yml describing env variables shared globally
and per deployment server, and compiles it into per-server .env files
plus docker-compose override manifests.

PROJECT
  init                  Scaffold a new project (stevedore.yml + layout)
  lint                  Load and validate the configuration

COMPILE
  deploy                Compile the configuration into deploy/
    --compose-version   Compose document version for overrides
    --no-snapshot       Skip snapshotting the previous output
  export                Print the resolved configuration
    --json              JSON instead of YAML

CONFIG
  merge <file>          Merge another configuration into this one
    --overwrite         Take the other file's value on conflicts
    -o, --output <file> Write the result instead of printing it
  servers               List deployment servers
  services <server>     List services (namespaces) for a server

MAINTENANCE
  snapshots             List output snapshots
    --prune             Remove all but the newest snapshots
  update                Update stevedore to the latest version`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("stevedore version {{.Version}}\n")
}
