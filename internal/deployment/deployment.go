// Package deployment compiles a loaded configuration into per-server
// deployable artifacts: dotenv files for every namespace plus a compose
// override wiring each service to its env file.
package deployment

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/stevedore-sh/stevedore/internal/compose"
	"github.com/stevedore-sh/stevedore/internal/envconfig"
	"github.com/stevedore-sh/stevedore/internal/envfile"
)

// Layout of the output directory.
const (
	EnvsDirName   = "envs"
	GlobalDirName = "global"
)

// Compiler writes deployment artifacts for a configuration.
type Compiler struct {
	// OutputDir is the root directory artifacts are written under.
	OutputDir string

	// ComposeVersion selects the compose document version; empty means
	// compose.DefaultVersion.
	ComposeVersion string
}

// Compile writes the artifacts for every server in the configuration:
//
//	<out>/envs/global/<ns>.env            shared defaults
//	<out>/<server>/envs/<ns>.env          per-server values
//	<out>/<server>/docker-compose.override.yml
//
// Each server namespace becomes one service in the override with an
// env_file reference relative to the server directory.
func (c *Compiler) Compile(cfg *envconfig.ConfigFile) error {
	globalExport, err := cfg.GlobalEnvs().ExportDict()
	if err != nil {
		return fmt.Errorf("export global envs: %w", err)
	}
	globalDir := filepath.Join(c.OutputDir, EnvsDirName, GlobalDirName)
	if err := envfile.Write(globalDir, globalExport); err != nil {
		return fmt.Errorf("write global envs: %w", err)
	}

	for _, server := range cfg.Servers() {
		if err := c.compileServer(cfg, server); err != nil {
			return fmt.Errorf("server %q: %w", server, err)
		}
	}

	return nil
}

func (c *Compiler) compileServer(cfg *envconfig.ConfigFile, server string) error {
	store, err := cfg.ServerStore(server)
	if err != nil {
		return err
	}

	export, err := store.ExportDict()
	if err != nil {
		return fmt.Errorf("export envs: %w", err)
	}

	serverDir := filepath.Join(c.OutputDir, server)
	if err := envfile.Write(filepath.Join(serverDir, EnvsDirName), export); err != nil {
		return fmt.Errorf("write envs: %w", err)
	}

	override := compose.NewEditableCompose(c.ComposeVersion)
	services, err := cfg.Services(server)
	if err != nil {
		return err
	}
	for _, service := range services {
		// Relative to the server directory, forward slashes for compose
		envPath := "./" + path.Join(EnvsDirName, envfile.Filename(service))
		override.SetServiceEnvFile(service, envPath)
	}

	if err := override.WriteTo(serverDir, compose.OverrideFilename); err != nil {
		return fmt.Errorf("write compose override: %w", err)
	}

	return nil
}
