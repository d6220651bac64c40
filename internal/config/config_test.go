package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevedore-sh/stevedore/internal/envconfig"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, envconfig.DefaultFilename), []byte("global: {}\n"), 0644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	chdir(t, nested)

	found, err := FindRoot()
	require.NoError(t, err)

	// Resolve symlinks: on some systems TempDir is behind a symlink
	wantRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	foundResolved, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, foundResolved)
}

func TestFindRoot_NotFound(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := FindRoot()
	require.Error(t, err)
	assert.Contains(t, err.Error(), envconfig.DefaultFilename)
}

func TestAt(t *testing.T) {
	cfg := At("/srv/project")

	assert.Equal(t, "/srv/project", cfg.Root)
	assert.Equal(t, envconfig.DefaultFilename, cfg.ConfigFilename)
	assert.Equal(t, filepath.Join("/srv/project", "deploy"), cfg.OutputDir)
	assert.Equal(t, filepath.Join("/srv/project", ".stevedore", "snapshots"), cfg.SnapshotsDir)
}

func TestConfigFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, envconfig.DefaultFilename), []byte("global:\n  app:\n    PORT: 1\n"), 0644))

	cfg := At(root)
	cf, err := cfg.ConfigFile(true)
	require.NoError(t, err)

	port, ok := cf.GlobalEnvs().Get("app", "PORT")
	require.True(t, ok)
	assert.Equal(t, 1, port)
}

func TestConfigFile_AbsentOptional(t *testing.T) {
	cfg := At(t.TempDir())
	cf, err := cfg.ConfigFile(false)
	require.NoError(t, err)
	assert.Empty(t, cf.Servers())
}
