package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevedore-sh/stevedore/internal/envconfig"
)

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCmd(t, "init", dir, "--yes")
	require.NoError(t, err)

	// The starter config is loadable
	cf, err := envconfig.Load(dir, envconfig.DefaultFilename, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"server1"}, cf.Servers())

	_, err = os.Stat(filepath.Join(dir, ".stevedore", "snapshots"))
	require.NoError(t, err)
}

func TestInitCmd_ExistingConfigKept(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, envconfig.DefaultFilename)
	require.NoError(t, os.WriteFile(configPath, []byte("global: {}\n"), 0644))

	_, err := executeCmd(t, "init", dir, "--yes")
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "global: {}\n", string(data))
}
