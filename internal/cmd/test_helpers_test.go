package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stevedore-sh/stevedore/internal/envconfig"
)

// executeCmd executes the root command with the given args and returns
// the output written to the command's streams.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	err := rootCmd.Execute()
	return buf.String(), err
}

// projectDir creates a project root with the given configuration content
// and makes it the working directory for the duration of the test.
func projectDir(t *testing.T, configContent string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, envconfig.DefaultFilename), []byte(configContent), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return dir
}

const testConfig = `global:
  database:
    HOST: db.internal
    PORT: 5432
services:
  server1:
    web:
      LISTEN: "0.0.0.0:8080"
  server2:
    worker:
      CONCURRENCY: 4
`
