package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMergeCmd_Preserve(t *testing.T) {
	dir := projectDir(t, "global:\n  app:\n    PORT: 1\n")
	other := filepath.Join(dir, "other.yml")
	require.NoError(t, os.WriteFile(other, []byte("global:\n  app:\n    PORT: 2\n    DEBUG: true\n"), 0644))

	output, err := executeCmd(t, "merge", other)
	require.NoError(t, err)

	var merged struct {
		Global map[string]map[string]any `yaml:"global"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(output), &merged))
	assert.Equal(t, 1, merged.Global["app"]["PORT"])
	assert.Equal(t, true, merged.Global["app"]["DEBUG"])
}

func TestMergeCmd_Overwrite(t *testing.T) {
	dir := projectDir(t, "global:\n  app:\n    PORT: 1\n")
	other := filepath.Join(dir, "other.yml")
	require.NoError(t, os.WriteFile(other, []byte("global:\n  app:\n    PORT: 2\n"), 0644))

	output, err := executeCmd(t, "merge", "--overwrite", other)
	require.NoError(t, err)
	mergeOverwrite = false

	var merged struct {
		Global map[string]map[string]any `yaml:"global"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(output), &merged))
	assert.Equal(t, 2, merged.Global["app"]["PORT"])
}

func TestMergeCmd_OutputFile(t *testing.T) {
	dir := projectDir(t, "global:\n  app:\n    PORT: 1\n")
	other := filepath.Join(dir, "other.yml")
	require.NoError(t, os.WriteFile(other, []byte("services:\n  s2:\n    worker:\n      N: 4\n"), 0644))

	target := filepath.Join(dir, "merged.yml")
	_, err := executeCmd(t, "merge", "-o", target, other)
	require.NoError(t, err)
	mergeOutput = ""

	// The merged file is itself a loadable configuration
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	var merged map[string]any
	require.NoError(t, yaml.Unmarshal(data, &merged))
	assert.Contains(t, merged, "global")
	assert.Contains(t, merged, "services")
}

func TestMergeCmd_MissingOperand(t *testing.T) {
	dir := projectDir(t, "global: {}\n")

	_, err := executeCmd(t, "merge", filepath.Join(dir, "absent.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yml")
}
