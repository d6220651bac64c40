package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.env")
	require.NoError(t, os.WriteFile(src, []byte("PORT=1\n"), 0600))

	dst := filepath.Join(dir, "nested", "dst.env")
	require.NoError(t, CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "PORT=1\n", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestCopyFile_Symlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	err := CopyFile(link, filepath.Join(dir, "dst"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symlink")
}

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "server1", "envs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "server1", "envs", "web.env"), []byte("A=1\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "top.yml"), []byte("version: \"3.9\"\n"), 0644))

	dst := filepath.Join(t.TempDir(), "copy")
	require.NoError(t, CopyDir(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "server1", "envs", "web.env"))
	require.NoError(t, err)
	assert.Equal(t, "A=1\n", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "top.yml"))
	require.NoError(t, err)
	assert.Equal(t, "version: \"3.9\"\n", string(data))
}

func TestCopyDir_SkipsSymlinks(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "real"), []byte("x"), 0644))
	require.NoError(t, os.Symlink(filepath.Join(src, "real"), filepath.Join(src, "link")))

	dst := filepath.Join(t.TempDir(), "copy")
	require.NoError(t, CopyDir(src, dst))

	_, err := os.Stat(filepath.Join(dst, "real"))
	require.NoError(t, err)
	_, err = os.Lstat(filepath.Join(dst, "link"))
	assert.True(t, os.IsNotExist(err))
}
