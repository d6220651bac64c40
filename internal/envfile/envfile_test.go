package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]any
		want    string
	}{
		{
			name:    "strings sorted by key",
			entries: map[string]any{"B": "two", "A": "one"},
			want:    "A=one\nB=two\n",
		},
		{
			name:    "scalar types",
			entries: map[string]any{"PORT": 8080, "DEBUG": true, "RATIO": 1.5, "EMPTY": nil},
			want:    "DEBUG=true\nEMPTY=\nPORT=8080\nRATIO=1.5\n",
		},
		{
			name:    "collections encoded as JSON",
			entries: map[string]any{"HOSTS": []any{"a", "b"}, "OPTS": map[string]any{"retries": 3}},
			want:    "HOSTS=[\"a\",\"b\"]\nOPTS={\"retries\":3}\n",
		},
		{
			name:    "empty namespace",
			entries: map[string]any{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.entries)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "envs")

	err := Write(dir, map[string]map[string]any{
		"database": {"HOST": "db", "PORT": 5432},
		"web":      {"LISTEN": "0.0.0.0:8080"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "database.env"))
	require.NoError(t, err)
	assert.Equal(t, "HOST=db\nPORT=5432\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "web.env"))
	require.NoError(t, err)
	assert.Equal(t, "LISTEN=0.0.0.0:8080\n", string(data))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "database.env", Filename("database"))
}
