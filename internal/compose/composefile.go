// Package compose reads and builds the narrow subset of docker compose
// documents this system works with: service env_file references and
// volume mappings.
package compose

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Conventional compose file names.
const (
	DefaultFilename  = "docker-compose.yml"
	OverrideFilename = "docker-compose.override.yml"
)

// ErrNoComposeFile indicates an expected compose document is absent.
var ErrNoComposeFile = errors.New("no docker compose file")

// ComposeFile is a light reader of an existing compose document. Only the
// version and the service names are interpreted; everything else is
// carried opaquely.
type ComposeFile struct {
	path     string
	filename string
	content  map[string]any
}

// LoadComposeFile parses the compose document at path/filename.
func LoadComposeFile(path, filename string) (*ComposeFile, error) {
	f := &ComposeFile{path: path, filename: filename}

	info, err := os.Stat(f.Filepath())
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %q in %q", ErrNoComposeFile, filename, path)
	}

	data, err := os.ReadFile(f.Filepath())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Filepath(), err)
	}

	if err := yaml.Unmarshal(data, &f.content); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.Filepath(), err)
	}

	return f, nil
}

// Filepath returns the full path of the compose file.
func (f *ComposeFile) Filepath() string {
	return filepath.Join(f.path, f.filename)
}

// Filename returns the compose file name.
func (f *ComposeFile) Filename() string {
	return f.filename
}

// Services returns the declared service names, sorted.
func (f *ComposeFile) Services() []string {
	services, ok := f.content["services"].(map[string]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(services))
	for name := range services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Version returns the compose document version, or "" if unset.
func (f *ComposeFile) Version() string {
	version, _ := f.content["version"].(string)
	return version
}
