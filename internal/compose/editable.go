package compose

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultVersion is the compose document version written by default.
const DefaultVersion = "3.9"

var (
	// ErrUnknownService indicates an edit query for a service never created.
	ErrUnknownService = errors.New("unknown service")

	// ErrNoServiceVolumes indicates a service that exists without a
	// volumes list.
	ErrNoServiceVolumes = errors.New("service has no volumes")
)

// serviceEntry is the narrow per-service schema the builder edits.
type serviceEntry struct {
	EnvFile string   `yaml:"env_file,omitempty"`
	Volumes []string `yaml:"volumes,omitempty"`
}

// EditableCompose builds a minimal compose document in memory. Services
// come into existence on first edit; the document is serialized once with
// WriteTo. No validation against the full compose schema is performed.
type EditableCompose struct {
	version  string
	services map[string]*serviceEntry
}

// NewEditableCompose creates an empty builder. An empty version selects
// DefaultVersion.
func NewEditableCompose(version string) *EditableCompose {
	if version == "" {
		version = DefaultVersion
	}
	return &EditableCompose{
		version:  version,
		services: make(map[string]*serviceEntry),
	}
}

// service returns the named service entry, creating it if absent.
func (c *EditableCompose) service(name string) *serviceEntry {
	entry, ok := c.services[name]
	if !ok {
		entry = &serviceEntry{}
		c.services[name] = entry
	}
	return entry
}

// Version returns the compose document version.
func (c *EditableCompose) Version() string {
	return c.version
}

// Services returns the names of services created so far, sorted.
func (c *EditableCompose) Services() []string {
	names := make([]string, 0, len(c.services))
	for name := range c.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetServiceEnvFile upserts the service's env_file reference, creating
// the service entry if absent.
func (c *EditableCompose) SetServiceEnvFile(service, filepath string) {
	c.service(service).EnvFile = filepath
}

// AddServiceVolume appends a volume mapping to the service, creating the
// service entry and the volume list if absent.
func (c *EditableCompose) AddServiceVolume(service, mapping string) {
	entry := c.service(service)
	entry.Volumes = append(entry.Volumes, mapping)
}

// GetServiceVolumes returns the service's volume mappings. A service that
// was never created fails with ErrUnknownService; a service without a
// volume list (for example after ClearServiceVolumes) fails with
// ErrNoServiceVolumes.
func (c *EditableCompose) GetServiceVolumes(service string) ([]string, error) {
	entry, ok := c.services[service]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, service)
	}
	if entry.Volumes == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoServiceVolumes, service)
	}
	return entry.Volumes, nil
}

// ClearServiceVolumes removes the service's volume list. A service
// without volumes, or a service that does not exist, is a no-op.
func (c *EditableCompose) ClearServiceVolumes(service string) {
	if entry, ok := c.services[service]; ok {
		entry.Volumes = nil
	}
}

// composeDocument is the serialized form of the builder.
type composeDocument struct {
	Version  string                   `yaml:"version"`
	Services map[string]*serviceEntry `yaml:"services"`
}

// Marshal returns the document as YAML.
func (c *EditableCompose) Marshal() ([]byte, error) {
	doc := composeDocument{Version: c.version, Services: c.services}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal compose document: %w", err)
	}
	return data, nil
}

// WriteTo serializes the document to a YAML file at path/filename,
// creating the directory if needed.
func (c *EditableCompose) WriteTo(path, filename string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}

	target := filepath.Join(path, filename)
	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	return nil
}
