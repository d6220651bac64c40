// Package envconfig loads, queries, exports, and merges the two-section
// deployment configuration file (global and per-server env namespaces).
package envconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/stevedore-sh/stevedore/internal/envstore"
)

// Recognized top-level sections of the configuration file.
const (
	SectionGlobal   = "global"
	SectionServices = "services"
)

// DefaultFilename is the conventional name of the configuration file.
const DefaultFilename = "stevedore.yml"

var (
	// ErrMissingConfigFile indicates a required configuration file is absent.
	ErrMissingConfigFile = errors.New("missing configuration file")

	// ErrUnknownSection indicates an unrecognized top-level key.
	ErrUnknownSection = errors.New("unknown config section")

	// ErrInvalidSection indicates a top-level section that is not a mapping.
	ErrInvalidSection = errors.New("config section must be a mapping")

	// ErrUnknownServer indicates a query for a server never declared.
	ErrUnknownServer = errors.New("unknown server")
)

// ConfigFile holds one global env store and one scoped env store per
// server. After Load it is only ever replaced wholesale (via Merge), never
// edited field-by-field.
type ConfigFile struct {
	path     string
	filename string
	global   *envstore.EnvStore
	servers  map[string]*envstore.EnvStore
}

// New creates an empty configuration: empty global store, no servers.
func New() *ConfigFile {
	return &ConfigFile{
		global:  envstore.New(),
		servers: make(map[string]*envstore.EnvStore),
	}
}

// Load reads the configuration file at path/filename. An absent file is a
// valid empty configuration unless mustExist is set, in which case it is
// an ErrMissingConfigFile. Top-level keys outside the recognized sections
// fail with ErrUnknownSection.
func Load(path, filename string, mustExist bool) (*ConfigFile, error) {
	cf := New()
	cf.path = path
	cf.filename = filename

	info, err := os.Stat(cf.Filepath())
	if err != nil || info.IsDir() {
		if mustExist {
			return nil, fmt.Errorf("%w: %q in %q", ErrMissingConfigFile, filename, path)
		}
		return cf, nil
	}

	data, err := os.ReadFile(cf.Filepath())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", cf.Filepath(), err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", cf.Filepath(), err)
	}

	if err := cf.populate(raw); err != nil {
		return nil, err
	}
	return cf, nil
}

// populate fills the stores from a parsed document. Both sections are
// optional; any other top-level key is rejected.
func (c *ConfigFile) populate(raw map[string]any) error {
	for _, key := range sortedKeys(raw) {
		if key != SectionGlobal && key != SectionServices {
			return fmt.Errorf("%w: %q", ErrUnknownSection, key)
		}
	}

	globalSection, err := asSection(raw[SectionGlobal], SectionGlobal)
	if err != nil {
		return err
	}
	for _, ns := range sortedKeys(globalSection) {
		if err := c.global.AddNamespace(ns, globalSection[ns], nil); err != nil {
			return fmt.Errorf("global namespace %q: %w", ns, err)
		}
	}

	servicesSection, err := asSection(raw[SectionServices], SectionServices)
	if err != nil {
		return err
	}
	for _, server := range sortedKeys(servicesSection) {
		namespaces, err := asSection(servicesSection[server], SectionServices+"."+server)
		if err != nil {
			return err
		}
		// A server exists only once it defines a namespace; an empty
		// body declares nothing
		if len(namespaces) == 0 {
			continue
		}
		store := c.ensureServer(server)
		for _, ns := range sortedKeys(namespaces) {
			// Server namespaces are scoped against the global store
			if err := store.AddNamespace(ns, namespaces[ns], c.global); err != nil {
				return fmt.Errorf("server %q, namespace %q: %w", server, ns, err)
			}
		}
	}

	return nil
}

// ensureServer returns the server's store, creating it if absent. This is
// the single place server stores come into existence.
func (c *ConfigFile) ensureServer(server string) *envstore.EnvStore {
	store, ok := c.servers[server]
	if !ok {
		store = envstore.New()
		c.servers[server] = store
	}
	return store
}

// Path returns the directory the configuration was loaded from.
func (c *ConfigFile) Path() string {
	return c.path
}

// Filename returns the configuration file name.
func (c *ConfigFile) Filename() string {
	return c.filename
}

// Filepath returns the full path of the configuration file.
func (c *ConfigFile) Filepath() string {
	return filepath.Join(c.path, c.filename)
}

// GlobalEnvs returns the global env store.
func (c *ConfigFile) GlobalEnvs() *envstore.EnvStore {
	return c.global
}

// Servers returns the declared server names, sorted.
func (c *ConfigFile) Servers() []string {
	names := make([]string, 0, len(c.servers))
	for name := range c.servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Services returns the namespace names defined for a server. Each
// namespace corresponds to one deployable service on that server.
func (c *ConfigFile) Services(server string) ([]string, error) {
	store, ok := c.servers[server]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownServer, server)
	}
	return store.Namespaces(), nil
}

// ServerStore returns the env store for a server.
func (c *ConfigFile) ServerStore(server string) (*envstore.EnvStore, error) {
	store, ok := c.servers[server]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownServer, server)
	}
	return store, nil
}

// ExportDict returns the configuration as plain JSON-safe data:
// {"global": {...}, "services": {server: {...}}}.
func (c *ConfigFile) ExportDict() (map[string]any, error) {
	global, err := c.global.ExportDict()
	if err != nil {
		return nil, err
	}

	services := make(map[string]any, len(c.servers))
	for _, server := range c.Servers() {
		exported, err := c.servers[server].ExportDict()
		if err != nil {
			return nil, fmt.Errorf("server %q: %w", server, err)
		}
		services[server] = exported
	}

	return map[string]any{
		SectionGlobal:   global,
		SectionServices: services,
	}, nil
}

// Merge produces a new ConfigFile from two operands under a merge policy.
// Global stores merge; servers present in a merge against b's matching
// store (or an empty one); servers present only in b are deep-copied in,
// never subjected to conflict resolution. Neither operand is mutated.
func Merge(a, b *ConfigFile, policy envstore.MergePolicy) *ConfigFile {
	out := New()
	out.global = envstore.Merge(a.global, b.global, policy)

	for name, storeA := range a.servers {
		out.servers[name] = envstore.Merge(storeA, b.servers[name], policy)
	}
	for name, storeB := range b.servers {
		if _, ok := a.servers[name]; ok {
			continue
		}
		// Merge with an empty store is an identity deep copy
		out.servers[name] = envstore.Merge(storeB, nil, policy)
	}

	return out
}

// asSection coerces an optional top-level section to a mapping.
func asSection(value any, name string) (map[string]any, error) {
	switch v := value.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q holds %T", ErrInvalidSection, name, value)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
