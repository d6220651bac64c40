// Package envstore implements the layered environment variable store:
// named groups of env entries with optional read-through scoping against
// a parent store, JSON-safe export, and deterministic policy merges.
package envstore

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidEntries indicates that namespace entries were not a mapping.
var ErrInvalidEntries = errors.New("namespace entries must be a mapping")

// Namespace is a named group of env entries. A namespace created against a
// parent store holds a read-only reference to the parent's same-named
// namespace; lookups fall through to the parent, exports never do.
type Namespace struct {
	name    string
	entries map[string]any
	parent  *Namespace
}

// Name returns the namespace name.
func (n *Namespace) Name() string {
	return n.name
}

// Keys returns the namespace's own entry keys, sorted. Inherited keys are
// not included.
func (n *Namespace) Keys() []string {
	keys := make([]string, 0, len(n.entries))
	for k := range n.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value for key. A key absent from the namespace's own
// entries is looked up in the parent namespace, if any.
func (n *Namespace) Get(key string) (any, bool) {
	if v, ok := n.entries[key]; ok {
		return v, true
	}
	if n.parent != nil {
		return n.parent.Get(key)
	}
	return nil, false
}

// EnvStore is a collection of namespaces of env entries.
type EnvStore struct {
	namespaces map[string]*Namespace
}

// New creates an empty store.
func New() *EnvStore {
	return &EnvStore{namespaces: make(map[string]*Namespace)}
}

// AddNamespace registers entries under the named namespace, creating it if
// needed. Entries must be a mapping (map[string]any or map[string]string);
// nil counts as an empty mapping. Keys already present are overwritten, so
// repeated calls are last-write-wins. A non-nil parent establishes scoping
// against the parent's same-named namespace; the parent store itself is
// only read, never retained or mutated.
func (s *EnvStore) AddNamespace(name string, entries any, parent *EnvStore) error {
	mapping, ok := asMapping(entries)
	if !ok {
		return fmt.Errorf("%w: namespace %q holds %T", ErrInvalidEntries, name, entries)
	}

	ns, exists := s.namespaces[name]
	if !exists {
		ns = &Namespace{name: name, entries: make(map[string]any, len(mapping))}
		s.namespaces[name] = ns
	}

	if parent != nil {
		if pns, ok := parent.namespaces[name]; ok {
			ns.parent = pns
		}
	}

	for k, v := range mapping {
		ns.entries[k] = deepCopy(v)
	}

	return nil
}

// Namespaces returns the namespace names, sorted.
func (s *EnvStore) Namespaces() []string {
	names := make([]string, 0, len(s.namespaces))
	for name := range s.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Namespace returns the named namespace.
func (s *EnvStore) Namespace(name string) (*Namespace, bool) {
	ns, ok := s.namespaces[name]
	return ns, ok
}

// Has reports whether the named namespace exists.
func (s *EnvStore) Has(name string) bool {
	_, ok := s.namespaces[name]
	return ok
}

// Get returns the value for key in the named namespace, falling through to
// the parent scope for keys the namespace does not define itself.
func (s *EnvStore) Get(namespace, key string) (any, bool) {
	ns, ok := s.namespaces[namespace]
	if !ok {
		return nil, false
	}
	return ns.Get(key)
}

// Len returns the number of namespaces.
func (s *EnvStore) Len() int {
	return len(s.namespaces)
}

// asMapping coerces the YAML shapes a namespace body can decode to.
func asMapping(entries any) (map[string]any, bool) {
	switch v := entries.(type) {
	case nil:
		return map[string]any{}, true
	case map[string]any:
		return v, true
	case map[string]string:
		mapping := make(map[string]any, len(v))
		for k, val := range v {
			mapping[k] = val
		}
		return mapping, true
	default:
		return nil, false
	}
}
