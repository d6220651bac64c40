// Package envfile renders env store exports into dotenv files, one file
// per namespace.
package envfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extension is the suffix of generated env files.
const Extension = ".env"

// Filename returns the env file name for a namespace.
func Filename(namespace string) string {
	return namespace + Extension
}

// Write emits one KEY=VALUE file per namespace of an export into dir,
// creating the directory if needed. Keys are written sorted so output is
// stable across runs.
func Write(dir string, export map[string]map[string]any) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create env directory %s: %w", dir, err)
	}

	namespaces := make([]string, 0, len(export))
	for ns := range export {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)

	for _, ns := range namespaces {
		content, err := Render(export[ns])
		if err != nil {
			return fmt.Errorf("namespace %q: %w", ns, err)
		}
		target := filepath.Join(dir, Filename(ns))
		if err := os.WriteFile(target, []byte(content), 0644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
	}

	return nil
}

// Render returns the dotenv content for one namespace's entries.
func Render(entries map[string]any) (string, error) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		value, err := formatValue(entries[key])
		if err != nil {
			return "", fmt.Errorf("key %q: %w", key, err)
		}
		fmt.Fprintf(&b, "%s=%s\n", key, value)
	}
	return b.String(), nil
}

// formatValue renders a JSON-safe value as a dotenv line value. Scalars
// print plainly; lists and mappings are JSON-encoded inline.
func formatValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return fmt.Sprintf("%t", v), nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), nil
	case float32, float64:
		return fmt.Sprintf("%v", v), nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encode value: %w", err)
		}
		return string(encoded), nil
	}
}
