package envstore

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotExportable indicates a value that cannot be represented as JSON.
var ErrNotExportable = errors.New("value is not JSON-representable")

// ExportDict returns the store as a plain nested mapping
// {namespace: {key: value}} holding only JSON-representable values.
// Inherited entries are not emitted; each namespace exports its own
// entries only.
func (s *EnvStore) ExportDict() (map[string]map[string]any, error) {
	out := make(map[string]map[string]any, len(s.namespaces))
	for _, name := range s.Namespaces() {
		ns := s.namespaces[name]
		exported := make(map[string]any, len(ns.entries))
		for _, key := range ns.Keys() {
			value, err := normalizeValue(ns.entries[key])
			if err != nil {
				return nil, fmt.Errorf("namespace %q, key %q: %w", name, key, err)
			}
			exported[key] = value
		}
		out[name] = exported
	}
	return out, nil
}

// normalizeValue maps a YAML-typed value to its JSON-safe equivalent.
// YAML-specific types are coerced (timestamps to RFC 3339 strings, binary
// to string); anything else non-scalar is rejected.
func normalizeValue(value any) (any, error) {
	switch v := value.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	case []byte:
		return string(v), nil
	case []string:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = item
		}
		return result, nil
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			normalized, err := normalizeValue(item)
			if err != nil {
				return nil, err
			}
			result[i] = normalized
		}
		return result, nil
	case map[string]any:
		result := make(map[string]any, len(v))
		for k, item := range v {
			normalized, err := normalizeValue(item)
			if err != nil {
				return nil, err
			}
			result[k] = normalized
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotExportable, value)
	}
}
