package envstore

// MergePolicy decides the winner when a key exists in both stores with
// different values.
type MergePolicy int

const (
	// MergePreserve keeps the first store's value on conflict.
	MergePreserve MergePolicy = iota

	// MergeOverwrite takes the second store's value on conflict.
	MergeOverwrite
)

// String returns the policy name.
func (p MergePolicy) String() string {
	switch p {
	case MergePreserve:
		return "preserve"
	case MergeOverwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// Merge produces a new store containing the union of namespaces from both
// operands. For a namespace present in both, entries merge key-by-key with
// policy deciding conflicts; keys present in one operand only are copied
// as-is. Neither operand is mutated and no value is aliased into the
// result. Merging with a nil or empty second operand is an identity deep
// copy of the first. Merged namespaces carry no parent scope; scoping is a
// load-time construct.
func Merge(a, b *EnvStore, policy MergePolicy) *EnvStore {
	if a == nil {
		a = New()
	}
	if b == nil {
		b = New()
	}

	out := New()

	for _, name := range a.Namespaces() {
		merged := &Namespace{name: name, entries: make(map[string]any)}
		for k, v := range a.namespaces[name].entries {
			merged.entries[k] = deepCopy(v)
		}
		if nsB, ok := b.namespaces[name]; ok {
			for k, v := range nsB.entries {
				if _, taken := merged.entries[k]; taken && policy == MergePreserve {
					continue
				}
				merged.entries[k] = deepCopy(v)
			}
		}
		out.namespaces[name] = merged
	}

	for _, name := range b.Namespaces() {
		if _, ok := a.namespaces[name]; ok {
			continue
		}
		copied := &Namespace{name: name, entries: make(map[string]any)}
		for k, v := range b.namespaces[name].entries {
			copied.entries[k] = deepCopy(v)
		}
		out.namespaces[name] = copied
	}

	return out
}

// deepCopy creates a deep copy of a YAML-typed value.
func deepCopy(value any) any {
	switch v := value.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for k, val := range v {
			result[k] = deepCopy(val)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			result[i] = deepCopy(val)
		}
		return result
	case []string:
		result := make([]string, len(v))
		copy(result, v)
		return result
	default:
		// Scalars are immutable, return as-is
		return value
	}
}
